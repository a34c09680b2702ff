package economy

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/bot"
	"ArcadiaBot/utils"
)

const (
	workMinSalary = 100
	workMaxSalary = 500
	workCooldown  = time.Hour
	workKeyPrefix = "work:"
)

var workJobs = []string{
	"delivered a stack of pizzas",
	"fixed a neighbor's leaky faucet",
	"streamed for a few hours",
	"walked every dog on the block",
	"sold halo-halo at the corner",
	"drove a tricycle route all afternoon",
}

func Work(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return // Don't respond to DMs
	}
	s.ChannelMessageSend(m.ChannelID, doWork(b, m.Author.ID))
}

func WorkSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondText(s, i, doWork(b, i.Member.User.ID))
}

// doWork pays out a random salary once per cooldown window. The window
// is tracked in the in-process cache so a restart clears it.
func doWork(b *bot.Bot, userID string) string {
	key := workKeyPrefix + userID
	if lastWorked, found := b.Cooldowns.Get(key); found {
		remaining := workCooldown - time.Since(lastWorked.(time.Time))
		return fmt.Sprintf("🕐 You're still tired from your last shift. Come back in %s.", formatDuration(remaining))
	}

	salary := int64(workMinSalary + rand.Intn(workMaxSalary-workMinSalary+1))
	balance, err := b.Ledger.Adjust(userID, salary, "work salary")
	if err != nil {
		log.Printf("Error paying work salary for %s: %v", userID, err)
		return "An error occurred. Please try again."
	}
	b.Cooldowns.Set(key, time.Now(), workCooldown)

	job := workJobs[rand.Intn(len(workJobs))]
	return fmt.Sprintf("💼 You %s and earned ₱%s!\nNew balance: ₱%s", job, utils.FormatAmount(salary), utils.FormatAmount(balance))
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	if d < time.Minute {
		return "less than a minute"
	}
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
