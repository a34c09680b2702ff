package economy

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/bot"
	"ArcadiaBot/utils"
)

const leaderboardSize = 10

func Leaderboard(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return // Don't respond to DMs
	}

	entries, err := b.Ledger.Top(leaderboardSize)
	if err != nil {
		log.Printf("Error querying leaderboard: %v", err)
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	if len(entries) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Nobody has any money yet. Go `$work`!")
		return
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var sb strings.Builder
	for i, e := range entries {
		rank := fmt.Sprintf("`#%d`", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		fmt.Fprintf(&sb, "%s <@%s> — ₱%s\n", rank, e.UserID, utils.FormatAmount(e.Balance))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 Richest Players",
		Description: sb.String(),
		Color:       0xF1C40F,
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}
