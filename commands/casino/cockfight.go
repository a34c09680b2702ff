package casino

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/bot"
	"ArcadiaBot/commands"
)

func Cockfight(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	r := &commands.MessageResponder{S: s, M: m}
	if len(args) < 2 {
		r.Reply("Usage: $cockfight <amount|all>")
		return
	}
	wager, err := parseWager(b, m.Author.ID, args[1])
	if err != nil {
		r.Reply(gameErrorText(err))
		return
	}
	runCockfight(b, r, wager)
}

func CockfightSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	r := &commands.InteractionResponder{S: s, I: i}
	wager := i.ApplicationCommandData().Options[0].IntValue()
	runCockfight(b, r, wager)
}

func runCockfight(b *bot.Bot, r commands.Responder, wager int64) {
	if err := r.Defer(); err != nil {
		log.Printf("Error acknowledging cockfight: %v", err)
		return
	}
	res, err := b.Games.Fight(r.User().ID, wager)
	if err != nil {
		r.FollowUpError(gameErrorText(err))
		return
	}

	msg, err := r.FollowUp(fmt.Sprintf("🐔 Your chicken enters the pit for %s! The crowd goes wild...", coins(wager)))
	if err != nil {
		log.Printf("Error sending cockfight message: %v", err)
		return
	}
	time.Sleep(3 * time.Second)

	var text string
	if res.Won {
		text = fmt.Sprintf("🏆 Your chicken won! You earned %s.\nNew balance: %s. Chickens left: %d.",
			coins(res.Outcome.Payout), coins(res.Outcome.NewBalance), res.ChickensLeft)
	} else {
		text = fmt.Sprintf("💀 Your chicken lost the fight and didn't make it. You lost %s.\nNew balance: %s. Chickens left: %d.",
			coins(wager), coins(res.Outcome.NewBalance), res.ChickensLeft)
	}
	if err := r.Edit(msg.ID, text); err != nil {
		log.Printf("Error editing cockfight message: %v", err)
	}
}
