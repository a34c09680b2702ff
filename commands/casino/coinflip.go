package casino

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/bot"
	"ArcadiaBot/commands"
	"ArcadiaBot/games"
)

func Coinflip(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	r := &commands.MessageResponder{S: s, M: m}
	if len(args) < 3 {
		r.Reply("Usage: $coinflip <head|tail> <amount|all>")
		return
	}
	choice, ok := games.ParseCoinFace(strings.ToLower(args[1]))
	if !ok {
		r.Reply("❌ Pick `head` or `tail`.")
		return
	}
	wager, err := parseWager(b, m.Author.ID, args[2])
	if err != nil {
		r.Reply(gameErrorText(err))
		return
	}
	runCoinflip(b, r, choice, wager)
}

func CoinflipSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	r := &commands.InteractionResponder{S: s, I: i}
	opts := i.ApplicationCommandData().Options
	choice, ok := games.ParseCoinFace(opts[0].StringValue())
	if !ok {
		r.Reply("❌ Pick `head` or `tail`.")
		return
	}
	runCoinflip(b, r, choice, opts[1].IntValue())
}

func runCoinflip(b *bot.Bot, r commands.Responder, choice games.CoinFace, wager int64) {
	if err := r.Defer(); err != nil {
		log.Printf("Error acknowledging coinflip: %v", err)
		return
	}
	res, err := b.Games.Flip(r.User().ID, choice, wager)
	if err != nil {
		r.FollowUpError(gameErrorText(err))
		return
	}

	msg, err := r.FollowUp(fmt.Sprintf("🪙 You bet %s on **%s**. The coin is in the air...", coins(wager), choice))
	if err != nil {
		log.Printf("Error sending coinflip message: %v", err)
		return
	}
	time.Sleep(2 * time.Second)

	var text string
	if res.Outcome.Result == games.Win {
		text = fmt.Sprintf("🪙 It's **%s**! You won %s.\nNew balance: %s.",
			res.Landed, coins(res.Outcome.Payout), coins(res.Outcome.NewBalance))
	} else {
		text = fmt.Sprintf("🪙 It's **%s**. You lost %s.\nNew balance: %s.",
			res.Landed, coins(wager), coins(res.Outcome.NewBalance))
	}
	if err := r.Edit(msg.ID, text); err != nil {
		log.Printf("Error editing coinflip message: %v", err)
	}
}
