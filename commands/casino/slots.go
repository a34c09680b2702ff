package casino

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/bot"
	"ArcadiaBot/commands"
	"ArcadiaBot/games"
)

func Slots(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	r := &commands.MessageResponder{S: s, M: m}
	if len(args) < 2 {
		r.Reply("Usage: $slots <amount|all>")
		return
	}
	wager, err := parseWager(b, m.Author.ID, args[1])
	if err != nil {
		r.Reply(gameErrorText(err))
		return
	}
	runSlots(b, r, wager)
}

func SlotsSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	r := &commands.InteractionResponder{S: s, I: i}
	wager := i.ApplicationCommandData().Options[0].IntValue()
	runSlots(b, r, wager)
}

func runSlots(b *bot.Bot, r commands.Responder, wager int64) {
	res, err := b.Games.Spin(r.User().ID, wager)
	if err != nil {
		r.Reply(gameErrorText(err))
		return
	}

	// Spin animation: reveal the reels one at a time in the same message.
	msg, err := r.ReplyEmbed(slotsEmbed([3]string{"🎰", "🎰", "🎰"}, wager, nil), nil)
	if err != nil {
		log.Printf("Error sending slots message: %v", err)
		return
	}
	frames := [][3]string{
		{res.Symbols[0], "🎰", "🎰"},
		{res.Symbols[0], res.Symbols[1], "🎰"},
	}
	for _, frame := range frames {
		time.Sleep(500 * time.Millisecond)
		if err := editSlotsEmbed(b, msg, slotsEmbed(frame, wager, nil)); err != nil {
			log.Printf("Error editing slots message: %v", err)
			return
		}
	}
	time.Sleep(500 * time.Millisecond)
	if err := editSlotsEmbed(b, msg, slotsEmbed(res.Symbols, wager, &res.Outcome)); err != nil {
		log.Printf("Error editing slots message: %v", err)
	}
}

func editSlotsEmbed(b *bot.Bot, msg *discordgo.Message, embed *discordgo.MessageEmbed) error {
	_, err := b.Client.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:      msg.ID,
		Channel: msg.ChannelID,
		Embeds:  &[]*discordgo.MessageEmbed{embed},
	})
	return err
}

func slotsEmbed(reels [3]string, wager int64, o *games.Outcome) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🎰 Slots",
		Description: fmt.Sprintf("| %s | %s | %s |", reels[0], reels[1], reels[2]),
		Color:       0xF1C40F,
	}
	if o == nil {
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Bet", Value: coins(wager)},
		}
		return embed
	}

	var result string
	if o.Result == games.Win {
		result = fmt.Sprintf("✅ You hit %s! You won %s.\nNew balance: %s.",
			o.Detail, coins(o.Payout), coins(o.NewBalance))
		embed.Color = 0x2ECC71
	} else {
		result = fmt.Sprintf("❌ %s. You lost %s.\nNew balance: %s.",
			"No matching symbols", coins(wager), coins(o.NewBalance))
		embed.Color = 0xE74C3C
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Result", Value: result},
	}
	return embed
}
