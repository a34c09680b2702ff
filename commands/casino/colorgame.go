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

var colorEmoji = map[games.Color]string{
	games.Green:  "🟩",
	games.Yellow: "🟨",
	games.Pink:   "🟪",
}

func ColorGame(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return
	}
	r := &commands.MessageResponder{S: s, M: m}
	if len(args) < 3 {
		r.Reply("Usage: $colorgame <amount|all> <color> [color] [color]\nColors: green, yellow, pink")
		return
	}
	wager, err := parseWager(b, m.Author.ID, args[1])
	if err != nil {
		r.Reply(gameErrorText(err))
		return
	}
	var picks []games.Color
	for _, arg := range args[2:] {
		c, ok := games.ParseColor(strings.ToLower(arg))
		if !ok {
			r.Reply(fmt.Sprintf("❌ `%s` isn't a color on the board. Colors: green, yellow, pink.", arg))
			return
		}
		picks = append(picks, c)
	}
	runColorGame(b, r, wager, picks)
}

func ColorGameSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	r := &commands.InteractionResponder{S: s, I: i}
	var (
		wager int64
		picks []games.Color
	)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "amount" {
			wager = opt.IntValue()
			continue
		}
		c, ok := games.ParseColor(opt.StringValue())
		if !ok {
			r.Reply("❌ That isn't a color on the board.")
			return
		}
		picks = append(picks, c)
	}
	runColorGame(b, r, wager, picks)
}

func runColorGame(b *bot.Bot, r commands.Responder, wager int64, picks []games.Color) {
	if err := r.Defer(); err != nil {
		log.Printf("Error acknowledging colorgame: %v", err)
		return
	}
	res, err := b.Games.Roll(r.User().ID, wager, picks)
	if err != nil {
		r.FollowUpError(gameErrorText(err))
		return
	}

	msg, err := r.FollowUp("🎲 Rolling the dice... ⬛ ⬛ ⬛")
	if err != nil {
		log.Printf("Error sending colorgame message: %v", err)
		return
	}
	time.Sleep(2 * time.Second)

	if err := r.Edit(msg.ID, colorGameResultText(res)); err != nil {
		log.Printf("Error editing colorgame message: %v", err)
	}
}

func colorGameResultText(res games.ColorResult) string {
	dice := make([]string, len(res.Roll))
	for i, c := range res.Roll {
		dice[i] = colorEmoji[c]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🎲 The dice show: %s\n", strings.Join(dice, " "))
	for _, line := range res.Lines {
		if line.Matches > 0 {
			fmt.Fprintf(&sb, "%s **%s** matched %d — you get %s\n",
				colorEmoji[line.Color], line.Color, line.Matches, coins(line.Amount))
		} else {
			fmt.Fprintf(&sb, "%s **%s** didn't come up\n", colorEmoji[line.Color], line.Color)
		}
	}

	o := res.Outcome
	switch o.Result {
	case games.Win:
		fmt.Fprintf(&sb, "\n✅ You're up %s on a %s stake.\nNew balance: %s.",
			coins(o.Net), coins(res.Stake), coins(o.NewBalance))
	case games.Push:
		fmt.Fprintf(&sb, "\n🤝 You broke even on a %s stake.\nNew balance: %s.",
			coins(res.Stake), coins(o.NewBalance))
	default:
		fmt.Fprintf(&sb, "\n❌ You're down %s on a %s stake.\nNew balance: %s.",
			coins(-o.Net), coins(res.Stake), coins(o.NewBalance))
	}
	return sb.String()
}
