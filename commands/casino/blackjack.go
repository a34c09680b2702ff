package casino

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/bot"
	"ArcadiaBot/commands"
	"ArcadiaBot/games"
)

// Button CustomIDs carry the owner and session so stale buttons from an
// earlier table can never act on a newer one.
// Format: bj_<action>_<userID>_<sessionID>
const blackjackComponentPrefix = "bj_"

func blackjackCustomID(action, userID, sessionID string) string {
	return "bj_" + action + "_" + userID + "_" + sessionID
}

func Blackjack(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return // Don't respond to DMs
	}
	r := &commands.MessageResponder{S: s, M: m}
	if len(args) < 2 {
		r.Reply("Usage: $blackjack <amount|all>")
		return
	}
	wager, err := parseWager(b, m.Author.ID, args[1])
	if err != nil {
		r.Reply(gameErrorText(err))
		return
	}
	startBlackjack(b, r, wager)
}

func BlackjackSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	r := &commands.InteractionResponder{S: s, I: i}
	wager := i.ApplicationCommandData().Options[0].IntValue()
	startBlackjack(b, r, wager)
}

func startBlackjack(b *bot.Bot, r commands.Responder, wager int64) {
	userID := r.User().ID

	var tableMsg *discordgo.Message
	sess, err := b.Games.StartBlackjack(userID, wager, func(sess *games.Session, o games.Outcome) {
		if tableMsg == nil {
			return
		}
		content := fmt.Sprintf("⌛ Blackjack game ended due to inactivity. You lost %s.", coins(sess.Wager))
		empty := []discordgo.MessageComponent{}
		_, err := b.Client.ChannelMessageEditComplex(&discordgo.MessageEdit{
			ID:         tableMsg.ID,
			Channel:    tableMsg.ChannelID,
			Content:    &content,
			Embeds:     &[]*discordgo.MessageEmbed{},
			Components: &empty,
		})
		if err != nil {
			log.Printf("Error editing expired blackjack message: %v", err)
		}
	})
	if err != nil {
		r.Reply(gameErrorText(err))
		return
	}

	msg, err := r.ReplyEmbed(blackjackEmbed(sess, nil), blackjackButtons(userID, sess.ID))
	if err != nil {
		log.Printf("Error sending blackjack table: %v", err)
		return
	}
	tableMsg = msg
}

// HandleBlackjackButton advances the owner's open session from a Hit or
// Stand click and rewrites the table message in place.
func HandleBlackjackButton(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	parts := strings.Split(i.MessageComponentData().CustomID, "_")
	if len(parts) != 4 {
		return // Invalid ID format, ignore.
	}
	action, ownerID, sessionID := parts[1], parts[2], parts[3]

	if i.Member == nil || i.Member.User == nil {
		return
	}
	if i.Member.User.ID != ownerID {
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "❌ This isn't your game.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	var (
		sess *games.Session
		o    *games.Outcome
		err  error
	)
	switch action {
	case "hit":
		sess, o, err = b.Games.Hit(ownerID, sessionID)
	case "stand":
		sess, o, err = b.Games.Stand(ownerID, sessionID)
	default:
		return
	}
	if err != nil {
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: gameErrorText(err),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	components := blackjackButtons(ownerID, sessionID)
	if o != nil {
		components = []discordgo.MessageComponent{}
	}
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{blackjackEmbed(sess, o)},
			Components: components,
		},
	})
	if err != nil {
		log.Printf("Error updating blackjack table: %v", err)
	}
}

func blackjackButtons(userID, sessionID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Hit",
					Style:    discordgo.SuccessButton,
					CustomID: blackjackCustomID("hit", userID, sessionID),
				},
				discordgo.Button{
					Label:    "Stand",
					Style:    discordgo.DangerButton,
					CustomID: blackjackCustomID("stand", userID, sessionID),
				},
			},
		},
	}
}

func formatHand(hand []games.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = "`" + string(c) + "`"
	}
	return strings.Join(parts, " ")
}

func blackjackEmbed(sess *games.Session, o *games.Outcome) *discordgo.MessageEmbed {
	state := sess.Blackjack
	embed := &discordgo.MessageEmbed{Title: "🃏 Blackjack", Color: 0x5865F2}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Your Hand",
		Value: fmt.Sprintf("%s\n**Total:** %d", formatHand(state.Player), games.HandScore(state.Player)),
	})

	dealer := fmt.Sprintf("`%s` `?`", state.Dealer[0])
	if o != nil {
		dealer = fmt.Sprintf("%s\n**Total:** %d", formatHand(state.Dealer), games.HandScore(state.Dealer))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Dealer's Hand",
		Value: dealer,
	})

	if o != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Result",
			Value: blackjackResultText(sess, o),
		})
	}
	return embed
}

func blackjackResultText(sess *games.Session, o *games.Outcome) string {
	switch o.Result {
	case games.Win:
		return fmt.Sprintf("✅ You win — %s. You earned %s.\nNew balance: %s.",
			o.Detail, coins(o.Payout), coins(o.NewBalance))
	case games.Push:
		return fmt.Sprintf("🤝 It's a tie. You got back %s.\nNew balance: %s.",
			coins(sess.Wager), coins(o.NewBalance))
	default:
		return fmt.Sprintf("❌ You lost — %s. You lost %s.\nNew balance: %s.",
			o.Detail, coins(sess.Wager), coins(o.NewBalance))
	}
}
