package economy

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/bot"
	"ArcadiaBot/ledger"
	"ArcadiaBot/utils"
)

func Inventory(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return // Don't respond to DMs
	}

	userID := m.Author.ID
	balance, err := b.Ledger.Balance(userID)
	if err != nil {
		log.Printf("Error querying balance: %v", err)
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	counts := make(map[string]int, 3)
	for _, item := range []string{ledger.ItemChicken, ledger.ItemAntiRob, ledger.ItemCustomRole} {
		n, err := b.Ledger.ItemCount(userID, item)
		if err != nil {
			log.Printf("Error querying %s for %s: %v", item, userID, err)
			s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
			return
		}
		counts[item] = n
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Inventory", m.Author.Username),
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💰 Balance", Value: "₱" + utils.FormatAmount(balance), Inline: true},
			{Name: "🐔 Chickens", Value: fmt.Sprintf("%d", counts[ledger.ItemChicken]), Inline: true},
			{Name: "🛡️ Anti-Rob Shields", Value: fmt.Sprintf("%d", counts[ledger.ItemAntiRob]), Inline: true},
			{Name: "🎨 Custom Roles", Value: fmt.Sprintf("%d", counts[ledger.ItemCustomRole]), Inline: true},
		},
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}
