package economy

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/bot"
	"ArcadiaBot/utils"
)

func Balance(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	// Ensure command is used in a guild
	if m.GuildID == "" {
		return // Don't respond to DMs
	}

	targetUserID := m.Author.ID
	// Check if a mention is provided & validate
	if len(args) >= 2 {
		var err error
		targetUserID, err = utils.ExtractUserID(args[1])
		if err != nil {
			s.ChannelMessageSend(m.ChannelID, "Invalid mention / use. Please use a proper mention (e.g., @username).")
			return
		}
	}

	balance, err := b.Ledger.Balance(targetUserID)
	if err != nil {
		log.Printf("Error querying balance: %v", err)
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("<@%s>'s balance: ₱%s", targetUserID, utils.FormatAmount(balance)))
}

func BalanceSlash(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	targetUserID := i.Member.User.ID
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			targetUserID = opt.UserValue(s).ID
		}
	}

	balance, err := b.Ledger.Balance(targetUserID)
	if err != nil {
		log.Printf("Error querying balance: %v", err)
		respondText(s, i, "An error occurred. Please try again.")
		return
	}
	respondText(s, i, fmt.Sprintf("<@%s>'s balance: ₱%s", targetUserID, utils.FormatAmount(balance)))
}

func respondText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		log.Printf("Error responding to interaction: %v", err)
	}
}
