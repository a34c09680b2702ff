package economy

import (
	"fmt"
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/bot"
	"ArcadiaBot/utils"
)

// GiveMoney mints coins into a user's balance. Admin only.
func GiveMoney(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	adjustMoney(b, s, m, args, "give-money", 1)
}

// RemoveMoney burns coins from a user's balance. Admin only.
func RemoveMoney(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	adjustMoney(b, s, m, args, "remove-money", -1)
}

func adjustMoney(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string, name string, sign int64) {
	if m.GuildID == "" {
		return // Don't respond to DMs
	}

	isAdmin, err := b.IsAdmin(m.Author.ID)
	if err != nil {
		log.Printf("Error checking admin status: %v", err)
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	if !isAdmin {
		s.ChannelMessageSend(m.ChannelID, "❌ You don't have permission to use this command.")
		return
	}

	if len(args) < 3 {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Usage: $%s @user <amount>", name))
		return
	}
	targetUserID, err := utils.ExtractUserID(args[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid mention / use. Please use a proper mention (e.g., @username).")
		return
	}
	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil || amount <= 0 {
		s.ChannelMessageSend(m.ChannelID, "❌ Amount must be a positive number.")
		return
	}

	balance, err := b.Ledger.Adjust(targetUserID, sign*amount, name)
	if err != nil {
		log.Printf("Error adjusting balance for %s: %v", targetUserID, err)
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}

	verb := "Gave"
	preposition := "to"
	if sign < 0 {
		verb = "Removed"
		preposition = "from"
	}
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("✅ %s ₱%s %s <@%s>. Their balance is now ₱%s.",
		verb, utils.FormatAmount(amount), preposition, targetUserID, utils.FormatAmount(balance)))
}
