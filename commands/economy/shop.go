package economy

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/bot"
	"ArcadiaBot/ledger"
	"ArcadiaBot/utils"
)

type shopItem struct {
	Key         string
	Name        string
	Price       int64
	Column      string // ledger item column; empty for role items
	Description string
}

var shopItems = []shopItem{
	{
		Key:         "chicken",
		Name:        "🐔 Fighting Chicken",
		Price:       10,
		Column:      ledger.ItemChicken,
		Description: "Needed to enter a cockfight. Losses are fatal.",
	},
	{
		Key:         "antirob",
		Name:        "🛡️ Anti-Rob Shield",
		Price:       1000,
		Column:      ledger.ItemAntiRob,
		Description: "Protects your balance from one robbery attempt.",
	},
	{
		Key:         "customrole",
		Name:        "🎨 Custom Role",
		Price:       150000,
		Column:      ledger.ItemCustomRole,
		Description: "A personal role with the name of your choice. `$buy customrole <name>`",
	},
	{
		Key:         "specialrole",
		Name:        "⭐ Special Role",
		Price:       30000,
		Description: "One of the server's premium roles. `$buy specialrole <role name>`",
	},
}

func findShopItem(key string) (shopItem, bool) {
	for _, item := range shopItems {
		if item.Key == key {
			return item, true
		}
	}
	return shopItem{}, false
}

func Shop(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return // Don't respond to DMs
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🛒 Shop",
		Description: "Buy with `$buy <item>`",
		Color:       0x5865F2,
	}
	for _, item := range shopItems {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s — ₱%s", item.Name, utils.FormatAmount(item.Price)),
			Value: item.Description,
		})
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

func Buy(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return // Don't respond to DMs
	}
	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: $buy <chicken|antirob|customrole|specialrole> [name]")
		return
	}

	item, ok := findShopItem(strings.ToLower(args[1]))
	if !ok {
		s.ChannelMessageSend(m.ChannelID, "❌ That item isn't in the shop. Check `$shop`.")
		return
	}

	switch item.Key {
	case "customrole":
		buyCustomRole(b, s, m, item, args[2:])
	case "specialrole":
		buySpecialRole(b, s, m, item, args[2:])
	default:
		buyCountable(b, s, m, item)
	}
}

// buyCountable is the plain path: one atomic debit-and-increment.
func buyCountable(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, item shopItem) {
	balance, ok, err := b.Ledger.BuyItem(m.Author.ID, item.Price, item.Column, 1)
	if err != nil {
		log.Printf("Error buying %s for %s: %v", item.Key, m.Author.ID, err)
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	if !ok {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("❌ You can't afford that. %s costs ₱%s.",
			item.Name, utils.FormatAmount(item.Price)))
		return
	}
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("✅ You bought %s for ₱%s.\nNew balance: ₱%s",
		item.Name, utils.FormatAmount(item.Price), utils.FormatAmount(balance)))
}

// buyCustomRole creates a personal role named by the buyer and assigns
// it. The balance debit happens first; if Discord rejects the role we
// refund.
func buyCustomRole(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, item shopItem, nameArgs []string) {
	if len(nameArgs) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: $buy customrole <role name>")
		return
	}
	roleName := strings.Join(nameArgs, " ")
	if len(roleName) > 100 {
		s.ChannelMessageSend(m.ChannelID, "❌ Role names must be 100 characters or less.")
		return
	}

	balance, ok, err := b.Ledger.BuyItem(m.Author.ID, item.Price, item.Column, 1)
	if err != nil {
		log.Printf("Error buying custom role for %s: %v", m.Author.ID, err)
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	if !ok {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("❌ You can't afford that. %s costs ₱%s.",
			item.Name, utils.FormatAmount(item.Price)))
		return
	}

	role, err := s.GuildRoleCreate(m.GuildID, &discordgo.RoleParams{Name: roleName})
	if err != nil {
		log.Printf("Error creating custom role for %s: %v", m.Author.ID, err)
		if _, rerr := b.Ledger.Adjust(m.Author.ID, item.Price, "custom role refund"); rerr != nil {
			log.Printf("Error refunding custom role for %s: %v", m.Author.ID, rerr)
		}
		b.Ledger.AdjustItem(m.Author.ID, item.Column, -1)
		s.ChannelMessageSend(m.ChannelID, "❌ Couldn't create the role. You've been refunded.")
		return
	}
	if err := s.GuildMemberRoleAdd(m.GuildID, m.Author.ID, role.ID); err != nil {
		log.Printf("Error assigning custom role to %s: %v", m.Author.ID, err)
		s.ChannelMessageSend(m.ChannelID, "⚠️ The role was created but couldn't be assigned. Ping an admin.")
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("✅ You now wear **%s**!\nNew balance: ₱%s",
		roleName, utils.FormatAmount(balance)))
}

// buySpecialRole assigns an existing server role by name.
func buySpecialRole(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, item shopItem, nameArgs []string) {
	if len(nameArgs) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: $buy specialrole <role name>")
		return
	}
	roleName := strings.Join(nameArgs, " ")

	roles, err := s.GuildRoles(m.GuildID)
	if err != nil {
		log.Printf("Error listing roles: %v", err)
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	var target *discordgo.Role
	for _, r := range roles {
		if strings.EqualFold(r.Name, roleName) {
			target = r
			break
		}
	}
	if target == nil {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("❌ No role named **%s** on this server.", roleName))
		return
	}

	afterDebit, ok, err := b.Ledger.TryDebit(m.Author.ID, item.Price, "special role")
	if err != nil {
		log.Printf("Error buying special role for %s: %v", m.Author.ID, err)
		s.ChannelMessageSend(m.ChannelID, "An error occurred. Please try again.")
		return
	}
	if !ok {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("❌ You can't afford that. %s costs ₱%s.",
			item.Name, utils.FormatAmount(item.Price)))
		return
	}

	if err := s.GuildMemberRoleAdd(m.GuildID, m.Author.ID, target.ID); err != nil {
		log.Printf("Error assigning special role to %s: %v", m.Author.ID, err)
		if _, rerr := b.Ledger.Adjust(m.Author.ID, item.Price, "special role refund"); rerr != nil {
			log.Printf("Error refunding special role for %s: %v", m.Author.ID, rerr)
		}
		s.ChannelMessageSend(m.ChannelID, "❌ Couldn't assign the role. You've been refunded.")
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("✅ You now wear **%s**!\nNew balance: ₱%s",
		target.Name, utils.FormatAmount(afterDebit)))
}
