package general

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/bot"
	"ArcadiaBot/commands"
)

func Help(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	// Ensure command is used in a guild
	if m.GuildID == "" {
		return // Don't respond to DMs
	}

	if len(args) > 1 {
		commandName := strings.ToLower(args[1])

		// Resolve alias to actual command name
		if actualName, isAlias := commands.CommandAliases[commandName]; isAlias {
			commandName = actualName
		}

		commandInfo, exists := commands.CommandDetails[commandName]
		if !exists {
			s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Command `%s` not found.", commandName))
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Help: %s", commandInfo.Name),
			Description: commandInfo.Description,
			Color:       0x00ff00,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  "Usage",
					Value: fmt.Sprintf("`%s`", commandInfo.Usage),
				},
			},
		}
		if len(commandInfo.Aliases) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Aliases",
				Value: strings.Join(commandInfo.Aliases, ", "),
			})
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Category",
			Value: commandInfo.Category,
		})

		s.ChannelMessageSendEmbed(m.ChannelID, embed)
		return
	}

	// General help - group every registered command under its category
	byCategory := make(map[string][]string)
	for _, info := range commands.CommandDetails {
		byCategory[info.Category] = append(byCategory[info.Category], "`"+info.Name+"`")
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	embed := &discordgo.MessageEmbed{
		Title:       "Help",
		Description: "For more information on a specific command, type `$help <command>`.",
		Color:       0x00ff00,
	}
	for _, category := range categories {
		names := byCategory[category]
		sort.Strings(names)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  category,
			Value: strings.Join(names, ", "),
		})
	}

	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}
