package general

import (
	"ArcadiaBot/commands"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "General",
		Description: "Help and utility commands",
		Category:    "General",
		Commands: []commands.CommandInfo{
			{
				Name:        "help",
				Aliases:     []string{"h"},
				Description: "Displays help information for commands",
				Usage:       "$help [command]",
				Category:    "General",
			},
			{
				Name:        "tiktok",
				Aliases:     []string{"tt"},
				Description: "Download a TikTok video and attach it here",
				Usage:       "$tiktok <link>",
				Category:    "General",
			},
		},
		SlashCommands: []commands.SlashCommandInfo{},
	}

	commands.RegisterModule(module)

	commands.RegisterCommand("help", Help, "h")
	commands.RegisterCommand("tiktok", TikTok, "tt")
}
