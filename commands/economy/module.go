package economy

import (
	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/commands"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "Economy",
		Description: "Balances, work, the shop and the leaderboard",
		Category:    "Economy",
		Commands: []commands.CommandInfo{
			{
				Name:        "balance",
				Aliases:     []string{"bal"},
				Description: "Check your (or someone else's) balance",
				Usage:       "$balance [@user]",
				Category:    "Economy",
			},
			{
				Name:        "work",
				Aliases:     []string{"w"},
				Description: "Work a shift to earn money (once an hour)",
				Usage:       "$work",
				Category:    "Economy",
			},
			{
				Name:        "give-money",
				Aliases:     []string{"givemoney"},
				Description: "Give money to a user (admin only)",
				Usage:       "$give-money @user <amount>",
				Category:    "Economy",
			},
			{
				Name:        "remove-money",
				Aliases:     []string{"removemoney"},
				Description: "Remove money from a user (admin only)",
				Usage:       "$remove-money @user <amount>",
				Category:    "Economy",
			},
			{
				Name:        "shop",
				Aliases:     []string{},
				Description: "See what's for sale",
				Usage:       "$shop",
				Category:    "Economy",
			},
			{
				Name:        "buy",
				Aliases:     []string{},
				Description: "Buy an item from the shop",
				Usage:       "$buy <item> [name]",
				Category:    "Economy",
			},
			{
				Name:        "inventory",
				Aliases:     []string{"inv"},
				Description: "See your balance and owned items",
				Usage:       "$inventory",
				Category:    "Economy",
			},
			{
				Name:        "leaderboard",
				Aliases:     []string{"lb", "top"},
				Description: "The server's richest players",
				Usage:       "$leaderboard",
				Category:    "Economy",
			},
		},
		SlashCommands: []commands.SlashCommandInfo{
			{
				Name:        "balance",
				Description: "Check your (or someone else's) balance",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "Whose balance to check",
						Required:    false,
					},
				},
				Handler: BalanceSlash,
			},
			{
				Name:        "work",
				Description: "Work a shift to earn money (once an hour)",
				Handler:     WorkSlash,
			},
		},
	}

	commands.RegisterModule(module)

	commands.RegisterCommand("balance", Balance, "bal")
	commands.RegisterCommand("work", Work, "w")
	commands.RegisterCommand("give-money", GiveMoney, "givemoney")
	commands.RegisterCommand("remove-money", RemoveMoney, "removemoney")
	commands.RegisterCommand("shop", Shop)
	commands.RegisterCommand("buy", Buy)
	commands.RegisterCommand("inventory", Inventory, "inv")
	commands.RegisterCommand("leaderboard", Leaderboard, "lb", "top")
}
