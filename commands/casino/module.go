package casino

import (
	"github.com/bwmarrin/discordgo"

	"ArcadiaBot/commands"
)

func init() {
	amountOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "amount",
		Description: "How much to bet",
		Required:    true,
		MinValue:    float64Ptr(1),
	}

	module := &commands.ModuleInfo{
		Name:        "Casino",
		Description: "Wager your balance on blackjack, slots, coinflip, cockfight and the color game",
		Category:    "Casino",
		Commands: []commands.CommandInfo{
			{
				Name:        "blackjack",
				Aliases:     []string{"bj"},
				Description: "Play a hand of blackjack against the dealer",
				Usage:       "$blackjack <amount|all>",
				Category:    "Casino",
			},
			{
				Name:        "slots",
				Aliases:     []string{"slot"},
				Description: "Spin the slot machine",
				Usage:       "$slots <amount|all>",
				Category:    "Casino",
			},
			{
				Name:        "coinflip",
				Aliases:     []string{"cf", "flip"},
				Description: "Call a coin toss",
				Usage:       "$coinflip <head|tail> <amount|all>",
				Category:    "Casino",
			},
			{
				Name:        "cockfight",
				Aliases:     []string{"cock"},
				Description: "Send one of your chickens into the pit",
				Usage:       "$cockfight <amount|all>",
				Category:    "Casino",
			},
			{
				Name:        "colorgame",
				Aliases:     []string{"color", "cg"},
				Description: "Bet on the colors of three dice",
				Usage:       "$colorgame <amount|all> <color> [color] [color]",
				Category:    "Casino",
			},
		},
		SlashCommands: []commands.SlashCommandInfo{
			{
				Name:        "blackjack",
				Description: "Play a hand of blackjack against the dealer",
				Options:     []*discordgo.ApplicationCommandOption{amountOption},
				Handler:     BlackjackSlash,
			},
			{
				Name:        "slots",
				Description: "Spin the slot machine",
				Options:     []*discordgo.ApplicationCommandOption{amountOption},
				Handler:     SlotsSlash,
			},
			{
				Name:        "coinflip",
				Description: "Call a coin toss",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "choice",
						Description: "Which side the coin lands on",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "Head", Value: "head"},
							{Name: "Tail", Value: "tail"},
						},
					},
					amountOption,
				},
				Handler: CoinflipSlash,
			},
			{
				Name:        "cockfight",
				Description: "Send one of your chickens into the pit",
				Options:     []*discordgo.ApplicationCommandOption{amountOption},
				Handler:     CockfightSlash,
			},
			{
				Name:        "colorgame",
				Description: "Bet on the colors of three dice",
				Options: []*discordgo.ApplicationCommandOption{
					amountOption,
					colorOption("color1", "First color to bet on", true),
					colorOption("color2", "Second color to bet on", false),
					colorOption("color3", "Third color to bet on", false),
				},
				Handler: ColorGameSlash,
			},
		},
	}

	commands.RegisterModule(module)

	commands.RegisterCommand("blackjack", Blackjack, "bj")
	commands.RegisterCommand("slots", Slots, "slot")
	commands.RegisterCommand("coinflip", Coinflip, "cf", "flip")
	commands.RegisterCommand("cockfight", Cockfight, "cock")
	commands.RegisterCommand("colorgame", ColorGame, "color", "cg")

	commands.RegisterComponentHandler(blackjackComponentPrefix, HandleBlackjackButton)
}

func colorOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "Green", Value: "green"},
			{Name: "Yellow", Value: "yellow"},
			{Name: "Pink", Value: "pink"},
		},
	}
}

func float64Ptr(f float64) *float64 { return &f }
