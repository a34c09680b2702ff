package commands

import (
	"strings"

	"ArcadiaBot/bot"

	"github.com/bwmarrin/discordgo"
)

// CommandFunc defines the signature for prefix command handlers
type CommandFunc func(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string)

// ComponentFunc handles button/select interactions routed by CustomID prefix
type ComponentFunc func(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate)

// CommandInfo holds detailed information about a command
type CommandInfo struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
	Usage       string   `json:"usage"`
	Category    string   `json:"category"`
}

// SlashCommandInfo holds information about slash commands
type SlashCommandInfo struct {
	Name        string                                                           `json:"name"`
	Description string                                                           `json:"description"`
	Options     []*discordgo.ApplicationCommandOption                            `json:"options"`
	Handler     func(*bot.Bot, *discordgo.Session, *discordgo.InteractionCreate) `json:"-"`
}

// ModuleInfo represents a complete module with its commands and metadata
type ModuleInfo struct {
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Category      string             `json:"category"`
	Commands      []CommandInfo      `json:"commands"`
	SlashCommands []SlashCommandInfo `json:"slash_commands"`
}

// Global registries
var (
	RegisteredModules    = make(map[string]*ModuleInfo)
	CommandDetails       = make(map[string]CommandInfo)
	SlashCommandHandlers = make(map[string]func(*bot.Bot, *discordgo.Session, *discordgo.InteractionCreate))
	CommandMap           = make(map[string]CommandFunc)
	CommandAliases       = make(map[string]string)
	componentHandlers    = make(map[string]ComponentFunc) // keyed by CustomID prefix
)

// RegisterCommand registers individual commands (used by modules)
func RegisterCommand(name string, handler CommandFunc, aliases ...string) {
	CommandMap[name] = handler
	for _, alias := range aliases {
		CommandAliases[alias] = name
	}
}

// RegisterModule registers a complete module and auto-compiles command info
func RegisterModule(module *ModuleInfo) {
	RegisteredModules[module.Name] = module

	for _, cmd := range module.Commands {
		CommandDetails[cmd.Name] = cmd
	}
	for _, slashCmd := range module.SlashCommands {
		SlashCommandHandlers[slashCmd.Name] = slashCmd.Handler
	}
}

// RegisterComponentHandler routes component interactions whose CustomID
// starts with prefix to the handler.
func RegisterComponentHandler(prefix string, handler ComponentFunc) {
	componentHandlers[prefix] = handler
}

// ComponentHandlerFor finds the handler for a component CustomID.
func ComponentHandlerFor(customID string) (ComponentFunc, bool) {
	for prefix, handler := range componentHandlers {
		if strings.HasPrefix(customID, prefix) {
			return handler, true
		}
	}
	return nil, false
}

// GetAllSlashCommands returns all registered slash commands for registration
func GetAllSlashCommands() []*discordgo.ApplicationCommand {
	var cmds []*discordgo.ApplicationCommand
	for _, module := range RegisteredModules {
		for _, slashCmd := range module.SlashCommands {
			cmds = append(cmds, &discordgo.ApplicationCommand{
				Name:        slashCmd.Name,
				Description: slashCmd.Description,
				Options:     slashCmd.Options,
			})
		}
	}
	return cmds
}
