package commands

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// slashCommandChanged reports whether the registered copy of a command
// differs from what the modules declare.
func slashCommandChanged(existing, desired *discordgo.ApplicationCommand) bool {
	if existing.Description != desired.Description {
		return true
	}
	if len(existing.Options) != len(desired.Options) {
		return true
	}
	for i, opt := range existing.Options {
		want := desired.Options[i]
		if opt.Name != want.Name ||
			opt.Description != want.Description ||
			opt.Type != want.Type ||
			opt.Required != want.Required {
			return true
		}
	}
	return false
}

// RegisterAllSlashCommands reconciles Discord's registered commands with
// the modules' declarations: creates missing ones, updates changed ones
// and deletes leftovers. An empty guildID registers globally.
func RegisterAllSlashCommands(s *discordgo.Session, guildID string) {
	existing, err := s.ApplicationCommands(s.State.User.ID, guildID)
	if err != nil {
		log.Printf("Error fetching existing commands: %v", err)
		return
	}

	existingByName := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingByName[cmd.Name] = cmd
	}

	for _, desired := range GetAllSlashCommands() {
		current, registered := existingByName[desired.Name]
		if !registered {
			log.Printf("Creating slash command: %s", desired.Name)
			if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, desired); err != nil {
				log.Printf("Error creating command %s: %v", desired.Name, err)
			}
			continue
		}
		delete(existingByName, desired.Name)
		if slashCommandChanged(current, desired) {
			log.Printf("Updating slash command: %s", desired.Name)
			if _, err := s.ApplicationCommandEdit(s.State.User.ID, guildID, current.ID, desired); err != nil {
				log.Printf("Error updating command %s: %v", desired.Name, err)
			}
		}
	}

	// Whatever is left isn't declared by any module anymore.
	for _, cmd := range existingByName {
		log.Printf("Deleting unused slash command: %s", cmd.Name)
		if err := s.ApplicationCommandDelete(s.State.User.ID, guildID, cmd.ID); err != nil {
			log.Printf("Error deleting command %s: %v", cmd.Name, err)
		}
	}
}
