package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"ArcadiaBot/bot"
	"ArcadiaBot/commands"
	"ArcadiaBot/utils"

	// Command modules register themselves via init().
	_ "ArcadiaBot/commands/casino"
	_ "ArcadiaBot/commands/economy"
	_ "ArcadiaBot/commands/general"
)

const prefix = "$"

var limiter = utils.NewRateLimiter(15)

func handleMessage(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author.ID == s.State.User.ID || m.Author.Bot {
			return
		}
		if !strings.HasPrefix(m.Content, prefix) {
			return
		}

		args := strings.Fields(m.Content)
		if len(args) == 0 || len(args[0]) <= len(prefix) {
			return
		}
		name := strings.ToLower(strings.TrimPrefix(args[0], prefix))

		// Resolve alias to actual command name
		if actual, isAlias := commands.CommandAliases[name]; isAlias {
			name = actual
		}
		handler, exists := commands.CommandMap[name]
		if !exists {
			return
		}

		if !limiter.Allow(m.Author.ID, name) {
			retry := limiter.GetRetryAfter(m.Author.ID, name)
			s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Slow down! Try again in %d seconds.", retry))
			return
		}

		handler(b, s, m, args)
	}
}

func handleInteraction(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			if handler, exists := commands.SlashCommandHandlers[i.ApplicationCommandData().Name]; exists {
				handler(b, s, i)
			}
		case discordgo.InteractionMessageComponent:
			if handler, ok := commands.ComponentHandlerFor(i.MessageComponentData().CustomID); ok {
				handler(b, s, i)
			}
		}
	}
}

func main() {
	godotenv.Load()

	token := os.Getenv("DISCORD_TOKEN")
	dbURL := os.Getenv("DATABASE_URL")
	if token == "" || dbURL == "" {
		log.Fatal("DISCORD_TOKEN and DATABASE_URL must be set")
	}

	var maxWager int64
	if raw := os.Getenv("MAX_WAGER"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatalf("Invalid MAX_WAGER %q: %v", raw, err)
		}
		maxWager = parsed
	}

	b, err := bot.NewBot(token, dbURL, maxWager)
	if err != nil {
		log.Fatal(err)
	}

	b.Client.AddHandler(handleMessage(b))
	b.Client.AddHandler(handleInteraction(b))

	if err := b.Client.Open(); err != nil {
		log.Fatal(err)
	}
	defer b.Client.Close()

	// Register all slash commands
	commands.RegisterAllSlashCommands(b.Client, os.Getenv("GUILD_ID"))

	log.Println("Bot is running. Press Ctrl+C to exit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("Shutting down.")
}
