package bot

import (
	"database/sql"
	"time"

	"github.com/bwmarrin/discordgo"
	_ "github.com/lib/pq"
	"github.com/patrickmn/go-cache"

	"ArcadiaBot/games"
	"ArcadiaBot/ledger"
)

type Bot struct {
	Db     *sql.DB
	Client *discordgo.Session
	Ledger *ledger.Ledger
	Games  *games.Engine

	// Cooldowns holds per-user command cooldowns (work salary etc.)
	// with automatic expiry.
	Cooldowns *cache.Cache
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id TEXT PRIMARY KEY,
    balance BIGINT DEFAULT 0,
    chickens_owned INTEGER DEFAULT 0,
    anti_rob_items INTEGER DEFAULT 0,
    custom_roles INTEGER DEFAULT 0,
    is_admin BOOLEAN DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS transactions (
    id SERIAL PRIMARY KEY,
    user_id TEXT NOT NULL,
    amount BIGINT NOT NULL,
    balance_after BIGINT NOT NULL,
    reason TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT NOW()
);`

func NewBot(token string, dbURL string, maxWager int64) (*Bot, error) {
	client, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	client.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	l := ledger.New(db)
	return &Bot{
		Db:        db,
		Client:    client,
		Ledger:    l,
		Games:     games.NewEngine(l, games.NewRand(), games.Config{MaxWager: maxWager}),
		Cooldowns: cache.New(time.Hour, 10*time.Minute),
	}, nil
}

func (b *Bot) IsAdmin(userID string) (bool, error) {
	var isAdmin bool
	err := b.Db.QueryRow("SELECT is_admin FROM users WHERE user_id = $1", userID).Scan(&isAdmin)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil // user not found, cant be admin
		}
		return false, err // db err
	}
	return isAdmin, nil
}
