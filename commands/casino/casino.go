// Package casino holds the wagering game commands: blackjack, slots,
// coinflip, cockfight and the color game. Each command validates and
// places the wager through the shared game engine; this package only
// parses input and renders results.
package casino

import (
	"errors"
	"log"
	"strconv"

	"ArcadiaBot/bot"
	"ArcadiaBot/games"
	"ArcadiaBot/utils"
)

func coins(n int64) string {
	return "₱" + utils.FormatAmount(n)
}

// parseWager accepts a plain amount or "all".
func parseWager(b *bot.Bot, userID, arg string) (int64, error) {
	if arg == "all" {
		balance, err := b.Ledger.Balance(userID)
		if err != nil {
			return 0, err
		}
		return balance, nil
	}
	amount, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, games.ErrInvalidWager
	}
	return amount, nil
}

// gameErrorText maps engine rejections to player-facing messages.
func gameErrorText(err error) string {
	switch {
	case errors.Is(err, games.ErrInvalidWager):
		return "❌ Bet must be more than 0."
	case errors.Is(err, games.ErrWagerTooLarge):
		return "❌ That bet is over the table limit."
	case errors.Is(err, games.ErrInsufficientBalance):
		return "❌ You don't have enough coins for that bet."
	case errors.Is(err, games.ErrMissingResource):
		return "❌ You need at least one 🐓 Chicken to enter a cockfight. Buy one from `/shop`."
	case errors.Is(err, games.ErrSessionAlreadyOpen):
		return "❌ Finish your current game first."
	case errors.Is(err, games.ErrSessionNotFound):
		return "❌ You have no game in progress."
	default:
		log.Printf("Game error: %v", err)
		return "An error occurred. Please try again."
	}
}
