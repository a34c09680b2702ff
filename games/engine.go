// Package games implements the wagering engine: the ledger-backed
// debit/credit flow shared by every game, the per-game draw and payout
// rules, and the session store for the one turn-based game (blackjack).
package games

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
)

// chickenItem is the ledger item consumed by a lost cockfight.
const chickenItem = "chickens_owned"

const defaultIdleTimeout = 60 * time.Second

// Ledger is the balance store the engine runs against. The production
// implementation is ledger.Ledger; tests use an in-memory fake.
type Ledger interface {
	Balance(userID string) (int64, error)
	Adjust(userID string, delta int64, reason string) (int64, error)
	TryDebit(userID string, amount int64, reason string) (int64, bool, error)
	ItemCount(userID, item string) (int, error)
	DebitWithItem(userID string, delta int64, item string, reason string) (int64, error)
}

type Config struct {
	MaxWager    int64         // 0 means no table limit
	IdleTimeout time.Duration // blackjack inactivity window
}

type Engine struct {
	ledger      Ledger
	rng         Rand
	sessions    *SessionStore
	validate    *validator.Validate
	maxWager    int64
	idleTimeout time.Duration
}

func NewEngine(l Ledger, r Rand, cfg Config) *Engine {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaultIdleTimeout
	}
	return &Engine{
		ledger:      l,
		rng:         r,
		sessions:    NewSessionStore(),
		validate:    validator.New(),
		maxWager:    cfg.MaxWager,
		idleTimeout: cfg.IdleTimeout,
	}
}

// Sessions exposes the store for inspection.
func (e *Engine) Sessions() *SessionStore { return e.sessions }

type wagerRequest struct {
	UserID string `validate:"required"`
	Amount int64  `validate:"required,gt=0"`
}

// placeWager validates the wager and debits it exactly once. Returns
// the balance right after the debit.
func (e *Engine) placeWager(userID string, amount int64, reason string) (int64, error) {
	if err := e.validate.Struct(wagerRequest{UserID: userID, Amount: amount}); err != nil {
		return 0, ErrInvalidWager
	}
	if e.maxWager > 0 && amount > e.maxWager {
		return 0, ErrWagerTooLarge
	}
	balance, ok, err := e.ledger.TryDebit(userID, amount, reason)
	if err != nil {
		return 0, &StorageError{Op: reason, Err: err}
	}
	if !ok {
		return 0, ErrInsufficientBalance
	}
	return balance, nil
}

// settle credits the payout (once) and fills in the resulting balance.
// A zero-payout outcome settles against the post-debit balance.
func (e *Engine) settle(userID string, o *Outcome, afterDebit int64, reason string) error {
	if o.Payout > 0 {
		balance, err := e.ledger.Adjust(userID, o.Payout, reason)
		if err != nil {
			serr := &StorageError{Op: reason, Err: err}
			log.Printf("Error applying payout for %s: %v", userID, err)
			return serr
		}
		o.NewBalance = balance
		return nil
	}
	o.NewBalance = afterDebit
	return nil
}

// SpinResult is an immediately-resolved slot spin.
type SpinResult struct {
	Symbols [3]string
	Outcome Outcome
}

// Spin debits the wager, draws three independent reels and settles.
func (e *Engine) Spin(userID string, wager int64) (SpinResult, error) {
	balance, err := e.placeWager(userID, wager, "slots wager")
	if err != nil {
		return SpinResult{}, err
	}

	var symbols [3]string
	for i := range symbols {
		symbols[i] = pick(e.rng, slotSymbols)
	}

	res := SpinResult{Symbols: symbols, Outcome: resolveSlots(symbols, wager)}
	err = e.settle(userID, &res.Outcome, balance, "slots payout")
	return res, err
}

// FlipResult is an immediately-resolved coinflip.
type FlipResult struct {
	Choice  CoinFace
	Landed  CoinFace
	Outcome Outcome
}

func (e *Engine) Flip(userID string, choice CoinFace, wager int64) (FlipResult, error) {
	balance, err := e.placeWager(userID, wager, "coinflip wager")
	if err != nil {
		return FlipResult{}, err
	}

	landed := Heads
	if e.rng.Intn(2) == 1 {
		landed = Tails
	}

	res := FlipResult{Choice: choice, Landed: landed, Outcome: resolveCoinflip(choice, landed, wager)}
	err = e.settle(userID, &res.Outcome, balance, "coinflip payout")
	return res, err
}

// FightResult is an immediately-resolved cockfight.
type FightResult struct {
	Won          bool
	ChickensLeft int
	Outcome      Outcome
}

// Fight requires an owned chicken. A loss forfeits the wager and one
// chicken, both applied in a single ledger statement.
func (e *Engine) Fight(userID string, wager int64) (FightResult, error) {
	chickens, err := e.ledger.ItemCount(userID, chickenItem)
	if err != nil {
		return FightResult{}, &StorageError{Op: "cockfight entry", Err: err}
	}
	if chickens <= 0 {
		return FightResult{}, ErrMissingResource
	}

	balance, err := e.placeWager(userID, wager, "cockfight wager")
	if err != nil {
		return FightResult{}, err
	}

	won := e.rng.Intn(2) == 0
	res := FightResult{Won: won, ChickensLeft: chickens, Outcome: resolveCockfight(won, wager)}
	if won {
		err = e.settle(userID, &res.Outcome, balance, "cockfight payout")
		return res, err
	}

	res.ChickensLeft = chickens - 1
	balance, err = e.ledger.DebitWithItem(userID, 0, chickenItem, "cockfight loss")
	if err != nil {
		log.Printf("Error consuming chicken for %s: %v", userID, err)
		return res, &StorageError{Op: "cockfight loss", Err: err}
	}
	res.Outcome.NewBalance = balance
	return res, nil
}

// ColorResult is an immediately-resolved color-game round.
type ColorResult struct {
	Roll    [3]Color
	Lines   []ColorLine
	Stake   int64 // wager times the number of picked colors
	Outcome Outcome
}

// Roll stakes the wager independently on each distinct picked color,
// debits the total once and credits one wager per matching die.
func (e *Engine) Roll(userID string, wager int64, picks []Color) (ColorResult, error) {
	picks = dedupeColors(picks)
	if len(picks) == 0 {
		return ColorResult{}, ErrInvalidWager
	}
	if wager <= 0 {
		return ColorResult{}, ErrInvalidWager
	}

	stake := wager * int64(len(picks))
	balance, err := e.placeWager(userID, stake, "colorgame wager")
	if err != nil {
		return ColorResult{}, err
	}

	var roll [3]Color
	for i := range roll {
		roll[i] = pick(e.rng, rollableColors)
	}

	outcome, lines := resolveColorGame(roll, picks, wager)
	res := ColorResult{Roll: roll, Lines: lines, Stake: stake, Outcome: outcome}
	err = e.settle(userID, &res.Outcome, balance, "colorgame payout")
	return res, err
}

func dedupeColors(picks []Color) []Color {
	seen := make(map[Color]bool, len(picks))
	out := picks[:0:0]
	for _, c := range picks {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
