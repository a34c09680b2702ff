package games

import (
	"errors"
	"fmt"
)

// Rejection reasons reported back to the player. None of these mean the
// wager was debited.
var (
	ErrInvalidWager        = errors.New("wager must be a positive amount")
	ErrWagerTooLarge       = errors.New("wager exceeds the table limit")
	ErrInsufficientBalance = errors.New("not enough balance for that wager")
	ErrMissingResource     = errors.New("missing a required item")
	ErrSessionAlreadyOpen  = errors.New("a game of that type is already in progress")
	ErrSessionNotFound     = errors.New("no game of that type in progress")
)

// StorageError wraps a failure at the ledger boundary. A debit that
// failed with a StorageError was not applied; a payout that failed with
// one is retried, never re-rolled.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
