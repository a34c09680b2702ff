// Package ledger owns the per-user balance and item counters. Every
// mutation is a single SQL statement so that two commands racing on the
// same user cannot lose an update; handlers never compute a new balance
// from a previously read value.
package ledger

import (
	"database/sql"
	"fmt"
	"log"
)

// Item names match the users table columns they count.
const (
	ItemChicken    = "chickens_owned"
	ItemAntiRob    = "anti_rob_items"
	ItemCustomRole = "custom_roles"
)

var itemColumns = map[string]bool{
	ItemChicken:    true,
	ItemAntiRob:    true,
	ItemCustomRole: true,
}

// Entry is one row of the leaderboard query.
type Entry struct {
	UserID  string
	Balance int64
}

type Ledger struct {
	db *sql.DB
}

func New(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// Balance returns the user's balance, 0 if no record exists.
func (l *Ledger) Balance(userID string) (int64, error) {
	var balance int64
	err := l.db.QueryRow("SELECT balance FROM users WHERE user_id = $1", userID).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("querying balance: %w", err)
	}
	return balance, nil
}

// Adjust applies delta to the user's balance, creating the record if
// absent, and returns the new balance.
func (l *Ledger) Adjust(userID string, delta int64, reason string) (int64, error) {
	var balance int64
	err := l.db.QueryRow(`
		INSERT INTO users (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET balance = users.balance + $2
		RETURNING balance
	`, userID, delta).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("adjusting balance: %w", err)
	}
	l.record(userID, delta, balance, reason)
	return balance, nil
}

// TryDebit deducts amount only if the balance covers it, in one
// statement. Returns the new balance and whether the debit happened.
func (l *Ledger) TryDebit(userID string, amount int64, reason string) (int64, bool, error) {
	var balance int64
	err := l.db.QueryRow(`
		UPDATE users SET balance = balance - $2
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance
	`, userID, amount).Scan(&balance)
	if err == sql.ErrNoRows {
		// Absent record means balance 0, which also cannot cover amount.
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("debiting balance: %w", err)
	}
	l.record(userID, -amount, balance, reason)
	return balance, true, nil
}

// ItemCount returns how many of the named item the user owns.
func (l *Ledger) ItemCount(userID, item string) (int, error) {
	if !itemColumns[item] {
		return 0, fmt.Errorf("unknown item %q", item)
	}
	var count int
	err := l.db.QueryRow("SELECT "+item+" FROM users WHERE user_id = $1", userID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("querying %s: %w", item, err)
	}
	return count, nil
}

// AdjustItem applies delta to the named item counter.
func (l *Ledger) AdjustItem(userID, item string, delta int) (int, error) {
	if !itemColumns[item] {
		return 0, fmt.Errorf("unknown item %q", item)
	}
	var count int
	err := l.db.QueryRow(`
		INSERT INTO users (user_id, `+item+`)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET `+item+` = users.`+item+` + $2
		RETURNING `+item+`
	`, userID, delta).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("adjusting %s: %w", item, err)
	}
	return count, nil
}

// DebitWithItem removes one unit of the item together with the balance
// delta, in a single statement. Used by the cockfight loss path.
func (l *Ledger) DebitWithItem(userID string, delta int64, item string, reason string) (int64, error) {
	if !itemColumns[item] {
		return 0, fmt.Errorf("unknown item %q", item)
	}
	var balance int64
	err := l.db.QueryRow(`
		UPDATE users SET balance = balance + $2, `+item+` = `+item+` - 1
		WHERE user_id = $1
		RETURNING balance
	`, userID, delta).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("adjusting balance and %s: %w", item, err)
	}
	l.record(userID, delta, balance, reason)
	return balance, nil
}

// BuyItem debits cost and credits quantity of the item only if the
// balance covers the cost. Returns the new balance and whether the
// purchase happened.
func (l *Ledger) BuyItem(userID string, cost int64, item string, quantity int) (int64, bool, error) {
	if !itemColumns[item] {
		return 0, false, fmt.Errorf("unknown item %q", item)
	}
	var balance int64
	err := l.db.QueryRow(`
		UPDATE users SET balance = balance - $2, `+item+` = `+item+` + $3
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance
	`, userID, cost, quantity).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("buying %s: %w", item, err)
	}
	l.record(userID, -cost, balance, "buy "+item)
	return balance, true, nil
}

// Top returns the n richest users.
func (l *Ledger) Top(n int) ([]Entry, error) {
	rows, err := l.db.Query("SELECT user_id, balance FROM users ORDER BY balance DESC LIMIT $1", n)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.UserID, &e.Balance); err != nil {
			return nil, fmt.Errorf("scanning leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// record writes an audit row. Failures are logged, never surfaced: the
// balance mutation already committed.
func (l *Ledger) record(userID string, amount, balanceAfter int64, reason string) {
	_, err := l.db.Exec(`
		INSERT INTO transactions (user_id, amount, balance_after, reason)
		VALUES ($1, $2, $3, $4)
	`, userID, amount, balanceAfter, reason)
	if err != nil {
		log.Printf("Error logging transaction for %s: %v", userID, err)
	}
}
