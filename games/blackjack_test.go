package games

import (
	"errors"
	"testing"
	"time"
)

// deckRanks indexes used by the scripted draws below:
// A=0 2=1 3=2 4=3 5=4 6=5 7=6 8=7 9=8 10=9 J=10 Q=11 K=12

func TestBlackjackPlayerWinScenario(t *testing.T) {
	// balance 100, wager 50, player {10,9}=19, dealer {10,7}=17 -> win, balance 150.
	l := newFakeLedger()
	l.balances["u1"] = 100
	e := NewEngine(l, &scriptedRand{vals: []int{9, 8, 9, 6}}, Config{})

	s, err := e.StartBlackjack("u1", 50, nil)
	if err != nil {
		t.Fatalf("StartBlackjack: %v", err)
	}
	if got := HandScore(s.Blackjack.Player); got != 19 {
		t.Fatalf("player score = %d, want 19", got)
	}
	if bal, _ := l.Balance("u1"); bal != 50 {
		t.Fatalf("balance after debit = %d, want 50", bal)
	}

	_, o, err := e.Stand("u1", "")
	if err != nil {
		t.Fatalf("Stand: %v", err)
	}
	if o.Result != Win {
		t.Errorf("result = %v, want Win", o.Result)
	}
	if got := HandScore(s.Blackjack.Dealer); got != 17 {
		t.Errorf("dealer score = %d, want 17", got)
	}
	if o.NewBalance != 150 {
		t.Errorf("new balance = %d, want 150", o.NewBalance)
	}
	if e.Sessions().Len() != 0 {
		t.Error("session not removed after resolution")
	}
}

func TestBlackjackDealerDrawsToSeventeen(t *testing.T) {
	// Dealer starts with 2 and must keep drawing 5s until reaching 17.
	l := newFakeLedger()
	l.balances["u1"] = 100
	e := NewEngine(l, &scriptedRand{vals: []int{9, 9, 1, 4, 4, 4}}, Config{})

	if _, err := e.StartBlackjack("u1", 10, nil); err != nil {
		t.Fatalf("StartBlackjack: %v", err)
	}
	s, _, err := e.Stand("u1", "")
	if err != nil {
		t.Fatalf("Stand: %v", err)
	}

	if got := HandScore(s.Blackjack.Dealer); got != 17 {
		t.Errorf("dealer stopped at %d, want exactly 17", got)
	}
	if len(s.Blackjack.Dealer) != 4 {
		t.Errorf("dealer drew %d cards, want 4", len(s.Blackjack.Dealer))
	}
}

func TestBlackjackBustOnHit(t *testing.T) {
	// Player {10,9}, hits into a K -> 29, then soft scoring has no ace to save it.
	l := newFakeLedger()
	l.balances["u1"] = 100
	e := NewEngine(l, &scriptedRand{vals: []int{9, 8, 9, 12}}, Config{})

	if _, err := e.StartBlackjack("u1", 40, nil); err != nil {
		t.Fatalf("StartBlackjack: %v", err)
	}
	_, o, err := e.Hit("u1", "")
	if err != nil {
		t.Fatalf("Hit: %v", err)
	}
	if o == nil || o.Result != Lose {
		t.Fatalf("outcome = %+v, want a bust loss", o)
	}
	if o.NewBalance != 60 {
		t.Errorf("new balance = %d, want 60", o.NewBalance)
	}
	if e.Sessions().Len() != 0 {
		t.Error("busted session not removed")
	}
}

func TestBlackjackPushRefundsWager(t *testing.T) {
	// Player {10,9}=19, dealer {10, 9}=19 -> push, wager refunded.
	l := newFakeLedger()
	l.balances["u1"] = 100
	e := NewEngine(l, &scriptedRand{vals: []int{9, 8, 9, 8}}, Config{})

	if _, err := e.StartBlackjack("u1", 50, nil); err != nil {
		t.Fatalf("StartBlackjack: %v", err)
	}
	_, o, err := e.Stand("u1", "")
	if err != nil {
		t.Fatalf("Stand: %v", err)
	}
	if o.Result != Push {
		t.Errorf("result = %v, want Push", o.Result)
	}
	if o.NewBalance != 100 {
		t.Errorf("new balance = %d, want 100", o.NewBalance)
	}
}

func TestBlackjackSecondStartRejected(t *testing.T) {
	l := newFakeLedger()
	l.balances["u1"] = 100
	e := NewEngine(l, &scriptedRand{vals: []int{1, 1, 1, 1, 1, 1}}, Config{})

	if _, err := e.StartBlackjack("u1", 10, nil); err != nil {
		t.Fatalf("StartBlackjack: %v", err)
	}
	_, err := e.StartBlackjack("u1", 10, nil)
	if !errors.Is(err, ErrSessionAlreadyOpen) {
		t.Fatalf("second start error = %v, want ErrSessionAlreadyOpen", err)
	}
	if bal, _ := l.Balance("u1"); bal != 90 {
		t.Errorf("balance = %d, want 90 (only one wager debited)", bal)
	}
}

func TestBlackjackResolvedSessionIsGone(t *testing.T) {
	l := newFakeLedger()
	l.balances["u1"] = 100
	e := NewEngine(l, &scriptedRand{vals: []int{9, 8, 9, 6}}, Config{})

	if _, err := e.StartBlackjack("u1", 50, nil); err != nil {
		t.Fatalf("StartBlackjack: %v", err)
	}
	if _, _, err := e.Stand("u1", ""); err != nil {
		t.Fatalf("Stand: %v", err)
	}

	// A second stand must not double-pay.
	_, _, err := e.Stand("u1", "")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("second stand error = %v, want ErrSessionNotFound", err)
	}
	if bal, _ := l.Balance("u1"); bal != 150 {
		t.Errorf("balance = %d, want 150 (single payout)", bal)
	}
}

func TestBlackjackIdleTimeoutForfeits(t *testing.T) {
	l := newFakeLedger()
	l.balances["u1"] = 100
	e := NewEngine(l, &scriptedRand{vals: []int{9, 8, 9}}, Config{IdleTimeout: 10 * time.Millisecond})

	expired := make(chan Outcome, 1)
	_, err := e.StartBlackjack("u1", 50, func(_ *Session, o Outcome) {
		expired <- o
	})
	if err != nil {
		t.Fatalf("StartBlackjack: %v", err)
	}

	select {
	case o := <-expired:
		if o.Result != Abandoned {
			t.Errorf("result = %v, want Abandoned", o.Result)
		}
	case <-time.After(time.Second):
		t.Fatal("idle timer never fired")
	}

	if bal, _ := l.Balance("u1"); bal != 50 {
		t.Errorf("balance = %d, want 50 (wager forfeited)", bal)
	}
	if e.Sessions().Len() != 0 {
		t.Error("expired session not removed")
	}
	if _, _, err := e.Stand("u1", ""); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("stand after expiry error = %v, want ErrSessionNotFound", err)
	}
}

func TestBlackjackPayoutRetryAfterStorageError(t *testing.T) {
	// Winning stand with a failing credit leaves the session open and
	// the outcome parked; the retry pays out once.
	l := newFakeLedger()
	l.balances["u1"] = 100
	e := NewEngine(l, &scriptedRand{vals: []int{9, 8, 9, 6}}, Config{})

	if _, err := e.StartBlackjack("u1", 50, nil); err != nil {
		t.Fatalf("StartBlackjack: %v", err)
	}

	l.failAdjust = true
	_, _, err := e.Stand("u1", "")
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want StorageError", err)
	}
	if e.Sessions().Len() != 1 {
		t.Fatal("session dropped despite unpaid payout")
	}

	l.failAdjust = false
	_, o, err := e.Stand("u1", "")
	if err != nil {
		t.Fatalf("retry stand: %v", err)
	}
	if o.Result != Win || o.NewBalance != 150 {
		t.Errorf("outcome = %+v, want win with balance 150", o)
	}
	if l.credits != 1 {
		t.Errorf("credits = %d, want exactly 1", l.credits)
	}
}
