package games

import (
	"errors"
	"sync"
	"testing"
)

// fakeLedger is an in-memory stand-in for the Postgres ledger with the
// same atomic semantics.
type fakeLedger struct {
	mu       sync.Mutex
	balances map[string]int64
	items    map[string]map[string]int

	failAdjust bool // simulate storage failure on credits
	debits     int
	credits    int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		balances: make(map[string]int64),
		items:    make(map[string]map[string]int),
	}
}

func (f *fakeLedger) Balance(userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[userID], nil
}

func (f *fakeLedger) Adjust(userID string, delta int64, reason string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAdjust && delta > 0 {
		return 0, errors.New("connection refused")
	}
	if delta > 0 {
		f.credits++
	}
	f.balances[userID] += delta
	return f.balances[userID], nil
}

func (f *fakeLedger) TryDebit(userID string, amount int64, reason string) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.balances[userID] < amount {
		return 0, false, nil
	}
	f.debits++
	f.balances[userID] -= amount
	return f.balances[userID], true, nil
}

func (f *fakeLedger) ItemCount(userID, item string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[userID][item], nil
}

func (f *fakeLedger) DebitWithItem(userID string, delta int64, item string, reason string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balances[userID] += delta
	if f.items[userID] == nil {
		f.items[userID] = make(map[string]int)
	}
	f.items[userID][item]--
	return f.balances[userID], nil
}

func (f *fakeLedger) setItem(userID, item string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.items[userID] == nil {
		f.items[userID] = make(map[string]int)
	}
	f.items[userID][item] = n
}

// scriptedRand replays a fixed sequence of draws.
type scriptedRand struct {
	vals []int
	i    int
}

func (s *scriptedRand) Intn(n int) int {
	if s.i >= len(s.vals) {
		return 0
	}
	v := s.vals[s.i] % n
	s.i++
	return v
}

func TestPlaceWagerValidation(t *testing.T) {
	l := newFakeLedger()
	l.balances["u1"] = 100
	e := NewEngine(l, &scriptedRand{}, Config{MaxWager: 1000})

	tests := []struct {
		name  string
		wager int64
		want  error
	}{
		{"zero wager", 0, ErrInvalidWager},
		{"negative wager", -5, ErrInvalidWager},
		{"over table limit", 5000, ErrWagerTooLarge},
		{"over balance", 500, ErrInsufficientBalance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Flip("u1", Heads, tt.wager)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Flip(%d) error = %v, want %v", tt.wager, err, tt.want)
			}
		})
	}

	if bal, _ := l.Balance("u1"); bal != 100 {
		t.Errorf("balance changed on rejected wagers: %d", bal)
	}
	if l.debits != 0 {
		t.Errorf("rejected wagers performed %d debits", l.debits)
	}
}

func TestWagerDebitedExactlyOnce(t *testing.T) {
	l := newFakeLedger()
	l.balances["u1"] = 100
	// Losing spin: three distinct symbols.
	e := NewEngine(l, &scriptedRand{vals: []int{0, 1, 2}}, Config{})

	if _, err := e.Spin("u1", 40); err != nil {
		t.Fatalf("Spin: %v", err)
	}
	if l.debits != 1 {
		t.Errorf("debits = %d, want 1", l.debits)
	}
	if bal, _ := l.Balance("u1"); bal != 60 {
		t.Errorf("balance = %d, want 60", bal)
	}
}

func TestInsufficientBalanceScenario(t *testing.T) {
	// Spec scenario: balance 5, coinflip wager 10.
	l := newFakeLedger()
	l.balances["u1"] = 5
	e := NewEngine(l, &scriptedRand{}, Config{})

	_, err := e.Flip("u1", Heads, 10)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("error = %v, want ErrInsufficientBalance", err)
	}
	if bal, _ := l.Balance("u1"); bal != 5 {
		t.Errorf("balance = %d, want unchanged 5", bal)
	}
}

func TestFlipOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		choice CoinFace
		coin   int // 0 heads, 1 tails
		want   Result
		bal    int64
	}{
		{"win on heads", Heads, 0, Win, 150},
		{"lose on tails", Heads, 1, Lose, 50},
		{"win on tails", Tails, 1, Win, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newFakeLedger()
			l.balances["u1"] = 100
			e := NewEngine(l, &scriptedRand{vals: []int{tt.coin}}, Config{})

			res, err := e.Flip("u1", tt.choice, 50)
			if err != nil {
				t.Fatalf("Flip: %v", err)
			}
			if res.Outcome.Result != tt.want {
				t.Errorf("result = %v, want %v", res.Outcome.Result, tt.want)
			}
			if res.Outcome.NewBalance != tt.bal {
				t.Errorf("new balance = %d, want %d", res.Outcome.NewBalance, tt.bal)
			}
		})
	}
}

func TestFightRequiresChicken(t *testing.T) {
	l := newFakeLedger()
	l.balances["u1"] = 100
	e := NewEngine(l, &scriptedRand{}, Config{})

	_, err := e.Fight("u1", 50)
	if !errors.Is(err, ErrMissingResource) {
		t.Fatalf("error = %v, want ErrMissingResource", err)
	}
	if bal, _ := l.Balance("u1"); bal != 100 {
		t.Errorf("balance = %d, want unchanged 100", bal)
	}
}

func TestFightLossConsumesChicken(t *testing.T) {
	l := newFakeLedger()
	l.balances["u1"] = 100
	l.setItem("u1", chickenItem, 2)
	e := NewEngine(l, &scriptedRand{vals: []int{1}}, Config{}) // 1 -> loss

	res, err := e.Fight("u1", 30)
	if err != nil {
		t.Fatalf("Fight: %v", err)
	}
	if res.Won {
		t.Fatal("expected a loss")
	}
	if res.ChickensLeft != 1 {
		t.Errorf("chickens left = %d, want 1", res.ChickensLeft)
	}
	if n, _ := l.ItemCount("u1", chickenItem); n != 1 {
		t.Errorf("ledger chickens = %d, want 1", n)
	}
	if res.Outcome.NewBalance != 70 {
		t.Errorf("new balance = %d, want 70", res.Outcome.NewBalance)
	}
}

func TestFightWinKeepsChicken(t *testing.T) {
	l := newFakeLedger()
	l.balances["u1"] = 100
	l.setItem("u1", chickenItem, 1)
	e := NewEngine(l, &scriptedRand{vals: []int{0}}, Config{}) // 0 -> win

	res, err := e.Fight("u1", 30)
	if err != nil {
		t.Fatalf("Fight: %v", err)
	}
	if !res.Won || res.ChickensLeft != 1 {
		t.Errorf("won=%v chickens=%d, want win with 1 chicken", res.Won, res.ChickensLeft)
	}
	if res.Outcome.NewBalance != 130 {
		t.Errorf("new balance = %d, want 130", res.Outcome.NewBalance)
	}
}
