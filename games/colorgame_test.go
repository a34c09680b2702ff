package games

import (
	"errors"
	"testing"
)

// rollableColors indexes: green=0 yellow=1 pink=2

func TestRollNetIsMatchesMinusStake(t *testing.T) {
	// Staking b on k colors with m matching dice nets b*m - b*k.
	tests := []struct {
		name  string
		picks []Color
		roll  []int
		m     int64
	}{
		{"one color, no match", []Color{Green}, []int{1, 1, 2}, 0},
		{"one color, one match", []Color{Green}, []int{0, 1, 2}, 1},
		{"one color, triple match", []Color{Green}, []int{0, 0, 0}, 3},
		{"two colors, two matches", []Color{Green, Yellow}, []int{0, 1, 2}, 2},
		{"three colors, three matches", []Color{Green, Yellow, Pink}, []int{0, 1, 2}, 3},
		{"two colors, break even", []Color{Green, Pink}, []int{0, 2, 1}, 2},
	}

	const b = int64(100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newFakeLedger()
			l.balances["u1"] = 10000
			e := NewEngine(l, &scriptedRand{vals: tt.roll}, Config{})

			res, err := e.Roll("u1", b, tt.picks)
			if err != nil {
				t.Fatalf("Roll: %v", err)
			}

			k := int64(len(tt.picks))
			wantNet := b*tt.m - b*k
			if res.Outcome.Net != wantNet {
				t.Errorf("net = %d, want %d", res.Outcome.Net, wantNet)
			}
			if res.Stake != b*k {
				t.Errorf("stake = %d, want %d", res.Stake, b*k)
			}
			if bal, _ := l.Balance("u1"); bal != 10000+wantNet {
				t.Errorf("balance = %d, want %d", bal, 10000+wantNet)
			}
			if l.debits != 1 {
				t.Errorf("debits = %d, want 1 (whole stake at once)", l.debits)
			}
		})
	}
}

func TestRollDedupesPicks(t *testing.T) {
	l := newFakeLedger()
	l.balances["u1"] = 1000
	e := NewEngine(l, &scriptedRand{vals: []int{1, 1, 1}}, Config{})

	res, err := e.Roll("u1", 100, []Color{Green, Green, Green})
	if err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if res.Stake != 100 {
		t.Errorf("stake = %d, want 100 (duplicates collapse)", res.Stake)
	}
	if len(res.Lines) != 1 {
		t.Errorf("lines = %d, want 1", len(res.Lines))
	}
}

func TestRollRejectsEmptyPicks(t *testing.T) {
	l := newFakeLedger()
	l.balances["u1"] = 1000
	e := NewEngine(l, &scriptedRand{}, Config{})

	_, err := e.Roll("u1", 100, nil)
	if !errors.Is(err, ErrInvalidWager) {
		t.Fatalf("error = %v, want ErrInvalidWager", err)
	}
}

func TestRollStakeVersusBalance(t *testing.T) {
	// Each color carries its own wager, so three picks need 3x the balance.
	l := newFakeLedger()
	l.balances["u1"] = 250
	e := NewEngine(l, &scriptedRand{}, Config{})

	_, err := e.Roll("u1", 100, []Color{Green, Yellow, Pink})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("error = %v, want ErrInsufficientBalance", err)
	}
	if bal, _ := l.Balance("u1"); bal != 250 {
		t.Errorf("balance = %d, want unchanged 250", bal)
	}
}
