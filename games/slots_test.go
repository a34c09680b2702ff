package games

import "testing"

// slotSymbols indexes: 🍒=0 🍋=1 💎=2 🍀=3 7️⃣=4

func TestSpinJackpotScenario(t *testing.T) {
	// wager 20, [💎,💎,💎] -> payout 20x5=100 credited, net +80.
	l := newFakeLedger()
	l.balances["u1"] = 100
	e := NewEngine(l, &scriptedRand{vals: []int{2, 2, 2}}, Config{})

	res, err := e.Spin("u1", 20)
	if err != nil {
		t.Fatalf("Spin: %v", err)
	}
	if res.Outcome.Result != Win {
		t.Errorf("result = %v, want Win", res.Outcome.Result)
	}
	if res.Outcome.Payout != 100 {
		t.Errorf("payout = %d, want 100", res.Outcome.Payout)
	}
	if res.Outcome.Net != 80 {
		t.Errorf("net = %d, want 80", res.Outcome.Net)
	}
	if res.Outcome.NewBalance != 180 {
		t.Errorf("new balance = %d, want 180", res.Outcome.NewBalance)
	}
}

func TestSpinPairPaysBetweenJackpotAndLoss(t *testing.T) {
	wager := int64(20)
	spin := func(vals []int) Outcome {
		l := newFakeLedger()
		l.balances["u1"] = 1000
		e := NewEngine(l, &scriptedRand{vals: vals}, Config{})
		res, err := e.Spin("u1", wager)
		if err != nil {
			t.Fatalf("Spin: %v", err)
		}
		return res.Outcome
	}

	triple := spin([]int{0, 0, 0}) // three 🍒, lowest multiplier
	pair := spin([]int{0, 0, 1})   // pair of 🍒
	miss := spin([]int{0, 1, 2})   // all different

	if pair.Payout != wager*3/2 {
		t.Errorf("pair payout = %d, want %d", pair.Payout, wager*3/2)
	}
	if miss.Payout != 0 {
		t.Errorf("miss payout = %d, want 0", miss.Payout)
	}
	// Three of a kind always beats a pair, which always beats a miss.
	if triple.Payout <= pair.Payout || pair.Payout <= miss.Payout {
		t.Errorf("payout ordering violated: triple=%d pair=%d miss=%d",
			triple.Payout, pair.Payout, miss.Payout)
	}
}

func TestSpinPairDetection(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		want Result
	}{
		{"pair in front", []int{3, 3, 1}, Win},
		{"pair split", []int{3, 1, 3}, Win},
		{"pair in back", []int{1, 3, 3}, Win},
		{"no pair", []int{0, 1, 4}, Lose},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newFakeLedger()
			l.balances["u1"] = 100
			e := NewEngine(l, &scriptedRand{vals: tt.vals}, Config{})
			res, err := e.Spin("u1", 10)
			if err != nil {
				t.Fatalf("Spin: %v", err)
			}
			if res.Outcome.Result != tt.want {
				t.Errorf("result = %v, want %v", res.Outcome.Result, tt.want)
			}
		})
	}
}
