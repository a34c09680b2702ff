package games

import "testing"

func TestHandScore(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		want int
	}{
		{"two aces score 12", []Card{"A", "A"}, 12},
		{"ace counts 11 while safe", []Card{"A", "K"}, 21},
		{"ace drops to 1 on bust", []Card{"A", "K", "5"}, 16},
		{"both aces drop", []Card{"A", "A", "K"}, 12},
		{"face cards are 10", []Card{"J", "Q"}, 20},
		{"plain total", []Card{"10", "9"}, 19},
		{"three aces", []Card{"A", "A", "9"}, 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandScore(tt.hand); got != tt.want {
				t.Errorf("HandScore(%v) = %d, want %d", tt.hand, got, tt.want)
			}
		})
	}
}
