package games

import "strconv"

// Card is a blackjack rank; suits never matter for scoring.
type Card string

var deckRanks = []Card{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func drawCard(r Rand) Card {
	return pick(r, deckRanks)
}

func cardValue(c Card) int {
	switch c {
	case "A":
		return 11
	case "J", "Q", "K":
		return 10
	default:
		n, _ := strconv.Atoi(string(c))
		return n
	}
}

// HandScore totals a hand with soft aces: each ace counts 11 until the
// hand would bust, then recounts as 1.
func HandScore(hand []Card) int {
	score := 0
	aces := 0
	for _, c := range hand {
		score += cardValue(c)
		if c == "A" {
			aces++
		}
	}
	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}
	return score
}
