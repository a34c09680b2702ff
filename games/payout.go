package games

import "fmt"

type Result int

const (
	Win Result = iota
	Lose
	Push
	Abandoned
)

// Outcome is a resolved session's terminal result. Payout is the amount
// credited at resolution (the wager was already debited at start), Net
// is the change relative to the balance before the wager.
type Outcome struct {
	Result     Result
	Payout     int64
	Net        int64
	Detail     string
	NewBalance int64
}

// Slot machine reels. Triples pay the symbol multiplier, a single pair
// pays 1.5x.
var slotSymbols = []string{"🍒", "🍋", "💎", "🍀", "7️⃣"}

var slotPayouts = map[string]int64{
	"🍒":  2,
	"🍋":  2,
	"💎":  5,
	"🍀":  3,
	"7️⃣": 10,
}

type CoinFace string

const (
	Heads CoinFace = "head"
	Tails CoinFace = "tail"
)

func ParseCoinFace(s string) (CoinFace, bool) {
	switch CoinFace(s) {
	case Heads, Tails:
		return CoinFace(s), true
	}
	return "", false
}

type Color string

const (
	Green  Color = "green"
	Yellow Color = "yellow"
	Pink   Color = "pink"
)

var rollableColors = []Color{Green, Yellow, Pink}

func ParseColor(s string) (Color, bool) {
	switch Color(s) {
	case Green, Yellow, Pink:
		return Color(s), true
	}
	return "", false
}

// ColorLine is the per-color breakdown of a color-game resolution.
type ColorLine struct {
	Color   Color
	Matches int
	Amount  int64 // credited for this color; 0 on a miss
}

func resolveBlackjack(state *BlackjackState, wager int64) Outcome {
	player := HandScore(state.Player)
	dealer := HandScore(state.Dealer)

	switch {
	case player > 21:
		return Outcome{Result: Lose, Net: -wager,
			Detail: fmt.Sprintf("busted with %d", player)}
	case dealer > 21:
		return Outcome{Result: Win, Payout: wager * 2, Net: wager,
			Detail: fmt.Sprintf("dealer busts with %d", dealer)}
	case player > dealer:
		return Outcome{Result: Win, Payout: wager * 2, Net: wager,
			Detail: fmt.Sprintf("%d beats dealer's %d", player, dealer)}
	case player == dealer:
		return Outcome{Result: Push, Payout: wager, Net: 0,
			Detail: fmt.Sprintf("tied at %d", player)}
	default:
		return Outcome{Result: Lose, Net: -wager,
			Detail: fmt.Sprintf("dealer's %d beats %d", dealer, player)}
	}
}

func resolveSlots(symbols [3]string, wager int64) Outcome {
	counts := make(map[string]int, 3)
	for _, sym := range symbols {
		counts[sym]++
	}

	for sym, n := range counts {
		if n == 3 {
			payout := wager * slotPayouts[sym]
			return Outcome{Result: Win, Payout: payout, Net: payout - wager,
				Detail: "jackpot, three " + sym}
		}
	}
	for sym, n := range counts {
		if n == 2 {
			payout := wager * 3 / 2
			return Outcome{Result: Win, Payout: payout, Net: payout - wager,
				Detail: "a pair of " + sym}
		}
	}
	return Outcome{Result: Lose, Net: -wager, Detail: "no matching symbols"}
}

func resolveCoinflip(choice, landed CoinFace, wager int64) Outcome {
	if choice == landed {
		return Outcome{Result: Win, Payout: wager * 2, Net: wager,
			Detail: fmt.Sprintf("coin landed on %s", landed)}
	}
	return Outcome{Result: Lose, Net: -wager,
		Detail: fmt.Sprintf("coin landed on %s", landed)}
}

func resolveCockfight(won bool, wager int64) Outcome {
	if won {
		return Outcome{Result: Win, Payout: wager * 2, Net: wager,
			Detail: "your chicken won the fight"}
	}
	return Outcome{Result: Lose, Net: -wager,
		Detail: "your chicken lost the fight"}
}

// resolveColorGame settles a stake of wager on each picked color against
// a three-die roll: each die matching a pick credits one wager.
func resolveColorGame(roll [3]Color, picks []Color, wager int64) (Outcome, []ColorLine) {
	counts := make(map[Color]int, 3)
	for _, c := range roll {
		counts[c]++
	}

	lines := make([]ColorLine, 0, len(picks))
	var payout int64
	for _, pick := range picks {
		n := counts[pick]
		line := ColorLine{Color: pick, Matches: n}
		if n > 0 {
			line.Amount = wager * int64(n)
			payout += line.Amount
		}
		lines = append(lines, line)
	}

	stake := wager * int64(len(picks))
	o := Outcome{Payout: payout, Net: payout - stake}
	switch {
	case o.Net > 0:
		o.Result = Win
		o.Detail = fmt.Sprintf("%d matching dice", totalMatches(lines))
	case o.Net < 0:
		o.Result = Lose
		o.Detail = fmt.Sprintf("%d matching dice", totalMatches(lines))
	default:
		o.Result = Push
		o.Detail = "broke even"
	}
	return o, lines
}

func totalMatches(lines []ColorLine) int {
	n := 0
	for _, l := range lines {
		n += l.Matches
	}
	return n
}
