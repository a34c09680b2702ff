package games

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the single source of randomness for every game. Keeping it an
// interface lets tests script exact draws instead of asserting on
// whatever math/rand produced.
type Rand interface {
	Intn(n int) int
}

// lockedRand guards a math/rand source, which is not safe under the
// concurrent event handlers discordgo runs.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// NewRand returns the production source.
func NewRand() Rand {
	return &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func pick[T any](r Rand, options []T) T {
	return options[r.Intn(len(options))]
}
