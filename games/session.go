package games

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type GameType string

const (
	Blackjack GameType = "blackjack"
	Slots     GameType = "slots"
	Coinflip  GameType = "coinflip"
	Cockfight GameType = "cockfight"
	ColorGame GameType = "colorgame"
)

type Status int

const (
	Open Status = iota
	Resolved
)

// BlackjackState is the per-game hand state of an open session.
type BlackjackState struct {
	Player []Card
	Dealer []Card
}

// Session is one in-progress wager: created when the wager is debited,
// discarded when resolved or idle-timed-out. Only the owning user may
// advance it.
type Session struct {
	ID       string
	UserID   string
	Game     GameType
	Wager    int64
	Deadline time.Time

	Blackjack *BlackjackState

	// OnExpire is invoked (outside the session lock) when the idle
	// timer resolves the session as abandoned.
	OnExpire func(*Session, Outcome)

	mu      sync.Mutex
	status  Status
	timer   *time.Timer
	pending *Outcome // computed outcome whose payout has not been credited yet
	debited int64    // balance right after the wager debit
}

func newSession(userID string, game GameType, wager int64) *Session {
	return &Session{
		ID:     uuid.New().String(),
		UserID: userID,
		Game:   game,
		Wager:  wager,
	}
}

// Status reports the session state; safe to call concurrently with
// resolution.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// stopTimer cancels the idle timer. Caller holds s.mu.
func (s *Session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// SessionStore holds the open sessions, one per (user, game type).
// Entries are removed on resolution or timeout.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

func sessionKey(userID string, game GameType) string {
	return userID + "/" + string(game)
}

// add registers the session, rejecting a second open session of the
// same type for the same user.
func (st *SessionStore) add(s *Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	key := sessionKey(s.UserID, s.Game)
	if _, exists := st.sessions[key]; exists {
		return ErrSessionAlreadyOpen
	}
	st.sessions[key] = s
	return nil
}

// get returns the open session for (user, game), if any.
func (st *SessionStore) get(userID string, game GameType) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[sessionKey(userID, game)]
	return s, ok
}

// remove drops the session if it is still the one registered.
func (st *SessionStore) remove(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	key := sessionKey(s.UserID, s.Game)
	if st.sessions[key] == s {
		delete(st.sessions, key)
	}
}

// Len reports how many sessions are open.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
