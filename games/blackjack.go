package games

import (
	"log"
	"time"
)

// StartBlackjack debits the wager, deals two cards to the player and
// one to the dealer, and opens a session. A user can hold only one open
// blackjack session; the onExpire callback fires if the idle timer
// resolves it first.
func (e *Engine) StartBlackjack(userID string, wager int64, onExpire func(*Session, Outcome)) (*Session, error) {
	s := newSession(userID, Blackjack, wager)
	s.OnExpire = onExpire
	if err := e.sessions.add(s); err != nil {
		return nil, err
	}

	balance, err := e.placeWager(userID, wager, "blackjack wager")
	if err != nil {
		e.sessions.remove(s)
		return nil, err
	}

	s.mu.Lock()
	s.debited = balance
	s.Blackjack = &BlackjackState{
		Player: []Card{drawCard(e.rng), drawCard(e.rng)},
		Dealer: []Card{drawCard(e.rng)},
	}
	e.armTimerLocked(s)
	s.mu.Unlock()
	return s, nil
}

// Hit draws one card for the player. A bust resolves the session; the
// returned Outcome is nil while the session stays open. A non-empty
// sessionID must match the open session, so stale buttons from an
// earlier game cannot act on a newer one.
func (e *Engine) Hit(userID, sessionID string) (*Session, *Outcome, error) {
	s, ok := e.sessions.get(userID, Blackjack)
	if !ok || (sessionID != "" && s.ID != sessionID) {
		return nil, nil, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == Resolved {
		return nil, nil, ErrSessionNotFound
	}
	if s.pending != nil {
		o, err := e.resolveLocked(s, *s.pending)
		return s, o, err
	}

	s.Blackjack.Player = append(s.Blackjack.Player, drawCard(e.rng))
	if HandScore(s.Blackjack.Player) > 21 {
		o, err := e.resolveLocked(s, resolveBlackjack(s.Blackjack, s.Wager))
		return s, o, err
	}

	e.armTimerLocked(s)
	return s, nil, nil
}

// Stand plays out the dealer (draws until 17 or more) and resolves.
func (e *Engine) Stand(userID, sessionID string) (*Session, *Outcome, error) {
	s, ok := e.sessions.get(userID, Blackjack)
	if !ok || (sessionID != "" && s.ID != sessionID) {
		return nil, nil, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == Resolved {
		return nil, nil, ErrSessionNotFound
	}
	if s.pending != nil {
		o, err := e.resolveLocked(s, *s.pending)
		return s, o, err
	}

	for HandScore(s.Blackjack.Dealer) < 17 {
		s.Blackjack.Dealer = append(s.Blackjack.Dealer, drawCard(e.rng))
	}

	o, err := e.resolveLocked(s, resolveBlackjack(s.Blackjack, s.Wager))
	return s, o, err
}

// resolveLocked applies the terminal outcome: payout credited exactly
// once, session removed from the store. If the payout credit fails the
// session stays Open with the outcome parked for retry, never
// re-rolled. Caller holds s.mu.
func (e *Engine) resolveLocked(s *Session, o Outcome) (*Outcome, error) {
	if o.Payout > 0 {
		balance, err := e.ledger.Adjust(s.UserID, o.Payout, string(s.Game)+" payout")
		if err != nil {
			log.Printf("Error applying %s payout for %s: %v", s.Game, s.UserID, err)
			s.pending = &o
			e.armTimerLocked(s)
			return nil, &StorageError{Op: string(s.Game) + " payout", Err: err}
		}
		o.NewBalance = balance
	} else {
		balance, err := e.ledger.Balance(s.UserID)
		if err != nil {
			log.Printf("Error reading balance for %s: %v", s.UserID, err)
			balance = s.debited
		}
		o.NewBalance = balance
	}

	s.status = Resolved
	s.pending = nil
	s.stopTimer()
	e.sessions.remove(s)
	return &o, nil
}

// expire is the idle-timer path. It races player actions for the
// resolution; whichever locks first wins and the other is a no-op.
func (e *Engine) expire(s *Session) {
	s.mu.Lock()
	if s.status == Resolved {
		s.mu.Unlock()
		return
	}

	o := Outcome{Result: Abandoned, Net: -s.Wager, Detail: "game abandoned, wager forfeited"}
	if s.pending != nil {
		o = *s.pending
	}
	out, err := e.resolveLocked(s, o)
	cb := s.OnExpire
	s.mu.Unlock()

	if err != nil {
		// Payout still failing; the rearmed timer retries it.
		return
	}
	if cb != nil {
		cb(s, *out)
	}
}

// armTimerLocked (re)starts the idle countdown. Caller holds s.mu.
func (e *Engine) armTimerLocked(s *Session) {
	s.stopTimer()
	s.Deadline = time.Now().Add(e.idleTimeout)
	s.timer = time.AfterFunc(e.idleTimeout, func() { e.expire(s) })
}
