package utils

import (
	"sync"
	"time"
)

// RateLimiter caps per-user command throughput over a one-minute window.
type RateLimiter struct {
	limits    map[string]*userLimit
	perMinute int
	mu        sync.Mutex
}

// userLimit tracks rate limiting for a specific user
type userLimit struct {
	lastAccess time.Time
	count      int
}

// NewRateLimiter creates a new rate limiter allowing perMinute calls
// per user per command.
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		limits:    make(map[string]*userLimit),
		perMinute: perMinute,
	}
}

// Allow checks if a user is allowed to execute a command
// Returns true if allowed, false if rate limited
func (rl *RateLimiter) Allow(userID, command string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	key := userID + ":" + command
	now := time.Now()

	limit, exists := rl.limits[key]
	if !exists {
		rl.limits[key] = &userLimit{
			lastAccess: now,
			count:      1,
		}
		return true
	}

	// Reset the counter once the window has passed
	if now.Sub(limit.lastAccess) >= time.Minute {
		limit.lastAccess = now
		limit.count = 1
		return true
	}

	if limit.count >= rl.perMinute {
		return false
	}

	limit.count++
	return true
}

// GetRetryAfter returns the time in seconds until the user can try again
func (rl *RateLimiter) GetRetryAfter(userID, command string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	key := userID + ":" + command
	limit, exists := rl.limits[key]
	if !exists {
		return 0
	}

	elapsed := time.Since(limit.lastAccess)
	if elapsed >= time.Minute {
		return 0
	}

	return int((time.Minute - elapsed).Seconds())
}
