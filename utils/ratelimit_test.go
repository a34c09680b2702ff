package utils

import "testing"

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("u1", "slots") {
			t.Fatalf("call %d should be allowed", i+1)
		}
	}
	if rl.Allow("u1", "slots") {
		t.Fatal("fourth call within the window should be limited")
	}
}

func TestRateLimiterTracksCommandsSeparately(t *testing.T) {
	rl := NewRateLimiter(1)

	if !rl.Allow("u1", "slots") {
		t.Fatal("first slots call should be allowed")
	}
	if !rl.Allow("u1", "work") {
		t.Fatal("work has its own counter and should be allowed")
	}
	if !rl.Allow("u2", "slots") {
		t.Fatal("another user should have a fresh counter")
	}
}

func TestRateLimiterRetryAfter(t *testing.T) {
	rl := NewRateLimiter(1)

	if got := rl.GetRetryAfter("u1", "slots"); got != 0 {
		t.Fatalf("unknown user should have no wait, got %d", got)
	}
	rl.Allow("u1", "slots")
	if got := rl.GetRetryAfter("u1", "slots"); got <= 0 || got > 60 {
		t.Fatalf("expected a wait within the minute window, got %d", got)
	}
}
