package provider

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a token bucket that paces calls to the upstream API.
// One token refills per interval, up to the burst capacity.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	tokens   int
	interval time.Duration
	last     time.Time
}

func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		capacity: capacity,
		tokens:   capacity,
		interval: interval,
		last:     time.Now(),
	}
}

// Wait consumes a token, blocking until one refills or ctx ends.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		if r.take() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.interval):
		}
	}
}

func (r *RateLimiter) take() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if refilled := int(time.Since(r.last) / r.interval); refilled > 0 {
		r.tokens = min(r.tokens+refilled, r.capacity)
		r.last = r.last.Add(time.Duration(refilled) * r.interval)
	}
	if r.tokens == 0 {
		return false
	}
	r.tokens--
	return true
}
