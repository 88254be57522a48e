package token_bucket

import (
	"math"
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// Clock подменяется в тестах.
type Clock func() time.Time

// TokenBucket копит дробные токены, так что медленная скорость пополнения
// не теряется при частых вызовах Allow.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        Clock
}

type Option func(*TokenBucket)

func WithClock(clock Clock) Option {
	return func(t *TokenBucket) {
		t.now = clock
	}
}

func NewTokenBucket(capacity int, refillRate float64, opts ...Option) *TokenBucket {
	tb := &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(tb)
	}
	tb.lastRefill = tb.now()
	return tb
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}
	t.lastRefill = now
	t.tokens = math.Min(t.capacity, t.tokens+elapsed*t.refillRate)
}
