package token_bucket

import (
	"sync"
	"time"
)

// TokenBucket пропускает capacity запросов подряд и пополняется на refillRate токенов в секунду.
type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now())
}

func newTokenBucket(capacity int, refillRate float64, now time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now,
	}
}

func (t *TokenBucket) Allow() bool {
	return t.allowAt(time.Now())
}

func (t *TokenBucket) allowAt(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(now)

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// дробные токены копятся, поэтому медленное пополнение не теряется
func (t *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

type Option func(*ClientLimiter)

func WithClock(clock func() time.Time) Option {
	return func(l *ClientLimiter) {
		l.clock = clock
	}
}

// ClientLimiter держит отдельный bucket на каждого клиента.
// Клиенты, не приходившие дольше idleTTL, забываются.
type ClientLimiter struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	clock      func() time.Time

	mu        sync.Mutex
	buckets   map[string]*clientBucket
	lastSweep time.Time
}

type clientBucket struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewClientLimiter(capacity int, refillRate float64, idleTTL time.Duration, opts ...Option) *ClientLimiter {
	l := &ClientLimiter{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		clock:      time.Now,
		buckets:    make(map[string]*clientBucket),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.clock()

	return l
}

func (l *ClientLimiter) Allow(client string) bool {
	now := l.clock()

	l.mu.Lock()
	l.sweep(now)
	cb, ok := l.buckets[client]
	if !ok {
		cb = &clientBucket{bucket: newTokenBucket(l.capacity, l.refillRate, now)}
		l.buckets[client] = cb
	}
	cb.lastSeen = now
	l.mu.Unlock()

	return cb.bucket.allowAt(now)
}

// Clients возвращает число отслеживаемых клиентов.
func (l *ClientLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.buckets)
}

func (l *ClientLimiter) sweep(now time.Time) {
	if l.idleTTL <= 0 || now.Sub(l.lastSweep) < l.idleTTL {
		return
	}

	for client, cb := range l.buckets {
		if now.Sub(cb.lastSeen) >= l.idleTTL {
			delete(l.buckets, client)
		}
	}
	l.lastSweep = now
}
