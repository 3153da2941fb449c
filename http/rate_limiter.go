package http

import (
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter hands every client capacity requests per refill period.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	refillDur   time.Duration
	clients     map[string]*clientBucket
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := newRateLimiter(capacity, refillDur, time.Now)
	go rl.cleanupLoop()
	return rl
}

func newRateLimiter(capacity int, refillDur time.Duration, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		capacity:    capacity,
		refillDur:   refillDur,
		clients:     make(map[string]*clientBucket),
		now:         now,
		stopCleanup: make(chan struct{}),
	}
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

// cleanup forgets clients idle for longer than bucketCleanupThreshold.
func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > bucketCleanupThreshold {
			delete(r.clients, key)
		}
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow reports whether the client identified by key may make a request,
// consuming one token if so.
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[key]

	if !exists {
		r.clients[key] = &clientBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return r.capacity > 0
	}

	if now.Sub(bucket.lastRefill) >= r.refillDur {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}
