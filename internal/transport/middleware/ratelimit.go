package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/docsign-backend/pkg/ctxutil"
)

// bucketIdleTTL is how long an untouched client bucket survives cleanup.
const bucketIdleTTL = 10 * time.Minute

// RateLimiter hands out per-client token buckets. Each Limit call gets its
// own bucket set, so routes with different limits never share a budget.
type RateLimiter struct {
	mu     sync.Mutex
	scopes []*limitScope
	now    func() time.Time
	stop   chan struct{}
	once   sync.Once
}

type limitScope struct {
	buckets    sync.Map // client ip -> *bucket
	capacity   float64
	refillRate float64 // tokens per second
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{now: time.Now, stop: make(chan struct{})}
	go rl.cleanupLoop(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware allowing maxPerMinute requests per client IP with
// bursts up to the same number. ClientInfo must run first; the socket
// address is the fallback.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	scope := &limitScope{
		capacity:   float64(maxPerMinute),
		refillRate: float64(maxPerMinute) / 60,
	}
	rl.mu.Lock()
	rl.scopes = append(rl.scopes, scope)
	rl.mu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _ := ctxutil.ClientFromCtx(r.Context())
			if ip == "" {
				ip = clientIP(r, false)
			}

			if wait, ok := scope.take(ip, rl.now()); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take spends one token for key. When the bucket is empty it reports how
// long until the next token is available.
func (s *limitScope) take(key string, now time.Time) (time.Duration, bool) {
	v, _ := s.buckets.LoadOrStore(key, &bucket{tokens: s.capacity, lastRefill: now})
	b := v.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.lastRefill).Seconds(); elapsed > 0 {
		b.tokens = math.Min(s.capacity, b.tokens+elapsed*s.refillRate)
		b.lastRefill = now
	}

	if b.tokens < 1 {
		if s.refillRate <= 0 {
			return time.Minute, false
		}
		return time.Duration((1 - b.tokens) / s.refillRate * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	scopes := append([]*limitScope(nil), rl.scopes...)
	rl.mu.Unlock()

	for _, s := range scopes {
		s.buckets.Range(func(key, value any) bool {
			b := value.(*bucket)
			b.mu.Lock()
			idle := now.Sub(b.lastRefill)
			b.mu.Unlock()
			if idle > bucketIdleTTL {
				s.buckets.Delete(key)
			}
			return true
		})
	}
}
