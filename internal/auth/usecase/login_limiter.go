package usecase

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterTTL is how long an idle per-email limiter is kept before cleanup.
const limiterTTL = 10 * time.Minute

// LoginLimiter throttles login attempts per email using a token bucket.
// Slows down password guessing without locking accounts out.
type LoginLimiter struct {
	limiters sync.Map // map[string]*limiterEntry
	rps      float64
	burst    int
}

// limiterEntry holds a rate limiter and last access time for cleanup.
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// NewLoginLimiter creates a login attempt limiter allowing rps attempts per
// second with the given burst per email address.
func NewLoginLimiter(rps float64, burst int) *LoginLimiter {
	return &LoginLimiter{
		rps:   rps,
		burst: burst,
	}
}

// Allow reports whether a login attempt for the email may proceed now.
func (l *LoginLimiter) Allow(email string) bool {
	key := strings.ToLower(strings.TrimSpace(email))

	actual, _ := l.limiters.LoadOrStore(key, &limiterEntry{
		limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst),
	})
	entry := actual.(*limiterEntry)

	entry.mu.Lock()
	entry.lastAccess = time.Now()
	entry.mu.Unlock()

	l.cleanup()

	return entry.limiter.Allow()
}

// cleanup drops limiters idle for longer than limiterTTL.
func (l *LoginLimiter) cleanup() {
	cutoff := time.Now().Add(-limiterTTL)
	l.limiters.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		idle := entry.lastAccess.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			l.limiters.Delete(key)
		}
		return true
	})
}
