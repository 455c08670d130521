package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// TooManyRequestsMessage is the plain-text body returned on rate-limit
// rejection. Clients parse it, so the bytes must not change.
const TooManyRequestsMessage = "Too many requests. Try again later."

// rateLimiterStore holds per-client rate limiters with automatic cleanup.
type rateLimiterStore struct {
	limiters sync.Map // map[string]*rateLimiterEntry, keyed by client IP
	limit    rate.Limit
	burst    int
}

// rateLimiterEntry holds a rate limiter and last access time for cleanup.
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// RateLimitMiddleware enforces per-client-IP admission control ahead of all
// other processing, including authentication.
//
// Each distinct client IP gets an independent token bucket of the given
// capacity whose full cycle regenerates over the given window; tokens
// refill lazily from elapsed wall-clock time (golang.org/x/time/rate).
// Buckets are created on first sight with full capacity. Concurrent
// requests from the same IP cannot over-admit; distinct IPs never
// interfere with each other.
//
// The client key comes from gin's ClientIP(), which honors the engine's
// trusted-proxy configuration when reading forwarded-for headers, keeping
// the key derivation strategy configurable rather than hardcoded.
//
// On rejection the request pipeline short-circuits with 429 and a fixed
// plain-text body; no Retry-After hint is computed.
func RateLimitMiddleware(capacity int, window time.Duration, logger *slog.Logger) gin.HandlerFunc {
	store := &rateLimiterStore{
		limit: rate.Limit(float64(capacity) / window.Seconds()),
		burst: capacity,
	}

	// Start cleanup goroutine for stale limiters (every 5 minutes)
	go store.cleanupStale(context.Background(), 5*time.Minute)

	return func(c *gin.Context) {
		limiter := store.getLimiter(c.ClientIP())

		if !limiter.Allow() {
			logger.Debug("rate limit exceeded",
				slog.String("client_ip", c.ClientIP()))

			c.Data(http.StatusTooManyRequests, "text/plain; charset=utf-8", []byte(TooManyRequestsMessage))
			c.Abort()
			return
		}

		// Request allowed, continue
		c.Next()
	}
}

// getLimiter retrieves or creates a rate limiter for a client IP.
func (s *rateLimiterStore) getLimiter(clientIP string) *rate.Limiter {
	// Try to load existing limiter
	if val, ok := s.limiters.Load(clientIP); ok {
		entry := val.(*rateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = time.Now()
		entry.mu.Unlock()
		return entry.limiter
	}

	// Create new limiter with a full bucket
	entry := &rateLimiterEntry{
		limiter:    rate.NewLimiter(s.limit, s.burst),
		lastAccess: time.Now(),
	}

	// Another request for the same IP may have raced us; keep whichever
	// entry landed first so both requests share one bucket.
	actual, _ := s.limiters.LoadOrStore(clientIP, entry)
	return actual.(*rateLimiterEntry).limiter
}

// cleanupStale removes rate limiters that haven't been accessed recently.
// Runs periodically to prevent unbounded memory growth.
func (s *rateLimiterStore) cleanupStale(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Remove limiters not accessed in last hour
			threshold := time.Now().Add(-1 * time.Hour)
			s.limiters.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimiterEntry)
				entry.mu.Lock()
				shouldDelete := entry.lastAccess.Before(threshold)
				entry.mu.Unlock()

				if shouldDelete {
					s.limiters.Delete(key)
				}
				return true
			})
		}
	}
}
