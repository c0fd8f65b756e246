package middleware

import (
	"context"
	"hash/fnv"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fundedrank/fundedrank-api/pkg/apiErrors"
	"github.com/fundedrank/fundedrank-api/pkg/log"
)

const rateLimiterShards = 16

// RateLimiter is a fixed-window request counter sharded by key hash.
// Entries for expired windows are removed by a periodic sweep, so the
// maps cannot grow unboundedly with arbitrary client identifiers.
type RateLimiter struct {
	shards [rateLimiterShards]*rateLimiterShard
	limit  int
	window time.Duration

	// now is replaceable in tests.
	now func() time.Time
}

type rateLimiterShard struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	count       int
	windowStart time.Time
}

// NewRateLimiter builds a limiter allowing limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
	}
	for i := range rl.shards {
		rl.shards[i] = &rateLimiterShard{entries: make(map[string]*windowEntry)}
	}
	return rl
}

func (rl *RateLimiter) shardFor(key string) *rateLimiterShard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return rl.shards[h.Sum32()%rateLimiterShards]
}

// Allow reports whether the key may perform another request in the
// current window.
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.now()
	shard := rl.shardFor(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	entry, ok := shard.entries[key]
	if !ok || now.Sub(entry.windowStart) >= rl.window {
		shard.entries[key] = &windowEntry{count: 1, windowStart: now}
		return true
	}

	if entry.count >= rl.limit {
		return false
	}

	entry.count++
	return true
}

// Sweep drops every entry whose window has expired.
func (rl *RateLimiter) Sweep() {
	now := rl.now()
	for _, shard := range rl.shards {
		shard.mu.Lock()
		for key, entry := range shard.entries {
			if now.Sub(entry.windowStart) >= rl.window {
				delete(shard.entries, key)
			}
		}
		shard.mu.Unlock()
	}
}

// StartSweeper runs Sweep once per window until the context ends.
func (rl *RateLimiter) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(rl.window)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Sweep()
			}
		}
	}()
}

// RateLimitMiddleware rejects clients that exceed the per-IP request limit.
func RateLimitMiddleware(rl *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			if !rl.Allow(key) {
				log.ForContext(r.Context()).WithField("client_ip", key).Warn("rate limit exceeded")
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Too many requests", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the client address, preferring the first entry of
// X-Forwarded-For when the service sits behind a proxy.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
