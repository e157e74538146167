package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/samber/lo"
)

const (
	windowDuration  = 1 * time.Minute
	cleanupInterval = 1 * time.Minute
)

// RateLimiter wraps an http.Handler with sliding-window rate limiting per
// client IP. Public share pages get a lot of anonymous traffic; the limiter
// keeps one misbehaving client from starving the rest.
//
// Close must be called on shutdown to stop the background cleanup goroutine.
type RateLimiter struct {
	limit       int
	window      time.Duration
	requests    map[string][]time.Time
	mu          sync.Mutex
	cleanupDone chan struct{}
	closeOnce   sync.Once
	bypassPaths map[string]bool
}

// NewRateLimiter creates a rate limiter allowing limit requests per minute
// per IP. Paths in bypass (static assets, health checks) are never limited.
// Returns error if limit is invalid.
func NewRateLimiter(limit int, bypass []string) (*RateLimiter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", limit)
	}

	rl := &RateLimiter{
		limit:       limit,
		window:      windowDuration,
		requests:    make(map[string][]time.Time),
		cleanupDone: make(chan struct{}),
		bypassPaths: lo.SliceToMap(bypass, func(p string) (string, bool) {
			return p, true
		}),
	}

	go rl.cleanupLoop()

	slog.Info("rate limiter initialized",
		"limit", limit,
		"window", windowDuration.String(),
		"bypass_paths", len(bypass),
	)

	return rl, nil
}

// Middleware returns an http.Handler that wraps next with rate limiting.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.bypassPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		ip := ExtractIP(r)
		if ip == "" {
			slog.Warn("failed to extract IP from request", "path", r.URL.Path)
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		allowed, oldest := rl.allow(ip)
		if !allowed {
			retryAfter := int(rl.window.Seconds() - time.Since(oldest).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			slog.Debug("rate limit exceeded", "ip", ip, "path", r.URL.Path, "limit", rl.limit)
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allow reports whether a request from ip fits in the current window. When it
// does not, the second return is the oldest in-window request, for the
// Retry-After header.
func (rl *RateLimiter) allow(ip string) (bool, time.Time) {
	now := time.Now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	valid := lo.Filter(rl.requests[ip], func(ts time.Time, _ int) bool {
		return ts.After(cutoff)
	})

	if len(valid) >= rl.limit {
		return false, valid[0]
	}

	rl.requests[ip] = append(valid, now)
	return true, time.Time{}
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.cleanupDone:
			return
		}
	}
}

// cleanup drops IPs with no in-window requests so the map cannot grow
// without bound.
func (rl *RateLimiter) cleanup() {
	cutoff := time.Now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, timestamps := range rl.requests {
		valid := lo.Filter(timestamps, func(ts time.Time, _ int) bool {
			return ts.After(cutoff)
		})
		if len(valid) == 0 {
			delete(rl.requests, ip)
			continue
		}
		rl.requests[ip] = valid
	}
}

// Close stops the background cleanup goroutine.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() {
		close(rl.cleanupDone)
	})
}
