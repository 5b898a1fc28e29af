// Package ratelimit provides token-bucket rate limiting for screening requests.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiter settings, loaded from the environment.
type Config struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
}

// LoadConfig reads rate limit settings from environment variables, falling
// back to defaults suited to interactive screening use.
func LoadConfig() Config {
	cfg := Config{
		Enabled:           true,
		RequestsPerMinute: 30,
		Burst:             10,
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RequestsPerMinute = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Burst = n
		}
	}
	return cfg
}

// Info describes the limiter state reported alongside each decision, used to
// populate X-RateLimit response headers.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// bucket tracks one client's tokens. Tokens refill continuously at the
// configured per-second rate up to the burst capacity.
type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

// Limiter rate-limits clients by identifier using per-client token buckets.
type Limiter struct {
	mu      sync.Mutex
	cfg     Config
	rate    float64 // tokens per second
	buckets map[string]*bucket
	stop    chan struct{}
	done    chan struct{}
}

// NewLimiter creates a Limiter and starts its idle-bucket cleanup loop.
func NewLimiter(cfg Config) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		rate:    float64(cfg.RequestsPerMinute) / 60.0,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether the client may proceed, consuming a token if so.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.cfg.Enabled {
		return true, Info{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Burst), lastRefill: now}
		l.buckets[clientID] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(float64(l.cfg.Burst), b.tokens+elapsed*l.rate)
	b.lastRefill = now
	b.lastSeen = now

	info := Info{Limit: l.cfg.Burst}
	if b.tokens >= 1.0 {
		b.tokens--
		info.Remaining = int(b.tokens)
		info.ResetTime = l.resetTime(b, now)
		return true, info
	}

	info.Remaining = 0
	info.ResetTime = l.resetTime(b, now)
	info.RetryAfter = time.Duration((1.0 - b.tokens) / l.rate * float64(time.Second))
	return false, info
}

// resetTime is when the bucket would be full again at the current rate.
func (l *Limiter) resetTime(b *bucket, now time.Time) time.Time {
	missing := float64(l.cfg.Burst) - b.tokens
	if missing <= 0 {
		return now
	}
	return now.Add(time.Duration(missing / l.rate * float64(time.Second)))
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.stop)
	<-l.done
}

// cleanupLoop drops buckets idle for more than ten minutes.
func (l *Limiter) cleanupLoop() {
	defer close(l.done)
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			l.mu.Lock()
			for id, b := range l.buckets {
				if b.lastSeen.Before(cutoff) {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
