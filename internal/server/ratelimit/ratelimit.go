// Package ratelimit limits requests per client and endpoint with token buckets
// from golang.org/x/time/rate.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info describes the limit state after a call to Allow.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per client, path and method.
type Limiter struct {
	config  *Config
	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewLimiter creates a limiter. A nil config uses DefaultConfig. When cleanup
// is configured a background goroutine runs until Stop.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	l := &Limiter{
		config:  config,
		clients: make(map[string]*client),
		now:     time.Now,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		l.cancel = cancel
		l.done = make(chan struct{})
		go l.cleanupLoop(ctx)
	}
	return l
}

// Allow reports whether a request from clientID to method and path may
// proceed, consuming a token when it does.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Allowlist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Denylist[clientID] {
		return false, Info{}
	}

	ep := MatchEndpoint(path, method, l.config.EndpointConfigs)
	if ep == nil {
		ep = &EndpointConfig{
			Path:   path,
			Method: method,
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
		}
	}
	if ep.Limit <= 0 || ep.Window <= 0 {
		return true, Info{Allowed: true}
	}

	// Prefix entries share one bucket per client.
	key := clientID + " " + method + " " + ep.Path
	now := l.now()
	c := l.client(key, ep, now)

	r := c.limiter.ReserveN(now, 1)
	info := Info{Limit: ep.Limit}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		info.RetryAfter = delay
	} else {
		info.Allowed = true
	}

	tokens := c.limiter.TokensAt(now)
	info.Remaining = max(0, int(tokens))
	info.ResetTime = now.Add(untilFull(c.limiter, tokens))
	return info.Allowed, info
}

func (l *Limiter) client(key string, ep *EndpointConfig, now time.Time) *client {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		burst := ep.Burst
		if burst <= 0 {
			burst = ep.Limit
		}
		every := rate.Every(ep.Window / time.Duration(ep.Limit))
		c = &client{limiter: rate.NewLimiter(every, burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c
}

// untilFull is how long the bucket needs to refill completely.
func untilFull(lim *rate.Limiter, tokens float64) time.Duration {
	missing := float64(lim.Burst()) - tokens
	if missing <= 0 || lim.Limit() <= 0 {
		return 0
	}
	return time.Duration(missing / float64(lim.Limit()) * float64(time.Second))
}

func (l *Limiter) cleanupLoop(ctx context.Context) {
	defer close(l.done)
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evictIdle()
		}
	}
}

// evictIdle drops clients not seen within IdleTimeout.
func (l *Limiter) evictIdle() int {
	idle := l.config.IdleTimeout
	if idle <= 0 {
		idle = time.Hour
	}
	cutoff := l.now().Add(-idle)

	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for key, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	<-l.done
}
