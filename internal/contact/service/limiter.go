package service

import (
	"sync"

	"golang.org/x/time/rate"
)

// IPLimiter hands out one token bucket per client IP. It stands in for the
// UI's disabled-submit guard: a client cannot fire submissions faster than
// the bucket refills.
type IPLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewIPLimiter(perMinute int) *IPLimiter {
	if perMinute <= 0 {
		perMinute = 3
	}
	return &IPLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
	}
}

// Allow reports whether the given IP may submit now.
func (l *IPLimiter) Allow(ip string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = lim
	}
	l.mu.Unlock()

	return lim.Allow()
}
