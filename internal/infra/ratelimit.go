package infra

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultPollRate  = 2
	defaultPollBurst = 5
	limiterIdleTTL   = 10 * time.Minute
)

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PollLimiter hands out one token bucket per user.
type PollLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*userLimiter
	limit     rate.Limit
	burst     int
	now       func() time.Time
	lastPrune time.Time
}

func NewPollLimiter(perSecond float64, burst int) *PollLimiter {
	if perSecond <= 0 {
		perSecond = defaultPollRate
	}
	if burst <= 0 {
		burst = defaultPollBurst
	}
	return &PollLimiter{
		limiters: make(map[string]*userLimiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		now:      time.Now,
	}
}

func (p *PollLimiter) Allow(userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	p.prune(now)

	l, ok := p.limiters[userID]
	if !ok {
		l = &userLimiter{limiter: rate.NewLimiter(p.limit, p.burst)}
		p.limiters[userID] = l
	}
	l.lastSeen = now

	return l.limiter.AllowN(now, 1)
}

func (p *PollLimiter) prune(now time.Time) {
	if now.Sub(p.lastPrune) < limiterIdleTTL {
		return
	}
	p.lastPrune = now
	for userID, l := range p.limiters {
		if now.Sub(l.lastSeen) > limiterIdleTTL {
			delete(p.limiters, userID)
		}
	}
}
