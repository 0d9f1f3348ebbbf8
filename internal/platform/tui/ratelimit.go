package tui

import (
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxTrackedHosts bounds the limiter map before idle hosts are pruned.
const maxTrackedHosts = 1024

// connLimiter admits new SSH connections per remote host using a token
// bucket for each host.
type connLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// newConnLimiter allows perMinute connections per host with the given burst.
func newConnLimiter(perMinute float64, burst int) *connLimiter {
	return &connLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perMinute / 60),
		burst:    max(burst, 1),
		now:      time.Now,
	}
}

// allow reports whether host may open another connection now.
func (l *connLimiter) allow(host string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	limiter, ok := l.limiters[host]
	if !ok {
		if len(l.limiters) >= maxTrackedHosts {
			l.prune(now)
		}
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[host] = limiter
	}
	return limiter.AllowN(now, 1)
}

// prune drops hosts whose bucket has refilled. Caller holds mu.
func (l *connLimiter) prune(now time.Time) {
	for host, limiter := range l.limiters {
		if limiter.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, host)
		}
	}
}

// tracked returns how many hosts currently have a bucket.
func (l *connLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// remoteHost strips the port from a remote address.
func remoteHost(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
