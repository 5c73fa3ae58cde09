package importer

import (
	"sync"
	"time"
)

// Limiter throttles successful imports. Implementations block in Wait until
// the next request may proceed.
type Limiter interface {
	Wait()
}

// IntervalLimiter enforces a fixed minimum interval between calls.
type IntervalLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

// NewIntervalLimiter returns a limiter that spaces calls at least interval
// apart. An interval of zero disables throttling, which is what tests use.
func NewIntervalLimiter(interval time.Duration) *IntervalLimiter {
	return &IntervalLimiter{interval: interval}
}

func (l *IntervalLimiter) Wait() {
	l.mu.Lock()
	defer l.mu.Unlock()

	since := time.Since(l.lastCall)
	if since < l.interval {
		time.Sleep(l.interval - since)
	}
	l.lastCall = time.Now()
}
