package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// fakeClock hands out manually driven tickers.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) NewTicker(time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTicker{ch: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	return t
}

// Advance moves the clock forward and offers one tick to the newest ticker.
// It reports whether the tick was received.
func (c *fakeClock) Advance(d time.Duration) bool {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	var t *fakeTicker
	if n := len(c.tickers); n > 0 {
		t = c.tickers[n-1]
	}
	c.mu.Unlock()

	if t == nil || t.stopped.Load() {
		return false
	}
	select {
	case t.ch <- now:
		return true
	case <-time.After(100 * time.Millisecond):
		return false
	}
}

func (c *fakeClock) ticker(i int) *fakeTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickers[i]
}

func (c *fakeClock) tickerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }
func (t *fakeTicker) Stop()               { t.stopped.Store(true) }
