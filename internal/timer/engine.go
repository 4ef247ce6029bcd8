package timer

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Engine owns the countdown state and its tick source.
//
// Start, Pause, Reset and ticks are serialized; observers registered with
// Subscribe receive every change in order on the goroutine that caused it.
// Observers must not call Start, Pause or Reset synchronously.
type Engine struct {
	cfg   Config
	clock Clock
	log   *logrus.Logger

	// notifyMu is held across a mutation and its delivery so observers
	// never see updates out of order. Always taken before mu.
	notifyMu sync.Mutex

	mu        sync.Mutex
	state     State
	deadline  time.Time
	gen       uint64 // bumped whenever the tick source is cancelled
	stop      chan struct{}
	observers []observer
	nextObs   int
}

type observer struct {
	id int
	fn func(Update)
}

// NewEngine creates an idle engine for the given config. The config is
// assumed valid; callers run Validate first.
func NewEngine(cfg Config, log *logrus.Logger) *Engine {
	return newEngine(cfg, log, SystemClock)
}

func newEngine(cfg Config, log *logrus.Logger, clock Clock) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		cfg:   cfg,
		clock: clock,
		log:   log,
		state: State{
			Remaining: cfg.Duration,
			Total:     cfg.Duration,
		},
	}
}

// State returns the current snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Subscribe registers fn for every subsequent update and returns a function
// that removes it.
func (e *Engine) Subscribe(fn func(Update)) (cancel func()) {
	e.mu.Lock()
	id := e.nextObs
	e.nextObs++
	e.observers = append(e.observers, observer{id: id, fn: fn})
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			for i, o := range e.observers {
				if o.id == id {
					e.observers = append(e.observers[:i:i], e.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// Start begins counting down from the current remaining time. A tick source
// already running is cancelled first.
func (e *Engine) Start() {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()

	e.mu.Lock()
	e.cancelLocked()
	if e.state.RunID == "" {
		e.state.RunID = uuid.NewString()
	}
	e.state.Running = true
	e.state.Paused = false
	e.deadline = e.clock.Now().Add(e.state.Remaining)

	stop := make(chan struct{})
	e.stop = stop
	gen := e.gen
	ticker := e.clock.NewTicker(e.cfg.TickInterval)
	u, obs := e.updateLocked(EventStart)
	e.mu.Unlock()

	go e.run(gen, ticker, stop)
	e.publish(u, obs)
}

// Pause stops ticking and keeps the last delivered remaining time.
func (e *Engine) Pause() {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()

	e.mu.Lock()
	if e.state.Running {
		e.cancelLocked()
	}
	e.state.Running = false
	e.state.Paused = true
	u, obs := e.updateLocked(EventPause)
	e.mu.Unlock()

	e.publish(u, obs)
}

// Reset stops ticking and restores the full duration.
func (e *Engine) Reset() {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()

	e.mu.Lock()
	e.cancelLocked()
	e.restoreLocked()
	u, obs := e.updateLocked(EventReset)
	e.mu.Unlock()

	e.publish(u, obs)
}

// Close cancels any tick source without touching the state.
func (e *Engine) Close() {
	e.mu.Lock()
	e.cancelLocked()
	e.mu.Unlock()
}

func (e *Engine) run(gen uint64, ticker Ticker, stop <-chan struct{}) {
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			if !e.tick(gen) {
				return
			}
		}
	}
}

// tick refreshes the remaining time and reports whether the run continues.
func (e *Engine) tick(gen uint64) bool {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()

	e.mu.Lock()
	if gen != e.gen || !e.state.Running {
		e.mu.Unlock()
		return false
	}

	remaining := e.deadline.Sub(e.clock.Now()).Truncate(time.Millisecond)
	ev := EventTick
	if remaining <= 0 {
		e.log.WithField("run", e.state.RunID).Info("countdown complete")
		e.cancelLocked()
		e.restoreLocked()
		ev = EventComplete
	} else {
		e.state.Remaining = remaining
	}
	u, obs := e.updateLocked(ev)
	e.mu.Unlock()

	e.publish(u, obs)
	return ev == EventTick
}

// cancelLocked invalidates the current tick source, if any.
func (e *Engine) cancelLocked() {
	if e.stop != nil {
		close(e.stop)
		e.stop = nil
	}
	e.gen++
}

// restoreLocked puts the state back to idle at full duration.
func (e *Engine) restoreLocked() {
	e.state.Remaining = e.cfg.Duration
	e.state.Running = false
	e.state.Paused = false
	e.state.RunID = ""
}

func (e *Engine) updateLocked(ev Event) (Update, []func(Update)) {
	u := Update{Event: ev, State: e.state}

	if ev != EventTick || e.log.IsLevelEnabled(logrus.TraceLevel) {
		entry := e.log.WithFields(logrus.Fields{
			"event":     ev,
			"run":       u.State.RunID,
			"remaining": u.State.Display(),
		})
		switch ev {
		case EventTick:
			entry.Trace("tick")
		case EventComplete:
			entry.Debug("restored full duration")
		default:
			entry.Info("timer " + ev.String())
		}
	}

	obs := make([]func(Update), 0, len(e.observers))
	for _, o := range e.observers {
		obs = append(obs, o.fn)
	}
	return u, obs
}

func (e *Engine) publish(u Update, obs []func(Update)) {
	for _, fn := range obs {
		fn(u)
	}
}
