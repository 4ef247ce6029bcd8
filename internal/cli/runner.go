package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"countdown/internal/timer"
)

// Runner drives an engine without a screen, printing each change of the
// displayed time.
type Runner struct {
	engine *timer.Engine
	out    io.Writer
	log    *logrus.Logger
}

// NewRunner creates a headless runner writing to out.
func NewRunner(engine *timer.Engine, out io.Writer, log *logrus.Logger) *Runner {
	return &Runner{engine: engine, out: out, log: log}
}

// RunOnce counts down from the engine's current state to completion.
// If ctx is cancelled first the engine is paused and ctx.Err() returned.
func (r *Runner) RunOnce(ctx context.Context) error {
	done := make(chan struct{})
	last := ""

	cancel := r.engine.Subscribe(func(u timer.Update) {
		switch u.Event {
		case timer.EventComplete:
			fmt.Fprintln(r.out, "Done.")
			close(done)
			return
		case timer.EventTick, timer.EventStart:
			if display := u.State.Display(); display != last {
				last = display
				fmt.Fprintln(r.out, display)
			}
		}
	})
	defer cancel()

	r.engine.Start()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		r.engine.Pause()
		st := r.engine.State()
		fmt.Fprintf(r.out, "Stopped at %s.\n", st.Display())
		return ctx.Err()
	}
}

// Run performs count headless countdowns; count 0 repeats until ctx is
// cancelled. It returns the number of completed runs.
func (r *Runner) Run(ctx context.Context, count int) (int, error) {
	completed := 0
	for runNum := 1; count == 0 || runNum <= count; runNum++ {
		if runNum > 1 {
			fmt.Fprintf(r.out, "\n--- Run %d", runNum)
			if count > 0 {
				fmt.Fprintf(r.out, " of %d", count)
			}
			fmt.Fprintln(r.out, " ---")
		}

		if err := r.RunOnce(ctx); err != nil {
			return completed, err
		}
		completed++
		r.log.WithField("completed", completed).Debug("headless run finished")
	}
	return completed, nil
}
