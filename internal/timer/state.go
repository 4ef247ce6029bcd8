package timer

import (
	"time"

	"countdown/internal/format"
)

// Event identifies what produced an Update.
type Event int

const (
	EventStart Event = iota
	EventPause
	EventReset
	EventTick
	EventComplete
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventReset:
		return "reset"
	case EventTick:
		return "tick"
	case EventComplete:
		return "complete"
	}
	return "unknown"
}

// State is a snapshot of the countdown.
type State struct {
	Remaining time.Duration
	Total     time.Duration
	Running   bool
	Paused    bool
	RunID     string // set while a countdown is in progress; empty when idle
}

// Display returns the formatted remaining time.
func (s State) Display() string {
	return format.Display(s.Remaining)
}

// Idle reports whether the countdown is neither running nor paused.
func (s State) Idle() bool {
	return !s.Running && !s.Paused
}

// Update is delivered to observers on every state change.
type Update struct {
	Event Event
	State State
}
