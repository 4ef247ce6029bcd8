package format

import (
	"fmt"
	"strconv"
	"time"
)

// Display renders a remaining duration for the time label.
// Below one minute it is the rounded second count with an "s" suffix ("9s",
// "59s"); from one minute on it is the elapsed-time form (see Elapsed).
func Display(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := roundSeconds(d)
	if d < time.Minute {
		return strconv.FormatInt(secs, 10) + "s"
	}
	return Elapsed(secs)
}

// Elapsed formats a second count as MM:SS, or H:MM:SS from one hour.
func Elapsed(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := secs % 3600 / 60
	s := secs % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// roundSeconds converts to whole seconds, rounding half up.
func roundSeconds(d time.Duration) int64 {
	return (d.Milliseconds() + 500) / 1000
}
