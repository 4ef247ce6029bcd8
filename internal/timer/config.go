package timer

import (
	"fmt"
	"time"
)

// DefaultDuration is the countdown length used when none is configured.
const DefaultDuration = 10 * time.Second

// Config holds the countdown parameters.
type Config struct {
	Duration     time.Duration // total countdown length
	TickInterval time.Duration // how often remaining time is refreshed
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Duration:     DefaultDuration,
		TickInterval: 10 * time.Millisecond,
	}
}

// Validate checks the config for unusable values.
func (c *Config) Validate() error {
	if c.Duration < time.Millisecond {
		return fmt.Errorf("duration must be at least 1ms, got %v", c.Duration)
	}
	if c.TickInterval < time.Millisecond || c.TickInterval >= time.Second {
		return fmt.Errorf("tick interval must be between 1ms and 1s, got %v", c.TickInterval)
	}
	return nil
}
