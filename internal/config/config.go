package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"countdown/internal/timer"
)

// Config holds application configuration.
type Config struct {
	Timer TimerConfig
	UI    UIConfig
	Log   LogConfig
}

// TimerConfig holds countdown settings.
type TimerConfig struct {
	Duration     time.Duration
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string // "light", "dark" or "system"
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

// Engine returns the timer config derived from c.
func (c Config) Engine() timer.Config {
	return timer.Config{
		Duration:     c.Timer.Duration,
		TickInterval: c.Timer.TickInterval,
	}
}

// Validate checks values that viper cannot.
func (c Config) Validate() error {
	tc := c.Engine()
	if err := tc.Validate(); err != nil {
		return err
	}
	switch c.UI.Theme {
	case "light", "dark", "system":
	default:
		return fmt.Errorf("theme must be light, dark or system, got %q", c.UI.Theme)
	}
	return nil
}

// Load reads configuration from file and env. Env var overrides use prefix
// COUNTDOWN_, e.g. COUNTDOWN_TIMER_DURATION=90s. An explicit path takes
// precedence over $COUNTDOWN_CONFIG; a missing default file is not an error.
// Values are not validated here so command-line overrides can replace them;
// callers run Validate once everything is applied.
func Load(path string) (Config, error) {
	v := viper.New()

	def := timer.DefaultConfig()
	v.SetDefault("timer.duration", def.Duration)
	v.SetDefault("timer.tick_interval", def.TickInterval)
	v.SetDefault("ui.theme", "system")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("COUNTDOWN_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "countdown"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("COUNTDOWN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	return c, nil
}
