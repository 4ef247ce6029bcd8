package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"countdown/internal/config"
)

// Mode selects the front end.
type Mode int

const (
	ModeGUI Mode = iota
	ModeTUI
	ModeRun
)

func (m Mode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeRun:
		return "run"
	}
	return "gui"
}

// Options holds all command-line options. Zero values mean "use config".
type Options struct {
	Mode         Mode
	ConfigPath   string
	Duration     time.Duration
	TickInterval time.Duration
	Theme        string
	Repeat       int // headless runs; 0 = until interrupted
	Verbose      bool
}

// ParseFlags parses command-line arguments and returns Options.
// Returns nil options if no arguments are given or help was requested.
func ParseFlags() (*Options, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	opts := &Options{Repeat: 1}
	var tui, run bool

	fs := flag.NewFlagSet("countdown", flag.ContinueOnError)

	fs.BoolVar(&tui, "tui", false, "Run in the terminal")
	fs.BoolVar(&run, "run", false, "Run headless, printing the countdown")

	durationFlag := func(dst *time.Duration) func(string) error {
		return func(s string) error {
			d, err := ParseDuration(s)
			if err != nil {
				return err
			}
			*dst = d
			return nil
		}
	}
	fs.Func("t", "Countdown duration (e.g. 90, 90s, 1m30s)", durationFlag(&opts.Duration))
	fs.Func("time", "Countdown duration (e.g. 90, 90s, 1m30s)", durationFlag(&opts.Duration))
	fs.Func("tick", "Tick interval (e.g. 10ms)", durationFlag(&opts.TickInterval))
	fs.StringVar(&opts.ConfigPath, "config", "", "Config file path")
	fs.StringVar(&opts.Theme, "theme", "", "Theme: light, dark or system")
	fs.IntVar(&opts.Repeat, "repeat", opts.Repeat, "Headless runs (0 = until interrupted)")
	fs.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if tui && run {
		fmt.Fprintf(os.Stderr, "Error: -tui and -run are mutually exclusive\n\n")
		PrintUsage()
		return nil, fmt.Errorf("conflicting mode flags")
	}
	switch {
	case tui:
		opts.Mode = ModeTUI
	case run:
		opts.Mode = ModeRun
	}

	if opts.Repeat < 0 {
		return nil, fmt.Errorf("repeat must be 0 or more, got %d", opts.Repeat)
	}
	opts.Theme = strings.ToLower(opts.Theme)

	return opts, nil
}

// ParseDuration accepts a Go duration string or a bare number of seconds.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("duration must be positive, got %q", s)
		}
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", s)
	}
	return d, nil
}

// Apply overrides loaded configuration with the options that were set.
func (o *Options) Apply(cfg *config.Config) {
	if o == nil {
		return
	}
	if o.Duration > 0 {
		cfg.Timer.Duration = o.Duration
	}
	if o.TickInterval > 0 {
		cfg.Timer.TickInterval = o.TickInterval
	}
	if o.Theme != "" {
		cfg.UI.Theme = o.Theme
	}
	if o.Verbose {
		cfg.Log.Level = "debug"
	}
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Countdown Timer

Usage: countdown [flags]
       countdown help    (show this message)

With no flags the graphical timer opens.

MODES:
  -tui                     Terminal timer (s start, space stop, r reset, q quit)
  -run                     Headless countdown printed to stdout
  -repeat <num>            Headless runs, 0 = until interrupted (default: 1)

TIMER:
  -t, -time <dur>          Countdown duration, seconds or Go duration (default: 10s)
  -tick <dur>              Tick interval (default: 10ms)

SETTINGS:
  -config <path>           Config file (default: ~/.config/countdown/config.toml)
  -theme <name>            light, dark or system
  -v, -verbose             Debug logging

EXAMPLES:
  # One minute countdown in the terminal
  countdown -tui -t 1m

  # Print a 90 second countdown three times
  countdown -run -t 90 -repeat 3

  # Dark graphical timer
  countdown -theme dark

`)
}
