package cli

import (
	"os"
	"testing"
	"time"

	"countdown/internal/config"
)

func TestParseFlags_NoArgs(t *testing.T) {
	// Save original args
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	// Simulate no arguments
	os.Args = []string{"countdown"}

	opts, err := ParseFlags()
	if err != nil {
		t.Errorf("ParseFlags() error = %v, want nil", err)
	}
	if opts != nil {
		t.Errorf("ParseFlags() with no args should return nil options for GUI mode, got %v", opts)
	}
}

func TestParseFlags_HelpFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	for _, arg := range []string{"help", "--help", "-h"} {
		os.Args = []string{"countdown", arg}

		opts, err := ParseFlags()
		if err != nil {
			t.Errorf("ParseFlags(%s) error = %v, want nil", arg, err)
		}
		if opts != nil {
			t.Errorf("ParseFlags(%s) should return nil options, got %v", arg, opts)
		}
	}
}

func TestParseFlags_Run(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"countdown", "-run", "-t", "90", "-tick", "5ms", "-repeat", "3"}

	opts, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error = %v, want nil", err)
	}
	if opts == nil {
		t.Fatal("ParseFlags() returned nil, want options")
	}

	if opts.Mode != ModeRun {
		t.Errorf("Mode = %v, want run", opts.Mode)
	}
	if opts.Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 1m30s", opts.Duration)
	}
	if opts.TickInterval != 5*time.Millisecond {
		t.Errorf("TickInterval = %v, want 5ms", opts.TickInterval)
	}
	if opts.Repeat != 3 {
		t.Errorf("Repeat = %d, want 3", opts.Repeat)
	}
}

func TestParseFlags_TUI(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"countdown", "-tui", "-time", "2m", "-theme", "Dark", "-v"}

	opts, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if opts.Mode != ModeTUI {
		t.Errorf("Mode = %v, want tui", opts.Mode)
	}
	if opts.Duration != 2*time.Minute {
		t.Errorf("Duration = %v, want 2m", opts.Duration)
	}
	if opts.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", opts.Theme)
	}
	if !opts.Verbose {
		t.Error("Verbose should be true")
	}
}

func TestParseFlags_GUIWithOverrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"countdown", "-config", "/tmp/countdown.toml"}

	opts, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if opts.Mode != ModeGUI {
		t.Errorf("Mode = %v, want gui", opts.Mode)
	}
	if opts.ConfigPath != "/tmp/countdown.toml" {
		t.Errorf("ConfigPath = %q, want /tmp/countdown.toml", opts.ConfigPath)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	tests := []struct {
		name string
		args []string
	}{
		{"conflicting modes", []string{"-tui", "-run"}},
		{"bad duration", []string{"-run", "-t", "soon"}},
		{"zero duration", []string{"-run", "-t", "0"}},
		{"negative repeat", []string{"-run", "-repeat", "-1"}},
		{"unknown flag", []string{"-server", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = append([]string{"countdown"}, tt.args...)
			opts, err := ParseFlags()
			if err == nil {
				t.Error("ParseFlags() should return error")
			}
			if opts != nil {
				t.Errorf("ParseFlags() with error should return nil options, got %v", opts)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"10", 10 * time.Second, false},
		{" 45 ", 45 * time.Second, false},
		{"90s", 90 * time.Second, false},
		{"1m30s", 90 * time.Second, false},
		{"250ms", 250 * time.Millisecond, false},
		{"0", 0, true},
		{"-5s", 0, true},
		{"", 0, true},
		{"ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	cfg := config.Config{
		Timer: config.TimerConfig{Duration: 10 * time.Second, TickInterval: 10 * time.Millisecond},
		UI:    config.UIConfig{Theme: "system"},
		Log:   config.LogConfig{Level: "info"},
	}

	opts := &Options{Duration: time.Minute, Verbose: true}
	opts.Apply(&cfg)

	if cfg.Timer.Duration != time.Minute {
		t.Errorf("Duration = %v, want 1m", cfg.Timer.Duration)
	}
	if cfg.Timer.TickInterval != 10*time.Millisecond {
		t.Errorf("TickInterval = %v, want unchanged 10ms", cfg.Timer.TickInterval)
	}
	if cfg.UI.Theme != "system" {
		t.Errorf("Theme = %q, want unchanged system", cfg.UI.Theme)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}

	var nilOpts *Options
	nilOpts.Apply(&cfg) // must not panic
}

func TestApplyReplacesInvalidLoadedValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COUNTDOWN_CONFIG", "")
	t.Setenv("COUNTDOWN_UI_THEME", "neon")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() should reject theme neon before overrides")
	}

	opts := &Options{Theme: "dark"}
	opts.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after Apply error = %v, want nil", err)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("UI.Theme = %q, want dark", cfg.UI.Theme)
	}
}
