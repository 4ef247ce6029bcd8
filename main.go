package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"countdown/internal/cli"
	"countdown/internal/config"
	"countdown/internal/logging"
	"countdown/internal/palette"
	"countdown/internal/timer"
	"countdown/internal/tui"
	"countdown/ui"
)

func main() {
	opts, err := cli.ParseFlags()
	if err != nil {
		os.Exit(1)
	}
	if opts == nil && len(os.Args) > 1 {
		return // help was printed
	}
	if opts == nil {
		opts = &cli.Options{}
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *cli.Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	opts.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logOut, closeLog, err := logOutput(opts.Mode, opts.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	log, err := logging.New(cfg.Log.Level, logOut)
	if err != nil {
		return err
	}

	engine := timer.NewEngine(cfg.Engine(), log)
	defer engine.Close()

	log.WithFields(logrus.Fields{
		"mode":     opts.Mode,
		"duration": cfg.Timer.Duration,
		"tick":     cfg.Timer.TickInterval,
	}).Debug("starting")

	switch opts.Mode {
	case cli.ModeTUI:
		return tui.Run(engine, palette.ForTheme(cfg.UI.Theme, tui.HasDarkBackground()))
	case cli.ModeRun:
		return runHeadless(engine, opts.Repeat, log)
	}

	a := app.NewWithID("com.countdown.gui")
	win := ui.BuildMainWindow(a, engine, cfg.UI.Theme)
	win.ShowAndRun()
	return nil
}

func runHeadless(engine *timer.Engine, repeat int, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := cli.NewRunner(engine, os.Stdout, log)
	n, err := runner.Run(ctx, repeat)
	if errors.Is(err, context.Canceled) {
		fmt.Printf("\nCompleted %d run(s).\n", n)
		return nil
	}
	if err != nil {
		return err
	}
	if repeat != 1 {
		fmt.Printf("\nCompleted %d run(s).\n", n)
	}
	return nil
}

// logOutput keeps log lines off the terminal screen: the TUI logs to a file
// when verbose and nowhere otherwise.
func logOutput(mode cli.Mode, verbose bool) (io.Writer, func(), error) {
	if mode != cli.ModeTUI {
		return os.Stderr, func() {}, nil
	}
	if !verbose {
		return io.Discard, func() {}, nil
	}
	path := filepath.Join(os.TempDir(), "countdown.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
