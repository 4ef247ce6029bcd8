package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"countdown/internal/palette"
	"countdown/internal/timer"
)

// Forward subscribes to engine and hands updates to the program through a
// one-slot channel that keeps only the newest update, so a busy screen
// never blocks the tick goroutine.
// The returned cancel func unsubscribes and closes the channel.
func Forward(engine *timer.Engine) (<-chan timer.Update, func()) {
	ch := make(chan timer.Update, 1)

	var (
		mu     sync.Mutex
		closed bool
	)
	unsubscribe := engine.Subscribe(func(u timer.Update) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		for {
			select {
			case ch <- u:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	})

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			unsubscribe()
			mu.Lock()
			closed = true
			close(ch)
			mu.Unlock()
		})
	}
	return ch, cancel
}

// Run shows the terminal screen until the user quits.
func Run(engine *timer.Engine, colors palette.Palette) error {
	updates, cancel := Forward(engine)
	defer cancel()

	p := tea.NewProgram(New(engine, updates, colors), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// HasDarkBackground reports whether the terminal background is dark.
func HasDarkBackground() bool {
	return lipgloss.HasDarkBackground()
}
