package tui

import (
	"image/color"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"countdown/internal/format"
	"countdown/internal/palette"
	"countdown/internal/timer"
)

const pulseFrame = 50 * time.Millisecond

type updateMsg timer.Update

type pulseMsg struct {
	id int
	at time.Time
}

// Model is the terminal timer screen. It holds no countdown state of its
// own; every render reads the engine.
type Model struct {
	engine  *timer.Engine
	updates <-chan timer.Update
	colors  palette.Palette
	now     func() time.Time

	state    timer.State
	pausedAt time.Time
	pulseID  int // ties pulse frames to the pause that started them
	opacity  float32
	width    int
	height   int
}

// New creates the screen for engine. updates is the channel returned by
// Forward for the same engine.
func New(engine *timer.Engine, updates <-chan timer.Update, colors palette.Palette) Model {
	return Model{
		engine:  engine,
		updates: updates,
		colors:  colors,
		now:     time.Now,
		state:   engine.State(),
		opacity: 1,
	}
}

func (m Model) Init() tea.Cmd {
	return waitForUpdate(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.engine.Close()
			return m, tea.Quit
		case "s", "enter":
			if !m.state.Running {
				m.engine.Start()
			}
		case " ", "space", "p":
			if m.state.Running {
				m.engine.Pause()
			}
		case "r":
			m.engine.Reset()
		default:
			return m, nil
		}
		return m.sync()

	case updateMsg:
		var cmd tea.Cmd
		m, cmd = m.sync()
		return m, tea.Batch(cmd, waitForUpdate(m.updates))

	case pulseMsg:
		if !m.state.Paused || msg.id != m.pulseID {
			return m, nil
		}
		m.opacity = format.Pulse(msg.at.Sub(m.pausedAt))
		return m, pulse(m.pulseID)
	}
	return m, nil
}

// sync refreshes the snapshot from the engine. Updates queued before a key
// press may arrive after it, so the message payload is never trusted.
func (m Model) sync() (Model, tea.Cmd) {
	wasPaused := m.state.Paused
	m.state = m.engine.State()

	if !m.state.Paused {
		m.opacity = 1
		return m, nil
	}
	if !wasPaused {
		m.pausedAt = m.now()
		m.pulseID++
		m.opacity = 1
		return m, pulse(m.pulseID)
	}
	return m, nil
}

func (m Model) View() string {
	c := m.colors

	label := lipgloss.NewStyle().
		Bold(true).
		Padding(1, 4).
		Foreground(lipgloss.Color(palette.Hex(palette.Blend(c.Label, c.Background, m.opacity)))).
		Render(m.state.Display())

	var primary string
	if m.state.Running {
		primary = button("Stop", c.Stop, c.ButtonText)
	} else {
		primary = button("Start", c.Start, c.ButtonText)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, primary, "  ", button("Reset", c.Reset, c.ButtonText))

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(palette.Hex(palette.Blend(c.Label, c.Background, 0.5)))).
		Render("s start • space stop • r reset • q quit")

	body := lipgloss.JoinVertical(lipgloss.Center, label, buttons, "", help)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(palette.Hex(c.Background))))
}

// State returns the snapshot last rendered.
func (m Model) State() timer.State { return m.state }

// Opacity returns the current label opacity.
func (m Model) Opacity() float32 { return m.opacity }

func button(text string, bg, fg color.NRGBA) string {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2).
		Background(lipgloss.Color(palette.Hex(bg))).
		Foreground(lipgloss.Color(palette.Hex(fg))).
		Render(text)
}

func waitForUpdate(updates <-chan timer.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return nil
		}
		return updateMsg(u)
	}
}

func pulse(id int) tea.Cmd {
	return tea.Tick(pulseFrame, func(t time.Time) tea.Msg {
		return pulseMsg{id: id, at: t}
	})
}
