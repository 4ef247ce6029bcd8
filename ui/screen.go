package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"countdown/internal/format"
	"countdown/internal/palette"
	"countdown/internal/timer"
)

// Screen renders an engine: the time label, Start/Stop (whichever applies)
// and Reset. It keeps no countdown state of its own.
type Screen struct {
	engine *timer.Engine
	colors palette.Palette

	label    *canvas.Text
	startBtn *StyledButton
	stopBtn  *StyledButton
	resetBtn *StyledButton
	pulse    *fyne.Animation
	pulsing  bool

	// last is only touched from the engine observer
	last        timer.State
	unsubscribe func()

	content fyne.CanvasObject
}

// NewScreen builds the screen and subscribes it to engine.
func NewScreen(engine *timer.Engine, colors palette.Palette) *Screen {
	s := &Screen{
		engine: engine,
		colors: colors,
	}

	st := engine.State()
	s.last = st

	s.label = canvas.NewText(st.Display(), colors.Label)
	s.label.TextSize = LabelTextSize
	s.label.Alignment = fyne.TextAlignCenter

	s.startBtn = NewStyledButton("Start", engine.Start, colors.Start, colors.ButtonText)
	s.stopBtn = NewStyledButton("Stop", engine.Pause, colors.Stop, colors.ButtonText)
	s.resetBtn = NewStyledButton("Reset", engine.Reset, colors.Reset, colors.ButtonText)

	s.pulse = fyne.NewAnimation(format.PulseHalf, func(progress float32) {
		s.label.Color = palette.Fade(colors.Label, format.PulseAt(progress))
		s.label.Refresh()
	})
	s.pulse.AutoReverse = true
	s.pulse.RepeatCount = fyne.AnimationRepeatForever
	s.pulse.Curve = fyne.AnimationLinear

	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(NewButtonGapSize())

	buttons := container.NewHBox(s.startBtn, s.stopBtn, gap, s.resetBtn)
	column := container.NewVBox(s.label, container.NewCenter(buttons))

	bg := canvas.NewRectangle(colors.Background)
	s.content = container.NewStack(bg, container.NewCenter(column))

	s.apply(st)
	s.unsubscribe = engine.Subscribe(s.onUpdate)
	return s
}

// Content returns the screen's root object.
func (s *Screen) Content() fyne.CanvasObject {
	return s.content
}

// Close detaches the screen from the engine and stops ticking. It must run
// on the fyne thread.
func (s *Screen) Close() {
	s.unsubscribe()
	s.engine.Close()
	s.stopPulse()
}

func (s *Screen) onUpdate(u timer.Update) {
	st := u.State
	prev := s.last
	s.last = st
	if st.Display() == prev.Display() && st.Running == prev.Running && st.Paused == prev.Paused {
		return
	}
	fyne.Do(func() { s.apply(st) })
}

// apply renders st; it must run on the fyne thread.
func (s *Screen) apply(st timer.State) {
	s.label.Text = st.Display()

	if st.Running {
		s.startBtn.Hide()
		s.stopBtn.Show()
	} else {
		s.stopBtn.Hide()
		s.startBtn.Show()
	}

	// nothing to reset while idle at full duration
	if st.Idle() && st.Remaining == st.Total {
		s.resetBtn.Disable()
	} else {
		s.resetBtn.Enable()
	}

	if st.Paused {
		s.startPulse()
	} else {
		s.stopPulse()
	}
	s.label.Refresh()
}

func (s *Screen) startPulse() {
	if s.pulsing {
		return
	}
	s.pulsing = true
	s.pulse.Start()
}

func (s *Screen) stopPulse() {
	if !s.pulsing {
		return
	}
	s.pulsing = false
	s.pulse.Stop()
	s.label.Color = s.colors.Label
	s.label.Refresh()
}
