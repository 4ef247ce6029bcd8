package ui

import (
	"fyne.io/fyne/v2"

	"countdown/internal/timer"
)

// BuildMainWindow creates and configures the main application window for an
// engine constructed by the caller.
func BuildMainWindow(app fyne.App, engine *timer.Engine, themeName string) fyne.Window {
	app.Settings().SetTheme(newTimerTheme(themeName))

	win := app.NewWindow("Countdown")
	win.Resize(NewWindowSize())

	screen := NewScreen(engine, paletteFor(app, themeName))
	win.SetContent(screen.Content())

	win.SetCloseIntercept(func() {
		screen.Close()
		win.Close()
	})

	return win
}
