package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowWidth  = 360
	WindowHeight = 640
)

// Screen metrics
const (
	LabelTextSize = 60
	ButtonGap     = 20
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewButtonGapSize returns the space between the primary and reset buttons
func NewButtonGapSize() fyne.Size {
	return fyne.NewSize(ButtonGap, 1)
}
