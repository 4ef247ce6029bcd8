package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"countdown/internal/palette"
)

// timerTheme swaps the background and foreground for the timer palette and
// defers everything else to the default theme.
type timerTheme struct {
	name string // "light", "dark" or "system"
}

func newTimerTheme(name string) fyne.Theme {
	return &timerTheme{name: name}
}

func (t *timerTheme) variant(v fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.name {
	case "dark":
		return theme.VariantDark
	case "light":
		return theme.VariantLight
	}
	return v
}

func (t *timerTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	v = t.variant(v)
	p := palette.ForTheme(t.name, v == theme.VariantDark)
	switch n {
	case theme.ColorNameBackground:
		return p.Background
	case theme.ColorNameForeground:
		return p.Label
	}
	return theme.DefaultTheme().Color(n, v)
}

func (t *timerTheme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (t *timerTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (t *timerTheme) Size(n fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(n)
}

// paletteFor resolves the configured theme name against the app settings.
func paletteFor(a fyne.App, name string) palette.Palette {
	return palette.ForTheme(name, a.Settings().ThemeVariant() == theme.VariantDark)
}
