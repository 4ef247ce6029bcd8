package palette

import (
	"fmt"
	"image/color"
)

// Palette is the set of colors used by the timer screens.
type Palette struct {
	Background color.NRGBA
	Label      color.NRGBA
	Start      color.NRGBA
	Stop       color.NRGBA
	Reset      color.NRGBA
	ButtonText color.NRGBA
}

// Light returns the palette for light backgrounds.
func Light() Palette {
	return Palette{
		Background: rgb(0xf8, 0xf9, 0xfa),
		Label:      rgb(0x21, 0x25, 0x29),
		Start:      rgb(0x6c, 0x75, 0x7d),
		Stop:       rgb(0x49, 0x50, 0x57),
		Reset:      rgb(0x34, 0x3a, 0x40),
		ButtonText: rgb(0xf8, 0xf9, 0xfa),
	}
}

// Dark returns the palette for dark backgrounds.
func Dark() Palette {
	return Palette{
		Background: rgb(0x21, 0x25, 0x29),
		Label:      rgb(0xf8, 0xf9, 0xfa),
		Start:      rgb(0xad, 0xb5, 0xbd),
		Stop:       rgb(0x6c, 0x75, 0x7d),
		Reset:      rgb(0xce, 0xd4, 0xda),
		ButtonText: rgb(0x21, 0x25, 0x29),
	}
}

// ForTheme picks a palette by name; "system" uses dark when systemDark is set.
func ForTheme(name string, systemDark bool) Palette {
	switch name {
	case "dark":
		return Dark()
	case "light":
		return Light()
	}
	if systemDark {
		return Dark()
	}
	return Light()
}

// Fade returns c with its alpha scaled by opacity in [0,1].
func Fade(c color.NRGBA, opacity float32) color.NRGBA {
	c.A = uint8(float32(c.A)*clamp(opacity) + 0.5)
	return c
}

// Blend mixes fg over bg at the given opacity, for surfaces without alpha.
func Blend(fg, bg color.NRGBA, opacity float32) color.NRGBA {
	o := clamp(opacity)
	mix := func(f, b uint8) uint8 {
		return uint8(float32(f)*o + float32(b)*(1-o) + 0.5)
	}
	return color.NRGBA{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: 0xff}
}

// Hex renders c as #rrggbb.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func clamp(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
