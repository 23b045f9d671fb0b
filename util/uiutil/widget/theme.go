package widget

import (
	"image/color"
)

var (
	White color.Color = color.RGBA{255, 255, 255, 255}
	Black color.Color = color.RGBA{0, 0, 0, 255}

	// used if a color name is not found
	defaultThemeColor color.Color = color.RGBA{255, 255, 0, 255} // yellow
)

//----------

// nil is a valid receiver.
type Palette map[string]color.Color

func MakePalette() Palette {
	return make(Palette)
}

func (pal Palette) Empty() bool {
	return len(pal) == 0
}

func (pal Palette) Copy() Palette {
	pal2 := MakePalette()
	for k, v := range pal {
		pal2[k] = v
	}
	return pal2
}

// Returns the palette color, falling back to the default palette.
func (pal Palette) Color(name string) color.Color {
	if c, ok := pal[name]; ok {
		return c
	}
	if c, ok := defaultPalette[name]; ok {
		return c
	}
	return defaultThemeColor
}

//----------

var defaultPalette = Palette{
	"fg": Black,
	"bg": White,

	"scrollbar_track": color.NRGBA{0x7d, 0x7d, 0x7d, 100}, // blended
	"scrollbar_thumb": White,
}
