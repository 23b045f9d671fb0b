package viewer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jmigpin/scrollpanel/util/imageutil"
	"github.com/jmigpin/scrollpanel/util/uiutil/widget"
)

type Options struct {
	Filename string // empty shows the sample text

	MomentumScroll bool
	FPS            int

	FontFilename string // empty uses go mono
	FontSize     float64
	DPI          float64

	WindowSize image.Point

	// "#rrggbb", empty keeps the default
	TrackColor string
	ThumbColor string
}

func DefaultOptions() *Options {
	return &Options{
		MomentumScroll: true,
		FPS:            60,
		FontSize:       14,
		DPI:            72,
		WindowSize:     image.Point{600, 400},
	}
}

// Palette with the scrollbar color overrides.
func (opt *Options) palette() (widget.Palette, error) {
	pal := widget.MakePalette()
	set := func(name, hex string) error {
		if hex == "" {
			return nil
		}
		c, ok := imageutil.ParseHexColor(hex)
		if !ok {
			return fmt.Errorf("bad color for %v: %q", name, hex)
		}
		if name == "scrollbar_track" {
			// blended over the content
			pal[name] = color.NRGBA{c.R, c.G, c.B, 100}
			return nil
		}
		pal[name] = c
		return nil
	}
	if err := set("scrollbar_track", opt.TrackColor); err != nil {
		return nil, err
	}
	if err := set("scrollbar_thumb", opt.ThumbColor); err != nil {
		return nil, err
	}
	return pal, nil
}
