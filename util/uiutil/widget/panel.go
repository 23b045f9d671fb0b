package widget

import (
	"image"
	"image/color"

	"github.com/jmigpin/scrollpanel/util/uiutil/event"
)

// Base of the widgets driven by ApplyEvent. Keeps the bounds in window coordinates and whether the pointer is inside them.
type Panel struct {
	Bounds  image.Rectangle
	Cursor  event.Cursor
	Palette Palette // nil uses the default palette

	mouseInside bool
}

func (pa *Panel) Embed() *Panel {
	return pa
}

func (pa *Panel) Size() image.Point {
	return pa.Bounds.Size()
}

func (pa *Panel) MouseInside() bool {
	return pa.mouseInside
}

func (pa *Panel) SetMouseInside(v bool) {
	pa.mouseInside = v
}

// Point relative to the panel top-left corner.
func (pa *Panel) LocalPoint(p image.Point) image.Point {
	return p.Sub(pa.Bounds.Min)
}

func (pa *Panel) PaletteColor(name string) color.Color {
	return pa.Palette.Color(name)
}
