package viewer

import (
	"image/draw"
	"time"

	"github.com/jmigpin/scrollpanel/util/imageutil"
	"github.com/jmigpin/scrollpanel/util/uiutil/widget"
)

// Root node: a scroll panel over the text content.
type View struct {
	*widget.ScrollPanel
	Content *TextContent
}

func NewView(sp *widget.ScrollPanel, content *TextContent) *View {
	return &View{ScrollPanel: sp, Content: content}
}

// Content size is refreshed every frame so a reload is picked up by the next tick.
func (v *View) Tick(dt time.Duration) {
	v.InnerSize = v.Content.Size()
	v.ScrollPanel.Tick(dt)
}

func (v *View) Paint(img draw.Image) {
	b := v.Bounds
	imageutil.FillRectangle(img, b, v.PaletteColor("bg"))
	v.Content.Paint(img, b, -v.ViewportPosition.Y)
	v.Draw(img, b.Min)
}
