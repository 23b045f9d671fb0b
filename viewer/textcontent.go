package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/jmigpin/scrollpanel/util/fontutil"
	"github.com/jmigpin/scrollpanel/util/imageutil"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	tabWidth = 4
	textPad  = 4 // left margin
)

// Lines of text painted with a face. The size is the scroll panel inner size.
type TextContent struct {
	Fg color.Color

	face       *fontutil.FaceCache
	lineHeight int
	ascent     int
	lines      []string
	width      int
}

func NewTextContent(face *fontutil.FaceCache, fg color.Color) *TextContent {
	return &TextContent{
		Fg:         fg,
		face:       face,
		lineHeight: fontutil.LineHeight(face),
		ascent:     face.Metrics().Ascent.Ceil(),
	}
}

func (tc *TextContent) SetText(s string) {
	s = strings.TrimSuffix(s, "\n")
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
	tc.lines = strings.Split(s, "\n")
	if s == "" {
		tc.lines = nil
	}
	tc.width = 0
	for _, l := range tc.lines {
		w := font.MeasureString(tc.face, l).Ceil()
		if w > tc.width {
			tc.width = w
		}
	}
}

func (tc *TextContent) NumLines() int {
	return len(tc.lines)
}

func (tc *TextContent) Size() image.Point {
	if len(tc.lines) == 0 {
		return image.Point{}
	}
	return image.Point{textPad + tc.width, len(tc.lines) * tc.lineHeight}
}

// Paints the lines visible in r, with the content scrolled up by offsetY.
func (tc *TextContent) Paint(img draw.Image, r image.Rectangle, offsetY int) {
	if tc.lineHeight <= 0 {
		return
	}
	first := offsetY / tc.lineHeight
	if first < 0 {
		first = 0
	}
	for i := first; i < len(tc.lines); i++ {
		y := r.Min.Y + i*tc.lineHeight - offsetY
		if y >= r.Max.Y {
			break
		}
		tc.paintLine(img, r, tc.lines[i], image.Point{r.Min.X + textPad, y + tc.ascent})
	}
}

func (tc *TextContent) paintLine(img draw.Image, clip image.Rectangle, s string, pen image.Point) {
	dot := fixed.P(pen.X, pen.Y)
	prev := rune(-1)
	for _, ru := range s {
		if prev >= 0 {
			dot.X += tc.face.Kern(prev, ru)
		}
		dr, mask, maskp, adv, ok := tc.face.Glyph(dot, ru)
		if ok {
			cr := dr.Intersect(clip)
			if !cr.Empty() {
				mp := maskp.Add(cr.Min.Sub(dr.Min))
				imageutil.DrawUniformMask(img, cr, tc.Fg, mask, mp, draw.Over)
			}
		}
		dot.X += adv
		if dot.X.Floor() >= clip.Max.X {
			break
		}
		prev = ru
	}
}
