package viewer

import (
	"image"
	"image/color"
	"testing"

	"github.com/jmigpin/scrollpanel/util/fontutil"
	"golang.org/x/image/font/gofont/gomono"
)

func newTestContent(t *testing.T) *TextContent {
	t.Helper()
	face, err := fontutil.NewFace(gomono.TTF, 14, 72)
	if err != nil {
		t.Fatal(err)
	}
	return NewTextContent(face, color.Black)
}

func countInk(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestTextContentSize(t *testing.T) {
	tc := newTestContent(t)
	if s := tc.Size(); s != (image.Point{}) {
		t.Fatal(s)
	}

	tc.SetText("a\nbbbb\ncc\n")
	if tc.NumLines() != 3 {
		t.Fatal(tc.NumLines())
	}
	lh := fontutil.LineHeight(tc.face)
	adv, _ := tc.face.GlyphAdvance('b')
	s := tc.Size()
	if s.Y != 3*lh {
		t.Fatal(s)
	}
	if s.X != textPad+(4*adv).Ceil() {
		t.Fatal(s)
	}
}

func TestTextContentTabs(t *testing.T) {
	tc := newTestContent(t)
	tc.SetText("\tx")
	w1 := tc.Size().X
	tc.SetText("    x")
	if w2 := tc.Size().X; w1 != w2 {
		t.Fatal(w1, w2)
	}
}

func TestTextContentPaintVisibleOnly(t *testing.T) {
	tc := newTestContent(t)
	tc.SetText("MMMM\nMMMM\nMMMM\nMMMM")
	lh := tc.lineHeight

	img := image.NewRGBA(image.Rect(0, 0, 100, 3*lh))
	r := image.Rect(0, lh, 100, 2*lh) // one line tall
	tc.Paint(img, r, lh)               // second line at the top of r

	if n := countInk(img, r); n == 0 {
		t.Fatal("nothing painted")
	}
	above := image.Rect(0, 0, 100, lh)
	below := image.Rect(0, 2*lh, 100, 3*lh)
	if n := countInk(img, above) + countInk(img, below); n != 0 {
		t.Fatal("painted outside the rectangle", n)
	}
}
