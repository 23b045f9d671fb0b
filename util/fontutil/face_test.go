package fontutil

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

func newTestFace(t *testing.T) *FaceCache {
	t.Helper()
	face, err := NewFace(gomono.TTF, 14, 72)
	if err != nil {
		t.Fatal(err)
	}
	return face
}

func TestReadFontBytesDefault(t *testing.T) {
	b, err := ReadFontBytes("")
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != len(gomono.TTF) {
		t.Fatal(len(b))
	}
	if _, err := ReadFontBytes("/nonexistent/font.ttf"); err == nil {
		t.Fatal("expecting error")
	}
}

func TestNewFaceBadFont(t *testing.T) {
	if _, err := NewFace([]byte("not a font"), 14, 72); err == nil {
		t.Fatal("expecting error")
	}
}

func TestLineHeight(t *testing.T) {
	face := newTestFace(t)
	h := LineHeight(face)
	if h < 14 || h > 20 {
		t.Fatal(h)
	}
}

func TestFaceCacheMonoAdvance(t *testing.T) {
	face := newTestFace(t)
	a1, ok1 := face.GlyphAdvance('i')
	a2, ok2 := face.GlyphAdvance('W')
	if !ok1 || !ok2 || a1 != a2 || a1 <= 0 {
		t.Fatal(a1, a2)
	}
	// cached value
	a3, _ := face.GlyphAdvance('i')
	if a3 != a1 {
		t.Fatal(a3)
	}
	if Fixed266ToFloat64(fixed.I(3)) != 3 {
		t.Fatal("bad conversion")
	}
}

func TestFaceCacheGlyphMaskKept(t *testing.T) {
	face := newTestFace(t)
	_, m1, _, _, ok := face.Glyph(fixed.Point26_6{}, 'a')
	if !ok {
		t.Fatal("no glyph")
	}
	// a different glyph must not overwrite the cached mask
	face.Glyph(fixed.Point26_6{}, 'b')
	_, m2, _, _, _ := face.Glyph(fixed.Point26_6{}, 'a')
	if m1 != m2 {
		t.Fatal("expecting cached mask")
	}
}

func TestFaceCacheDraw(t *testing.T) {
	face := newTestFace(t)
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(1, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString("ab")
	n := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	if n == 0 {
		t.Fatal("nothing drawn")
	}
}
