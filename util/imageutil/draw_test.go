package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestFillRectangleBGRA(t *testing.T) {
	r := image.Rect(0, 0, 4, 4)
	img := NewBGRA(&r)
	FillRectangle(img, image.Rect(1, 1, 3, 3), color.RGBA{10, 20, 30, 255})

	// stored blue first
	i := img.PixOffset(1, 1)
	if p := img.Pix[i : i+4]; p[0] != 30 || p[1] != 20 || p[2] != 10 || p[3] != 255 {
		t.Fatal(p)
	}
	// read back as rgba
	if c := img.At(2, 2); c != (color.RGBA{10, 20, 30, 255}) {
		t.Fatal(c)
	}
	if c := img.At(0, 0); c != (color.RGBA{}) {
		t.Fatal(c)
	}
}

func TestBlendRectangle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	FillRectangle(img, img.Bounds(), color.White)
	BlendRectangle(img, img.Bounds(), color.NRGBA{0, 0, 0, 128})
	c := img.RGBAAt(0, 0)
	if c.A != 255 || c.R < 120 || c.R > 135 {
		t.Fatal(c)
	}
}

func TestParseHexColor(t *testing.T) {
	c, ok := ParseHexColor("#7d7D00")
	if !ok || c != (color.RGBA{0x7d, 0x7d, 0, 255}) {
		t.Fatal(c, ok)
	}
	for _, s := range []string{"", "#12345", "12345g", "#1234567"} {
		if _, ok := ParseHexColor(s); ok {
			t.Fatal(s)
		}
	}
}

func TestColorUint16s(t *testing.T) {
	r, g, b, a := ColorUint16s(color.White)
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Fatal(r, g, b, a)
	}
}
