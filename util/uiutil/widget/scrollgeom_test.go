package widget

import (
	"image"
	"testing"
)

func TestThumbGeometryNotScrollable(t *testing.T) {
	size := image.Point{50, 100}
	_, _, ok := ThumbGeometry(size, image.Point{50, 100}, 0, image.Point{}, 0)
	if ok {
		t.Fatal("expecting not ok")
	}
	_, _, ok = ThumbGeometry(size, image.Point{50, 0}, 0, image.Point{0, 10}, 0)
	if ok {
		t.Fatal("expecting not ok")
	}
	// zero height panel (window not sized yet)
	_, _, ok = ThumbGeometry(image.Point{}, image.Point{50, 100}, 0, image.Point{0, 100}, 0)
	if ok {
		t.Fatal("expecting not ok")
	}
}

func TestThumbGeometry(t *testing.T) {
	size := image.Point{50, 100}
	inner := image.Point{50, 400}
	maxOffset := image.Point{0, 300}

	h, pos, ok := ThumbGeometry(size, inner, 0, maxOffset, 0)
	if !ok || h != 25 || pos != 0 {
		t.Fatal(h, pos, ok)
	}
	h, pos, _ = ThumbGeometry(size, inner, 300, maxOffset, -300)
	if h != 25 || pos != 75 {
		t.Fatal(h, pos)
	}
	_, pos, _ = ThumbGeometry(size, inner, 150, maxOffset, -150)
	if pos != 37.5 {
		t.Fatal(pos)
	}
}

func TestThumbGeometryNotScrolledYet(t *testing.T) {
	// position follows the visible projection, not the offset
	_, pos, _ := ThumbGeometry(image.Point{50, 100}, image.Point{50, 400}, 0.4, image.Point{0, 300}, 0)
	if pos != 0 {
		t.Fatal(pos)
	}
}
