package fontutil

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Caches glyph masks, advances and kerning of a face. Not safe for concurrent use (the viewer only draws from the ui goroutine).
type FaceCache struct {
	font.Face
	gc  map[rune]*glyphCache
	gac map[rune]glyphAdvanceCache
	kc  map[[2]rune]fixed.Int26_6
}

func NewFaceCache(face font.Face) *FaceCache {
	fc := &FaceCache{Face: face}
	fc.gc = make(map[rune]*glyphCache)
	fc.gac = make(map[rune]glyphAdvanceCache)
	fc.kc = make(map[[2]rune]fixed.Int26_6)
	return fc
}

func (fc *FaceCache) Glyph(dot fixed.Point26_6, ru rune) (
	dr image.Rectangle,
	mask image.Image,
	maskp image.Point,
	advance fixed.Int26_6,
	ok bool,
) {
	gc, ok := fc.gc[ru]
	if !ok {
		gc = newGlyphCache(fc.Face, ru)
		fc.gc[ru] = gc
	}
	p := image.Point{dot.X.Floor(), dot.Y.Floor()}
	return gc.dr.Add(p), gc.mask, gc.maskp, gc.advance, gc.ok
}

func (fc *FaceCache) GlyphAdvance(ru rune) (advance fixed.Int26_6, ok bool) {
	gac, ok := fc.gac[ru]
	if !ok {
		gac.advance, gac.ok = fc.Face.GlyphAdvance(ru)
		fc.gac[ru] = gac
	}
	return gac.advance, gac.ok
}

func (fc *FaceCache) Kern(r0, r1 rune) fixed.Int26_6 {
	i := [2]rune{r0, r1}
	k, ok := fc.kc[i]
	if !ok {
		k = fc.Face.Kern(r0, r1)
		fc.kc[i] = k
	}
	return k
}

//----------

type glyphCache struct {
	dr      image.Rectangle
	mask    image.Image
	maskp   image.Point
	advance fixed.Int26_6
	ok      bool
}

func newGlyphCache(face font.Face, ru rune) *glyphCache {
	var zeroDot fixed.Point26_6 // always use zero
	dr, mask, maskp, adv, ok := face.Glyph(zeroDot, ru)

	// the truetype face reuses its mask buffer between calls
	if ok {
		mask = copyMask(mask)
	}

	return &glyphCache{dr, mask, maskp, adv, ok}
}

type glyphAdvanceCache struct {
	advance fixed.Int26_6
	ok      bool
}

//----------

func copyMask(mask image.Image) image.Image {
	alpha, ok := mask.(*image.Alpha)
	if !ok {
		return mask
	}
	u := *alpha // copy structure
	u.Pix = make([]uint8, len(alpha.Pix))
	copy(u.Pix, alpha.Pix)
	return &u
}
