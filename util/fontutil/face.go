package fontutil

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// Reads a truetype font file. An empty filename returns the go mono font.
func ReadFontBytes(filename string) ([]byte, error) {
	if filename == "" {
		return gomono.TTF, nil
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	return b, nil
}

// Cached face of the parsed font.
func NewFace(ttf []byte, size, dpi float64) (*FaceCache, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("font parse: %w", err)
	}
	opt := &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}
	return NewFaceCache(truetype.NewFace(f, opt)), nil
}

//----------

func LineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

func Fixed266ToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / float64(64)
}
