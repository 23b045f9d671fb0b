//go:build !windows

package driver

import (
	"image"

	"github.com/jmigpin/scrollpanel/driver/xdriver"
)

func NewWindow(size image.Point) (Window, error) {
	win, err := xdriver.NewWindow(size)
	if err != nil {
		return nil, err
	}
	return win, nil
}
