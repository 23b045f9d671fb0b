package widget

import "image"

// Vertical thumb height and position along the track. The thumb height is the visible fraction of the content; the position maps the scrolled fraction onto the unused track length. Not ok if there is nothing to scroll.
func ThumbGeometry(size, innerSize image.Point, offsetY float64, maxOffset image.Point, viewportPosY int) (height, pos float64, ok bool) {
	if maxOffset.Y <= 0 || innerSize.Y <= 0 || size.Y <= 0 {
		return 0, 0, false
	}
	sy := float64(size.Y)
	height = sy * (sy / float64(innerSize.Y))
	if -viewportPosY > 0 {
		pos = (sy - height) * (offsetY / float64(maxOffset.Y))
	}
	return height, pos, true
}
