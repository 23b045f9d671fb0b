package driver

import (
	"image"
	"image/draw"

	"github.com/jmigpin/scrollpanel/util/uiutil/event"
)

type Window interface {
	EventLoop(events chan<- interface{}) // emits events from uiutil/event
	Close() error
	SetWindowName(string)

	Image() draw.Image
	PutImage(image.Rectangle) error
	ResizeImage(image.Rectangle) error

	SetCursor(event.Cursor)
}
