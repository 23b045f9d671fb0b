package event

import (
	"image"
	"time"
)

//----------

type WindowClose struct{}
type WindowExpose struct{ Rect image.Rectangle }
type WindowResize struct{ Rect image.Rectangle }
type WindowInput struct {
	Point image.Point
	Event interface{}
}

//----------

// Emitted by the ui at the frame rate. Dt is the time since the previous tick.
type Tick struct {
	Time time.Time
	Dt   time.Duration
}

//----------

type Handle bool

const (
	NotHandled Handle = false
	Handled    Handle = true
)

//----------

type MouseDown struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
}
type MouseUp struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
}

//----------

type Cursor int

const (
	NoneCursor Cursor = iota // none means not set
	DefaultCursor
	PointerCursor
	NSResizeCursor
)
