package xinput

import (
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollpanel/util/uiutil/event"
)

// Pointer events only: the viewer has no keyboard input.

func ButtonPress(ev *xproto.ButtonPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	bs := translateModifiersToEventMouseButtons(ev.State)
	ev2 := &event.MouseDown{Point: p, Button: b, Buttons: bs}
	return &event.WindowInput{Point: p, Event: ev2}
}
func ButtonRelease(ev *xproto.ButtonReleaseEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	bs := translateModifiersToEventMouseButtons(ev.State)
	ev2 := &event.MouseUp{Point: p, Button: b, Buttons: bs}
	return &event.WindowInput{Point: p, Event: ev2}
}
func MotionNotify(ev *xproto.MotionNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	bs := translateModifiersToEventMouseButtons(ev.State)
	ev2 := &event.MouseMove{Point: p, Buttons: bs}
	return &event.WindowInput{Point: p, Event: ev2}
}

// Leaving the window reports a move outside the image so the hover state gets cleared.
func LeaveNotify(ev *xproto.LeaveNotifyEvent) *event.WindowInput {
	p := image.Point{-1, -1}
	bs := translateModifiersToEventMouseButtons(ev.State)
	if bs != 0 {
		// pointer grabbed by the press, keep the real position
		p = image.Point{int(ev.EventX), int(ev.EventY)}
	}
	ev2 := &event.MouseMove{Point: p, Buttons: bs}
	return &event.WindowInput{Point: p, Event: ev2}
}

//----------

func translateModifiersToEventMouseButtons(v uint16) event.MouseButtons {
	type pair struct {
		a uint16
		b event.MouseButton
	}
	pairs := []pair{
		{xproto.KeyButMaskButton1, event.ButtonLeft},
		{xproto.KeyButMaskButton2, event.ButtonMiddle},
		{xproto.KeyButMaskButton3, event.ButtonRight},
		{xproto.KeyButMaskButton4, event.ButtonWheelUp},
		{xproto.KeyButMaskButton5, event.ButtonWheelDown},
	}
	var w event.MouseButtons
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= event.MouseButtons(p.b)
		}
	}
	return w
}

func translateButtonToEventButton(xb xproto.Button) event.MouseButton {
	var b event.MouseButton
	switch xb {
	case 1:
		b = event.ButtonLeft
	case 2:
		b = event.ButtonMiddle
	case 3:
		b = event.ButtonRight
	case 4:
		b = event.ButtonWheelUp
	case 5:
		b = event.ButtonWheelDown
	case 6:
		b = event.ButtonWheelLeft
	case 7:
		b = event.ButtonWheelRight
	case 8:
		b = event.ButtonBackward
	case 9:
		b = event.ButtonForward
	}
	return b
}
