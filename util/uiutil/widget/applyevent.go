package widget

import (
	"image"

	"github.com/jmigpin/scrollpanel/util/uiutil/event"
)

type CursorContext interface {
	SetCursor(event.Cursor)
}

// Node driven by ApplyEvent.
type Node interface {
	ScrollEngine
	Embed() *Panel
	ScrollLimit() int
}

//----------

// Translates window input events into node calls with panel-local points. Keeps the node pointer inside state and the pressed button (the node keeps receiving moves while a button is held).
type ApplyEvent struct {
	cctx    CursorContext // can be nil
	pressed event.MouseButton
	last    image.Point // last local point
}

func NewApplyEvent(cctx CursorContext) *ApplyEvent {
	return &ApplyEvent{cctx: cctx}
}

//----------

// Returns NotHandled for events that should be passed to a parent (ex: wheel at the scroll limit).
func (ae *ApplyEvent) Apply(node Node, ev interface{}, p image.Point) event.Handle {
	ae.mouseEnterLeave(node, p)

	h := event.NotHandled
	switch evt := ev.(type) {
	case nil: // allow running the rest of the function without an event
	case *event.MouseDown:
		h = ae.mouseDown(node, evt)
	case *event.MouseMove:
		h = ae.mouseMove(node, evt)
	case *event.MouseUp:
		h = ae.mouseUp(node, evt)
	}

	ae.setCursor(node, p)
	return h
}

//----------

func (ae *ApplyEvent) mouseEnterLeave(node Node, p image.Point) {
	pe := node.Embed()
	pe.SetMouseInside(p.In(pe.Bounds))
}

//----------

func (ae *ApplyEvent) mouseDown(node Node, ev *event.MouseDown) event.Handle {
	pe := node.Embed()
	if !ev.Point.In(pe.Bounds) {
		return event.NotHandled
	}
	lp := pe.LocalPoint(ev.Point)

	if d := ev.Button.WheelDelta(); d != 0 {
		if wheelPassesUp(node.ScrollLimit(), d) {
			return event.NotHandled
		}
		node.OnWheel(lp, d)
		return event.Handled
	}

	switch ev.Button {
	case event.ButtonWheelLeft, event.ButtonWheelRight:
		return event.NotHandled
	}

	// one press at a time
	if ae.pressed != event.ButtonNone {
		return event.Handled
	}
	ae.pressed = ev.Button
	ae.last = lp
	node.OnPointerDown(lp, ev.Button)
	return event.Handled
}

func (ae *ApplyEvent) mouseUp(node Node, ev *event.MouseUp) event.Handle {
	if ae.pressed == event.ButtonNone || ev.Button != ae.pressed {
		return event.NotHandled
	}
	ae.pressed = event.ButtonNone
	lp := node.Embed().LocalPoint(ev.Point)
	node.OnPointerUp(lp, ev.Button)
	return event.Handled
}

// Moves always reach the node so the hover state is also cleared when the pointer leaves.
func (ae *ApplyEvent) mouseMove(node Node, ev *event.MouseMove) event.Handle {
	pe := node.Embed()
	lp := pe.LocalPoint(ev.Point)
	delta := lp.Sub(ae.last)
	ae.last = lp
	node.OnPointerMove(lp, delta)
	if ev.Point.In(pe.Bounds) || ae.pressed != event.ButtonNone {
		return event.Handled
	}
	return event.NotHandled
}

//----------

func (ae *ApplyEvent) setCursor(node Node, p image.Point) {
	if ae.cctx == nil {
		return
	}
	pe := node.Embed()
	c := pe.Cursor
	if !pe.MouseInside() && ae.pressed == event.ButtonNone {
		c = event.NoneCursor
	}
	ae.cctx.SetCursor(c)
}

//----------

// Wheel up (positive delta) at the top, or wheel down at the bottom, is left for a parent scroller.
func wheelPassesUp(limit, delta int) bool {
	return (delta > 0 && limit == -1) || (delta < 0 && limit == 1)
}
