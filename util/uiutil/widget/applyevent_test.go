package widget

import (
	"image"
	"testing"

	"github.com/jmigpin/scrollpanel/util/uiutil/event"
)

type testCursorCtx struct {
	c event.Cursor
}

func (ctx *testCursorCtx) SetCursor(c event.Cursor) {
	ctx.c = c
}

//----------

func newTestApplyEvent() (*ApplyEvent, *ScrollPanel, *testCursorCtx) {
	sp := NewScrollPanel(false)
	sp.Bounds = image.Rect(10, 20, 60, 120)
	sp.InnerSize = image.Point{50, 400}
	sp.Tick(0)
	cctx := &testCursorCtx{}
	return NewApplyEvent(cctx), sp, cctx
}

func TestApplyEventMouseInside(t *testing.T) {
	ae, sp, _ := newTestApplyEvent()
	p := image.Point{30, 30}
	ae.Apply(sp, &event.MouseMove{Point: p}, p)
	if !sp.MouseInside() {
		t.Fatal("expecting inside")
	}
	p = image.Point{5, 30}
	ae.Apply(sp, &event.MouseMove{Point: p}, p)
	if sp.MouseInside() {
		t.Fatal("expecting outside")
	}
}

func TestApplyEventWheel(t *testing.T) {
	ae, sp, _ := newTestApplyEvent()
	p := image.Point{30, 30}

	// at the top: wheel up goes to the parent
	h := ae.Apply(sp, &event.MouseDown{Point: p, Button: event.ButtonWheelUp}, p)
	if h != event.NotHandled {
		t.Fatal(h)
	}
	if _, vy := sp.Velocity(); vy != 0 {
		t.Fatal(vy)
	}

	h = ae.Apply(sp, &event.MouseDown{Point: p, Button: event.ButtonWheelDown}, p)
	if h != event.Handled {
		t.Fatal(h)
	}
	sp.Tick(0)
	if sp.ViewportPosition.Y != -20 {
		t.Fatal(sp.ViewportPosition.Y)
	}

	// outside the bounds
	p2 := image.Point{0, 0}
	h = ae.Apply(sp, &event.MouseDown{Point: p2, Button: event.ButtonWheelDown}, p2)
	if h != event.NotHandled {
		t.Fatal(h)
	}
}

func TestApplyEventWheelAtBottom(t *testing.T) {
	ae, sp, _ := newTestApplyEvent()
	sp.SetScrollPosition(300)
	p := image.Point{30, 30}
	h := ae.Apply(sp, &event.MouseDown{Point: p, Button: event.ButtonWheelDown}, p)
	if h != event.NotHandled {
		t.Fatal(h)
	}
	h = ae.Apply(sp, &event.MouseDown{Point: p, Button: event.ButtonWheelUp}, p)
	if h != event.Handled {
		t.Fatal(h)
	}
}

func TestApplyEventDragThumb(t *testing.T) {
	ae, sp, cctx := newTestApplyEvent()

	p := image.Point{30, 30}
	ae.Apply(sp, &event.MouseMove{Point: p}, p)
	for i := 0; i < maxScrollbarWidth; i++ {
		sp.Tick(0)
	}

	// thumb in window coords: x in [54,60), y in [20,45)
	p = image.Point{57, 25}
	ae.Apply(sp, &event.MouseMove{Point: p}, p)
	if cctx.c != event.PointerCursor {
		t.Fatal(cctx.c)
	}
	ae.Apply(sp, &event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	if !sp.ThumbGrabbed() {
		t.Fatal("expecting grab")
	}

	// moves outside the bounds still reach the panel while pressed
	p = image.Point{57, 150}
	h := ae.Apply(sp, &event.MouseMove{Point: p, Buttons: event.MouseButtons(event.ButtonLeft)}, p)
	if h != event.Handled {
		t.Fatal(h)
	}
	sp.Tick(0)
	if sp.ViewportPosition.Y != -300 {
		t.Fatal(sp.ViewportPosition.Y)
	}
	// width kept while grabbed, even outside
	if sp.ScrollbarWidth() != maxScrollbarWidth {
		t.Fatal(sp.ScrollbarWidth())
	}

	// other button release is ignored
	ae.Apply(sp, &event.MouseUp{Point: p, Button: event.ButtonRight}, p)
	if !sp.ThumbGrabbed() {
		t.Fatal("expecting grab")
	}
	ae.Apply(sp, &event.MouseUp{Point: p, Button: event.ButtonLeft}, p)
	if sp.ThumbGrabbed() {
		t.Fatal("expecting no grab")
	}
	if cctx.c != event.NoneCursor {
		t.Fatal(cctx.c)
	}
}

func TestWheelPassesUp(t *testing.T) {
	if !wheelPassesUp(-1, 1) || !wheelPassesUp(1, -1) {
		t.Fatal("expecting pass up")
	}
	if wheelPassesUp(0, 1) || wheelPassesUp(-1, -1) || wheelPassesUp(1, 1) {
		t.Fatal("not expecting pass up")
	}
}
