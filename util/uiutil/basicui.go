package uiutil

import (
	"image"
	"image/draw"
	"log"
	"time"

	"github.com/jmigpin/scrollpanel/driver"
	"github.com/jmigpin/scrollpanel/util/uiutil/event"
	"github.com/jmigpin/scrollpanel/util/uiutil/widget"
)

// Node at the window root: receives the input events and ticks, and paints the whole window image.
type RootNode interface {
	widget.Node
	Paint(img draw.Image)
}

// Serializes window events and frame ticks through one channel: input events are applied when they arrive, and each tick runs the node Tick and then paints.
type BasicUI struct {
	FrameRate int // frames per second
	Root      RootNode
	Win       driver.Window
	AE        *widget.ApplyEvent

	events    chan interface{}
	done      chan struct{}
	curCursor event.Cursor
}

func NewBasicUI(events chan interface{}, winName string, size image.Point, frameRate int) (*BasicUI, error) {
	win, err := driver.NewWindow(size)
	if err != nil {
		return nil, err
	}
	win.SetWindowName(winName)

	if frameRate <= 0 {
		frameRate = 60
	}
	ui := &BasicUI{
		FrameRate: frameRate,
		Win:       win,
		events:    events,
		done:      make(chan struct{}),
	}
	ui.AE = widget.NewApplyEvent(ui)

	// mouse moves are coalesced to at most one per frame
	winEvents := make(chan interface{}, cap(events))
	go ui.Win.EventLoop(winEvents)
	go MouseMoveFilterLoop(winEvents, events, ui.frameDur())

	go ui.tickLoop()

	return ui, nil
}

func (ui *BasicUI) Close() {
	close(ui.done)
	if err := ui.Win.Close(); err != nil {
		log.Println(err)
	}
}

func (ui *BasicUI) frameDur() time.Duration {
	return time.Second / time.Duration(ui.FrameRate)
}

func (ui *BasicUI) tickLoop() {
	ticker := time.NewTicker(ui.frameDur())
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ui.done:
			return
		case now := <-ticker.C:
			ev := &event.Tick{Time: now, Dt: now.Sub(last)}
			last = now
			select {
			case ui.events <- ev:
			case <-ui.done:
				return
			}
		}
	}
}

//----------

// Returns true when the window was closed.
func (ui *BasicUI) HandleEvent(ev interface{}) (quit bool) {
	switch t := ev.(type) {
	case *event.WindowClose:
		return true
	case *event.WindowResize:
		ui.resize(t.Rect)
	case *event.WindowExpose:
		ui.resize(t.Rect)
		ui.paint()
	case *event.WindowInput:
		ui.AE.Apply(ui.Root, t.Event, t.Point)
	case *event.Tick:
		ui.tick(t.Dt)
	case error:
		log.Println(t)
	default:
		log.Printf("unhandled event: %#v", ev)
	}
	return false
}

func (ui *BasicUI) resize(r image.Rectangle) {
	if err := ui.Win.ResizeImage(r); err != nil {
		log.Println(err)
		return
	}
	ui.Root.Embed().Bounds = ui.Win.Image().Bounds()
}

func (ui *BasicUI) tick(dt time.Duration) {
	ui.Root.Tick(dt)
	ui.paint()
}

func (ui *BasicUI) paint() {
	img := ui.Win.Image()
	ui.Root.Paint(img)
	if err := ui.Win.PutImage(img.Bounds()); err != nil {
		log.Println(err)
	}
}

// Implements widget.CursorContext.
func (ui *BasicUI) SetCursor(c event.Cursor) {
	if ui.curCursor == c {
		return
	}
	ui.curCursor = c
	ui.Win.SetCursor(c)
}
