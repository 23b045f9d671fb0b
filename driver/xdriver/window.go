package xdriver

import (
	"image"
	"image/draw"
	"log"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollpanel/driver/xdriver/wimage"
	"github.com/jmigpin/scrollpanel/driver/xdriver/wmprotocols"
	"github.com/jmigpin/scrollpanel/driver/xdriver/xcursors"
	"github.com/jmigpin/scrollpanel/driver/xdriver/xinput"
	"github.com/jmigpin/scrollpanel/driver/xdriver/xutil"
	"github.com/jmigpin/scrollpanel/util/uiutil/event"
	"github.com/pkg/errors"
)

type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	Cursors *xcursors.Cursors
	Wmp     *wmprotocols.WMP
	WImg    wimage.WImage

	closeOnce sync.Once
}

func NewWindow(size image.Point) (*Window, error) {
	conn, err := xgb.NewConnDisplay(os.Getenv("DISPLAY"))
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}
	win := &Window{Conn: conn}
	if err := win.initialize(size); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}
	return win, nil
}

func (win *Window) initialize(size image.Point) error {
	// before any goroutine uses the connection
	wimage.Init(win.Conn)

	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskLeaveWindow |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwEventMask)
	values := []uint32{evMask}

	_ = xproto.CreateWindow(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, uint16(size.X), uint16(size.Y),
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)

	_ = xproto.MapWindow(win.Conn, window)

	if err := xutil.LoadAtoms(win.Conn, &atoms, false); err != nil {
		return err
	}

	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx
	c2 := xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), 0, nil)
	if err := c2.Check(); err != nil {
		return err
	}

	win.Cursors = xcursors.NewCursors(win.Conn, win.Window)

	opt := &wimage.Options{
		Conn:       win.Conn,
		Window:     win.Window,
		ScreenInfo: win.Screen,
		GCtx:       win.GCtx,
	}
	img, err := wimage.NewWImage(opt)
	if err != nil {
		return err
	}
	win.WImg = img

	wmp, err := wmprotocols.NewWMP(win.Conn, win.Window)
	if err != nil {
		return err
	}
	win.Wmp = wmp

	return nil
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		if err := win.WImg.Close(); err != nil {
			log.Print(err)
		}
		win.Conn.Close()
	})
	return nil
}

//----------

// Blocks until the connection is closed.
func (win *Window) EventLoop(events chan<- interface{}) {
	for {
		ev, xerr := win.Conn.WaitForEvent()
		if ev == nil && xerr == nil {
			events <- &event.WindowClose{}
			return
		}
		if xerr != nil {
			events <- error(xerr)
		}
		if ev != nil {
			win.handleEvent(ev, events)
		}
	}
}

func (win *Window) handleEvent(ev xgb.Event, events chan<- interface{}) {
	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		// position is relative to the parent, the image always starts at (0,0)
		r := image.Rect(0, 0, int(t.Width), int(t.Height))
		events <- &event.WindowResize{Rect: r}
	case xproto.ExposeEvent:
		r := image.Rect(0, 0, int(t.Width), int(t.Height))
		events <- &event.WindowExpose{Rect: r}
	case xproto.MapNotifyEvent, xproto.ReparentNotifyEvent:

	case shm.CompletionEvent:
		win.WImg.PutImageCompleted()

	case xproto.ButtonPressEvent:
		events <- xinput.ButtonPress(&t)
	case xproto.ButtonReleaseEvent:
		events <- xinput.ButtonRelease(&t)
	case xproto.MotionNotifyEvent:
		events <- xinput.MotionNotify(&t)
	case xproto.LeaveNotifyEvent:
		events <- xinput.LeaveNotify(&t)

	case xproto.ClientMessageEvent:
		win.Wmp.OnClientMessage(&t, events)

	default:
		log.Printf("unhandled event: %#v", ev)
	}
}

//----------

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,
		atoms.NetWMName,  // property
		atoms.Utf8String, // target
		8,                // format
		uint32(len(b)),
		b)
}

func (win *Window) Image() draw.Image {
	return win.WImg.Image()
}
func (win *Window) PutImage(r image.Rectangle) error {
	return win.WImg.PutImage(r)
}
func (win *Window) ResizeImage(r image.Rectangle) error {
	if r.Eq(win.Image().Bounds()) {
		return nil
	}
	return win.WImg.Resize(r)
}

func (win *Window) SetCursor(c event.Cursor) {
	if err := win.Cursors.SetCursor(xcursors.EventCursor(c)); err != nil {
		log.Print(err)
	}
}

//----------

var atoms struct {
	NetWMName  xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	Utf8String xproto.Atom `loadAtoms:"UTF8_STRING"`
}
