package wimage

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
)

const putCompletedTimeout = 500 * time.Millisecond

type ShmWImage struct {
	opt          *Options
	segId        shm.Seg
	imgWrap      *ShmImgWrap
	putCompleted chan struct{}
}

func NewShmWImage(opt *Options) (*ShmWImage, error) {
	if initErr != nil {
		return nil, initErr
	}
	wi := &ShmWImage{opt: opt, putCompleted: make(chan struct{}, 1)}
	segId, err := shm.NewSegId(opt.Conn)
	if err != nil {
		return nil, err
	}
	wi.segId = segId
	if err := wi.Resize(image.Rect(0, 0, 1, 1)); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *ShmWImage) Close() error {
	return wi.imgWrap.Close()
}

func (wi *ShmWImage) Resize(r image.Rectangle) error {
	imgWrap, err := NewShmImgWrap(r)
	if err != nil {
		return err
	}
	old := wi.imgWrap
	wi.imgWrap = imgWrap
	if old != nil {
		// detach before attaching the new segment to the same id
		_ = shm.Detach(wi.opt.Conn, wi.segId)
		if err := old.Close(); err != nil {
			return err
		}
	}
	readOnly := false
	cookie := shm.AttachChecked(wi.opt.Conn, wi.segId, uint32(imgWrap.shmId), readOnly)
	if err := cookie.Check(); err != nil {
		return fmt.Errorf("shmwimage: attach: %w", err)
	}
	return nil
}

func (wi *ShmWImage) Image() draw.Image {
	return wi.imgWrap.Img
}

func (wi *ShmWImage) PutImage(r image.Rectangle) error {
	// drain a late completion from a previous timed out put
	select {
	case <-wi.putCompleted:
	default:
	}

	img := wi.imgWrap.Img
	b := img.Bounds()
	r = r.Intersect(b)
	if r.Empty() {
		return nil
	}
	c := shm.PutImageChecked(
		wi.opt.Conn,
		xproto.Drawable(wi.opt.Window),
		wi.opt.GCtx,
		uint16(b.Dx()), uint16(b.Dy()), // total width/height
		uint16(r.Min.X), uint16(r.Min.Y), uint16(r.Dx()), uint16(r.Dy()), // src x,y,w,h
		int16(r.Min.X), int16(r.Min.Y), // dst x,y
		wi.opt.ScreenInfo.RootDepth,
		xproto.ImageFormatZPixmap,
		1, // send shm.CompletionEvent when done
		wi.segId,
		0) // offset
	if err := c.Check(); err != nil {
		return err
	}

	// the image memory can't be touched until the server is done reading it
	t := time.NewTimer(putCompletedTimeout)
	defer t.Stop()
	select {
	case <-wi.putCompleted:
		return nil
	case <-t.C:
		return fmt.Errorf("shmwimage: put image completion timeout")
	}
}

func (wi *ShmWImage) PutImageCompleted() {
	select {
	case wi.putCompleted <- struct{}{}:
	default:
	}
}

//----------

var initErr error

// Must run before other goroutines use the connection (xgb extension map is not synced).
func Init(conn *xgb.Conn) {
	initErr = shm.Init(conn)
}
