package wimage

import (
	"image"
	"image/draw"
	"log"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Window image: the viewer paints into Image() and sends the changed rectangle with PutImage.
type WImage interface {
	Image() draw.Image
	PutImage(image.Rectangle) error
	PutImageCompleted() // called from the event loop on shm completion
	Resize(image.Rectangle) error
	Close() error
}

func NewWImage(opt *Options) (WImage, error) {
	wimg, err := NewShmWImage(opt)
	if err == nil {
		return wimg, nil
	}
	log.Printf("wimage: shm not available, using pixmap: %v", err)
	return NewPixmapWImage(opt)
}

type Options struct {
	Conn       *xgb.Conn
	Window     xproto.Window
	ScreenInfo *xproto.ScreenInfo
	GCtx       xproto.Gcontext
}
