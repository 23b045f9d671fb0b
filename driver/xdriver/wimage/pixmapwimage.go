package wimage

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollpanel/util/imageutil"
)

// Copies the image through the connection. Used when the server has no shm extension (ex: remote display).
type PixmapWImage struct {
	opt        *Options
	pixId      xproto.Pixmap
	pixCreated bool
	img        *imageutil.BGRA
}

func NewPixmapWImage(opt *Options) (*PixmapWImage, error) {
	wi := &PixmapWImage{opt: opt}
	pixId, err := xproto.NewPixmapId(opt.Conn)
	if err != nil {
		return nil, err
	}
	wi.pixId = pixId
	if err := wi.Resize(image.Rect(0, 0, 1, 1)); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *PixmapWImage) Close() error {
	wi.img = &imageutil.BGRA{}
	return wi.freePixmap()
}

func (wi *PixmapWImage) freePixmap() error {
	if !wi.pixCreated {
		return nil
	}
	wi.pixCreated = false
	return xproto.FreePixmapChecked(wi.opt.Conn, wi.pixId).Check()
}

func (wi *PixmapWImage) Resize(r image.Rectangle) error {
	if err := wi.freePixmap(); err != nil {
		return err
	}
	err := xproto.CreatePixmapChecked(
		wi.opt.Conn,
		wi.opt.ScreenInfo.RootDepth,
		wi.pixId,
		xproto.Drawable(wi.opt.Window),
		uint16(r.Dx()),
		uint16(r.Dy())).Check()
	if err != nil {
		return err
	}
	wi.pixCreated = true
	wi.img = imageutil.NewBGRA(&r)
	return nil
}

func (wi *PixmapWImage) Image() draw.Image {
	return wi.img
}

func (wi *PixmapWImage) PutImage(r image.Rectangle) error {
	r = r.Intersect(wi.img.Bounds())
	if r.Empty() {
		return nil
	}

	// request max length is (2^16)*4 bytes, send in horizontal bands
	putImgReqSize := 28
	maxReqSize := (1 << 16) * 4
	maxPixels := (maxReqSize - putImgReqSize) / 4
	if r.Dx() > maxPixels {
		return fmt.Errorf("pixmapwimage: dx>max, %v>%v", r.Dx(), maxPixels)
	}
	bandH := maxPixels / r.Dx()

	for minY := r.Min.Y; minY < r.Max.Y; minY += bandH {
		h := bandH
		if minY+h > r.Max.Y {
			h = r.Max.Y - minY
		}
		data := wi.bandData(r.Min.X, minY, r.Dx(), h)
		// unchecked: errors arrive in the event loop
		_ = xproto.PutImage(
			wi.opt.Conn,
			xproto.ImageFormatZPixmap,
			xproto.Drawable(wi.opt.Window),
			wi.opt.GCtx,
			uint16(r.Dx()), uint16(h),
			int16(r.Min.X), int16(minY),
			0, // left pad, 0 for ZPixmap
			wi.opt.ScreenInfo.RootDepth,
			data)
	}
	return nil
}

func (wi *PixmapWImage) bandData(x, y, w, h int) []byte {
	data := make([]byte, w*h*4)
	for i := 0; i < h; i++ {
		j := wi.img.PixOffset(x, y+i)
		copy(data[i*w*4:(i+1)*w*4], wi.img.Pix[j:])
	}
	return data
}

func (wi *PixmapWImage) PutImageCompleted() {
	// synchronous puts, no completion events
}
