package wimage

import (
	"image"
	"unsafe"

	"github.com/jmigpin/scrollpanel/util/imageutil"
)

// BGRA image backed by a shared memory segment.
type ShmImgWrap struct {
	Img   *imageutil.BGRA
	shmId uintptr
	addr  uintptr
}

func NewShmImgWrap(r image.Rectangle) (*ShmImgWrap, error) {
	size := imageutil.BGRASize(&r)
	if size == 0 {
		size = 4 // shmget fails on zero sized segments
	}
	shmId, addr, err := ShmOpen(size)
	if err != nil {
		return nil, err
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	img := imageutil.NewBGRAFromBuffer(buf, &r)
	return &ShmImgWrap{Img: img, shmId: shmId, addr: addr}, nil
}

func (iw *ShmImgWrap) Close() error {
	return ShmClose(iw.shmId, iw.addr)
}
