package widget

import (
	"image"
	"image/draw"
	"math"
	"time"

	"github.com/jmigpin/scrollpanel/util/imageutil"
	"github.com/jmigpin/scrollpanel/util/mathutil"
	"github.com/jmigpin/scrollpanel/util/uiutil/event"
)

// Input and frame callbacks of a scroll engine. Points are relative to the panel top-left corner. Per frame, input callbacks run before Tick, and Tick runs before Draw.
type ScrollEngine interface {
	OnWheel(p image.Point, delta int)
	OnPointerDown(p image.Point, button event.MouseButton)
	OnPointerUp(p image.Point, button event.MouseButton)
	OnPointerMove(p image.Point, delta image.Point)
	Tick(dt time.Duration)
	Draw(img draw.Image, screenPos image.Point)
}

const (
	maxScrollVel   = 7.0
	minScrollVel   = 0.5 // below this the velocity snaps to zero
	scrollVelDecay = 0.98

	wheelMomentumStep = 2
	wheelStep         = 20

	maxScrollbarWidth = 6

	// click-to-page step is the thumb height divided by this
	pageStepDiv = 10
	// page direction placeholder set on pointer down, resolved by the next tick
	pageArmed = 100
)

// Vertical momentum scroll panel. The owner sets Bounds and InnerSize; content is expected to be painted at ViewportPosition.
type ScrollPanel struct {
	Panel

	InnerSize        image.Point
	ViewportPosition image.Point // only Y is managed: -round(offsetY)

	// Read on every wheel and tick call, can be toggled at any time.
	MomentumScroll bool

	maxOffset         image.Point
	offsetX, offsetY  float64
	xScrollVel        float64
	yScrollVel        float64
	scrollbarWidth    int
	overThumb         bool
	overTrack         bool
	thumbGrabbed      bool
	grabStartOffsetY  int
	grabStartPointerY int
	pageDirection     int
}

func NewScrollPanel(momentum bool) *ScrollPanel {
	return &ScrollPanel{MomentumScroll: momentum}
}

//----------

// Returns -1 if at the top, 1 if at the bottom, 0 otherwise.
func (sp *ScrollPanel) ScrollLimit() int {
	if sp.ViewportPosition.Y == 0 {
		return -1
	} else if sp.maxOffset.Y == -sp.ViewportPosition.Y {
		return 1
	}
	return 0
}

func (sp *ScrollPanel) SetScrollPosition(pos int) {
	sp.offsetY = float64(pos)
	sp.ViewportPosition.Y = -pos
}

func (sp *ScrollPanel) Offset() (x, y float64) {
	return sp.offsetX, sp.offsetY
}
func (sp *ScrollPanel) Velocity() (x, y float64) {
	return sp.xScrollVel, sp.yScrollVel
}
func (sp *ScrollPanel) MaxOffset() image.Point {
	return sp.maxOffset
}
func (sp *ScrollPanel) ScrollbarWidth() int {
	return sp.scrollbarWidth
}
func (sp *ScrollPanel) ThumbGrabbed() bool {
	return sp.thumbGrabbed
}
func (sp *ScrollPanel) PointerOverThumb() bool {
	return sp.overThumb
}

//----------

func (sp *ScrollPanel) thumb() (height, pos float64, ok bool) {
	return ThumbGeometry(sp.Size(), sp.InnerSize, sp.offsetY, sp.maxOffset, sp.ViewportPosition.Y)
}

//----------

func (sp *ScrollPanel) OnWheel(p image.Point, delta int) {
	if delta == 0 {
		return
	}
	if sp.MomentumScroll {
		sp.yScrollVel -= float64(delta * wheelMomentumStep)
	} else {
		sp.yScrollVel -= float64(delta * wheelStep)
	}
}

func (sp *ScrollPanel) OnPointerDown(p image.Point, button event.MouseButton) {
	if sp.overThumb {
		sp.thumbGrabbed = true
		sp.grabStartOffsetY = int(sp.offsetY)
	}
	sp.grabStartPointerY = p.Y
	sp.pageDirection = pageArmed
}

func (sp *ScrollPanel) OnPointerUp(p image.Point, button event.MouseButton) {
	sp.thumbGrabbed = false
	sp.overTrack = false
	sp.pageDirection = 0
}

func (sp *ScrollPanel) OnPointerMove(p image.Point, delta image.Point) {
	height, pos, ok := sp.thumb()
	if !ok {
		return
	}
	size := sp.Size()

	if sp.thumbGrabbed {
		if p.X > 0 {
			// pointer travel mapped to content space
			dy := float64(p.Y-sp.grabStartPointerY) * float64(sp.InnerSize.Y) / float64(size.Y)
			y := int(dy + float64(sp.grabStartOffsetY))
			sp.ViewportPosition.Y = -y
			sp.offsetY = float64(y)
		} else {
			// pointer strayed to the left: restore until it returns
			sp.ViewportPosition.Y = -sp.grabStartOffsetY
			sp.offsetY = float64(sp.grabStartOffsetY)
		}
	}

	trackX := size.X - sp.scrollbarWidth
	sp.overTrack = p.X >= trackX && p.X < size.X
	y := float64(p.Y)
	sp.overThumb = sp.overTrack && y >= pos && y < pos+height

	if sp.overThumb {
		sp.Cursor = event.PointerCursor
	} else {
		sp.Cursor = event.NoneCursor
	}
}

//----------

// Advances one frame. The constants are per tick, dt is not used for scaling.
func (sp *ScrollPanel) Tick(dt time.Duration) {
	sp.xScrollVel = mathutil.LimitFloat64(sp.xScrollVel, -maxScrollVel, maxScrollVel)
	sp.xScrollVel = mathutil.SnapZeroFloat64(sp.xScrollVel, minScrollVel)

	size := sp.Size()
	sp.maxOffset.X = mathutil.Biggest(0, sp.InnerSize.X-size.X)
	sp.maxOffset.Y = mathutil.Biggest(0, sp.InnerSize.Y-size.Y)

	sp.offsetY += sp.yScrollVel
	sp.offsetX += sp.xScrollVel

	if sp.MomentumScroll {
		sp.yScrollVel = mathutil.SnapZeroFloat64(sp.yScrollVel, minScrollVel)
		sp.yScrollVel *= scrollVelDecay
		sp.yScrollVel = mathutil.LimitFloat64(sp.yScrollVel, -maxScrollVel, maxScrollVel)
	} else {
		sp.yScrollVel = 0
	}
	sp.xScrollVel *= scrollVelDecay

	// the projection must also follow a clamp that didn't change the rounded value
	clamped := sp.clampOffsetY()
	if y := roundInt(sp.offsetY); clamped || y != -sp.ViewportPosition.Y {
		sp.ViewportPosition.Y = -y
	}

	sp.animateScrollbarWidth()
	sp.pageStep()
}

func (sp *ScrollPanel) clampOffsetY() bool {
	if sp.offsetY < 0 {
		sp.offsetY = 0
		sp.yScrollVel = 0
		return true
	}
	if maxY := float64(sp.maxOffset.Y); sp.offsetY > maxY {
		sp.offsetY = maxY
		sp.yScrollVel = 0
		return true
	}
	return false
}

func (sp *ScrollPanel) animateScrollbarWidth() {
	inside := sp.MouseInside()
	if inside && sp.scrollbarWidth < maxScrollbarWidth {
		sp.scrollbarWidth++
	} else if !inside && sp.scrollbarWidth > 0 && !sp.thumbGrabbed {
		sp.scrollbarWidth--
	}
}

// Click-to-page: while the button is held on the track outside the thumb, moves a tenth of the thumb height per tick towards the click.
func (sp *ScrollPanel) pageStep() {
	if !sp.overTrack || sp.pageDirection == 0 || sp.thumbGrabbed {
		return
	}
	height, pos, ok := sp.thumb()
	if !ok {
		return
	}
	y := float64(sp.grabStartPointerY)
	switch {
	case y <= pos:
		sp.pageDirection = -1
	case y >= pos+height:
		sp.pageDirection = 1
	default:
		sp.pageDirection = 0
	}
	if sp.pageDirection == 0 {
		return
	}
	sp.offsetY += float64(sp.pageDirection) * height / pageStepDiv
	sp.clampOffsetY()
	sp.ViewportPosition.Y = -roundInt(sp.offsetY)
}

//----------

func (sp *ScrollPanel) Draw(img draw.Image, screenPos image.Point) {
	height, pos, ok := sp.thumb()
	if !ok {
		return
	}
	size := sp.Size()
	w := sp.scrollbarWidth
	x := screenPos.X + size.X - w

	track := image.Rect(x, screenPos.Y, x+w, screenPos.Y+size.Y)
	imageutil.BlendRectangle(img, track, sp.PaletteColor("scrollbar_track"))

	ty := screenPos.Y + int(pos)
	thumb := image.Rect(x, ty, x+w, ty+int(height)+1)
	imageutil.FillRectangle(img, thumb, sp.PaletteColor("scrollbar_thumb"))
}

//----------

func roundInt(v float64) int {
	return int(math.Round(v))
}
