package crop

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a state is built for an image without pixels.
var ErrInvalidSize = errors.New("crop: image size must be positive")

// Insets are the pixel margins removed from each edge of the source image.
type Insets struct {
	Left   int `json:"left" toml:"left"`
	Right  int `json:"right" toml:"right"`
	Top    int `json:"top" toml:"top"`
	Bottom int `json:"bottom" toml:"bottom"`
}

func (in Insets) String() string {
	return fmt.Sprintf("l=%d r=%d t=%d b=%d", in.Left, in.Right, in.Top, in.Bottom)
}

// IsZero reports whether no pixels are removed on any edge.
func (in Insets) IsZero() bool { return in == Insets{} }

// Handle identifies one of the eight resize handles of the crop box.
type Handle int

const (
	HandleNone Handle = iota
	HandleNW
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
)

// handleOrder is the hit-test enumeration order. The first match wins when
// handle regions overlap on very small crop boxes.
var handleOrder = [...]Handle{HandleNW, HandleN, HandleNE, HandleE, HandleSE, HandleS, HandleSW, HandleW}

func (h Handle) String() string {
	switch h {
	case HandleNW:
		return "nw"
	case HandleN:
		return "n"
	case HandleNE:
		return "ne"
	case HandleE:
		return "e"
	case HandleSE:
		return "se"
	case HandleS:
		return "s"
	case HandleSW:
		return "sw"
	case HandleW:
		return "w"
	default:
		return "none"
	}
}

func (h Handle) west() bool  { return h == HandleNW || h == HandleW || h == HandleSW }
func (h Handle) east() bool  { return h == HandleNE || h == HandleE || h == HandleSE }
func (h Handle) north() bool { return h == HandleNW || h == HandleN || h == HandleNE }
func (h Handle) south() bool { return h == HandleSW || h == HandleS || h == HandleSE }

// Mode is the kind of drag in progress.
type Mode int

const (
	ModeNone Mode = iota
	ModeMoving
	ModeResizing
)

func (m Mode) String() string {
	switch m {
	case ModeMoving:
		return "moving"
	case ModeResizing:
		return "resizing"
	default:
		return "none"
	}
}

// Cursor is a hover hint for the pointer shape over the preview.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorResizeNW
	CursorResizeN
	CursorResizeNE
	CursorResizeE
	CursorResizeSE
	CursorResizeS
	CursorResizeSW
	CursorResizeW
)

// CursorFor maps a hit-test result to a cursor hint.
func CursorFor(h Handle, inside bool) Cursor {
	switch h {
	case HandleNW:
		return CursorResizeNW
	case HandleN:
		return CursorResizeN
	case HandleNE:
		return CursorResizeNE
	case HandleE:
		return CursorResizeE
	case HandleSE:
		return CursorResizeSE
	case HandleS:
		return CursorResizeS
	case HandleSW:
		return CursorResizeSW
	case HandleW:
		return CursorResizeW
	}
	if inside {
		return CursorMove
	}
	return CursorDefault
}

// Point is a screen-space position. Screen space is fractional because the
// preview is a scaled copy of the image.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect is a screen-space rectangle given by its top-left corner and size.
type Rect struct{ X, Y, W, H float64 }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Listener receives the insets after every mutation that changed them.
type Listener func(Insets)
