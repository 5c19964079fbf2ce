package crop

import "image"

// State is the inset crop of one loaded image. It is mutated only from the
// UI thread; an active drag session serialises drag updates.
type State struct {
	width, height int
	insets        Insets
	listeners     []Listener
}

// NewState returns the state for a freshly loaded image with nothing cropped.
func NewState(width, height int) (*State, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return &State{width: width, height: height}, nil
}

// Size returns the source image dimensions.
func (s *State) Size() (int, int) {
	if s == nil {
		return 0, 0
	}
	return s.width, s.height
}

// Insets returns the current margins.
func (s *State) Insets() Insets {
	if s == nil {
		return Insets{}
	}
	return s.insets
}

// VisibleSize returns the dimensions of the cropped area.
func (s *State) VisibleSize() (int, int) {
	if s == nil {
		return 0, 0
	}
	return s.width - s.insets.Left - s.insets.Right, s.height - s.insets.Top - s.insets.Bottom
}

// VisibleRect returns the cropped area in image pixel coordinates.
func (s *State) VisibleRect() image.Rectangle {
	if s == nil {
		return image.Rectangle{}
	}
	return image.Rect(s.insets.Left, s.insets.Top, s.width-s.insets.Right, s.height-s.insets.Bottom)
}

// AddListener registers l. Listeners run in registration order.
func (s *State) AddListener(l Listener) {
	if s == nil || l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

// SetInsets applies typed values. Negative values become zero and the
// result is clamped so the visible area keeps at least one pixel per axis.
func (s *State) SetInsets(in Insets) {
	if s == nil {
		return
	}
	in.Left = max(in.Left, 0)
	in.Right = max(in.Right, 0)
	in.Top = max(in.Top, 0)
	in.Bottom = max(in.Bottom, 0)
	s.commit(s.clampSequential(in))
}

// SetHorizontalOffset slides the visible window to start at column off while
// keeping its width.
func (s *State) SetHorizontalOffset(off int) {
	if s == nil {
		return
	}
	visW, _ := s.VisibleSize()
	in := s.insets
	in.Left = clampInt(off, 0, s.width-visW)
	in.Right = s.width - in.Left - visW
	s.commit(in)
}

// SetVerticalOffset slides the visible window to start at row off while
// keeping its height.
func (s *State) SetVerticalOffset(off int) {
	if s == nil {
		return
	}
	_, visH := s.VisibleSize()
	in := s.insets
	in.Top = clampInt(off, 0, s.height-visH)
	in.Bottom = s.height - in.Top - visH
	s.commit(in)
}

// MaxOffsets returns the largest offsets accepted by SetHorizontalOffset and
// SetVerticalOffset for the current window size.
func (s *State) MaxOffsets() (int, int) {
	if s == nil {
		return 0, 0
	}
	visW, visH := s.VisibleSize()
	return s.width - visW, s.height - visH
}

// Resize applies an incremental image-space delta through handle h.
func (s *State) Resize(h Handle, dx, dy int) {
	if s == nil || h == HandleNone {
		return
	}
	in := s.insets
	if h.west() {
		in.Left += dx
	}
	if h.east() {
		in.Right -= dx
	}
	if h.north() {
		in.Top += dy
	}
	if h.south() {
		in.Bottom -= dy
	}
	s.commit(s.clampSequential(in))
}

// Move slides the visible window by an image-space delta without resizing
// it. The slide stops at the image border.
func (s *State) Move(dx, dy int) {
	if s == nil {
		return
	}
	in := s.insets
	in.Left += dx
	in.Right -= dx
	in.Top += dy
	in.Bottom -= dy

	if in.Left < 0 {
		in.Right += in.Left
		in.Left = 0
	}
	if in.Right < 0 {
		in.Left += in.Right
		in.Right = 0
	}
	if in.Top < 0 {
		in.Bottom += in.Top
		in.Top = 0
	}
	if in.Bottom < 0 {
		in.Top += in.Bottom
		in.Bottom = 0
	}

	in.Left = min(in.Left, s.width-in.Right-1)
	in.Right = min(in.Right, s.width-in.Left-1)
	in.Top = min(in.Top, s.height-in.Bottom-1)
	in.Bottom = min(in.Bottom, s.height-in.Top-1)
	s.commit(in)
}

// clampSequential clamps left, right, top, bottom in that order, each
// against the already clamped sibling on its axis.
func (s *State) clampSequential(in Insets) Insets {
	in.Left = clampInt(in.Left, 0, s.width-in.Right-1)
	in.Right = clampInt(in.Right, 0, s.width-in.Left-1)
	in.Top = clampInt(in.Top, 0, s.height-in.Bottom-1)
	in.Bottom = clampInt(in.Bottom, 0, s.height-in.Top-1)
	return in
}

func (s *State) commit(in Insets) {
	if in == s.insets {
		return
	}
	s.insets = in
	for _, l := range s.listeners {
		l(in)
	}
}

// clampInt bounds v to [lo, hi]. The lower bound wins when hi < lo.
func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
