package crop

import "log/slog"

// Session is the transient state of a drag. The zero value is idle.
type Session struct {
	Mode   Mode
	Handle Handle
	Anchor Point
}

// Active reports whether a drag is in progress.
func (s Session) Active() bool { return s.Mode != ModeNone }

// Engine turns pointer events over the preview into inset updates. It holds
// no state of its own besides the drag session; the crop state is swapped
// whenever a new image loads.
type Engine struct {
	state     *State
	session   Session
	tolerance float64
	logger    *slog.Logger
}

// NewEngine returns an engine with the given handle tolerance in screen
// pixels. A non-positive tolerance selects DefaultHandleTolerance.
func NewEngine(tolerance float64, logger *slog.Logger) *Engine {
	if tolerance <= 0 {
		tolerance = DefaultHandleTolerance
	}
	return &Engine{tolerance: tolerance, logger: logger}
}

// SetState replaces the crop state; nil means no image is loaded. Any drag
// in progress is abandoned.
func (e *Engine) SetState(s *State) {
	if e == nil {
		return
	}
	e.state = s
	e.session = Session{}
}

// State returns the current crop state, nil when no image is loaded.
func (e *Engine) State() *State {
	if e == nil {
		return nil
	}
	return e.state
}

// Session returns a copy of the drag session.
func (e *Engine) Session() Session {
	if e == nil {
		return Session{}
	}
	return e.session
}

// PointerDown starts a resize when p is on a handle, or a move when p is
// inside the crop box. It reports whether the event was consumed.
func (e *Engine) PointerDown(p Point, d Rect) bool {
	if e == nil || e.state == nil || d.Empty() {
		return false
	}
	box := e.state.CropRect(d)
	if h := HandleAt(box, p, e.tolerance); h != HandleNone {
		e.session = Session{Mode: ModeResizing, Handle: h, Anchor: p}
		e.debug("drag start", "mode", e.session.Mode.String(), "handle", h.String())
		return true
	}
	if box.Contains(p) {
		e.session = Session{Mode: ModeMoving, Anchor: p}
		e.debug("drag start", "mode", e.session.Mode.String())
		return true
	}
	return false
}

// PointerMove applies the delta since the last event. When a drag is active
// but the button is no longer held, the release was missed: the drag ends and
// the event is not consumed.
func (e *Engine) PointerMove(p Point, held bool, d Rect) bool {
	if e == nil || e.state == nil || !e.session.Active() {
		return false
	}
	if !held {
		e.debug("drag abandoned", "reason", "button released")
		e.session = Session{}
		return false
	}
	if d.Empty() {
		return false
	}
	cx, cy := e.state.ScreenToImage(d, p)
	sx, sy := e.state.ScreenToImage(d, e.session.Anchor)
	dx, dy := cx-sx, cy-sy
	switch e.session.Mode {
	case ModeResizing:
		e.state.Resize(e.session.Handle, dx, dy)
	case ModeMoving:
		e.state.Move(dx, dy)
	}
	e.session.Anchor = p
	return true
}

// PointerUp ends the drag and reports whether one was in progress.
func (e *Engine) PointerUp() bool {
	if e == nil {
		return false
	}
	was := e.session.Active()
	e.session = Session{}
	return was
}

// Cancel ends any drag without further updates.
func (e *Engine) Cancel() {
	if e == nil {
		return
	}
	if e.session.Active() {
		e.debug("drag cancelled")
	}
	e.session = Session{}
}

// Hover returns the cursor hint for p. During a drag the cursor of the drag
// is kept.
func (e *Engine) Hover(p Point, d Rect) Cursor {
	if e == nil || e.state == nil || d.Empty() {
		return CursorDefault
	}
	switch e.session.Mode {
	case ModeResizing:
		return CursorFor(e.session.Handle, true)
	case ModeMoving:
		return CursorMove
	}
	box := e.state.CropRect(d)
	h := HandleAt(box, p, e.tolerance)
	return CursorFor(h, box.Contains(p))
}

func (e *Engine) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
