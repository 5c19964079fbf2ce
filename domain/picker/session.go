package picker

import (
	"errors"
	"image"
	"log/slog"
	"time"
)

var (
	// ErrNotActive is returned when a closed session is asked to pick.
	ErrNotActive = errors.New("picker: session is not active")
	// ErrUnknownWidget is returned when the chosen widget is not offered.
	ErrUnknownWidget = errors.New("picker: widget is not eligible")
)

// ArmDelay is how long clicks are ignored after a session begins, so the
// click that opened the picker is not taken as the pick.
const ArmDelay = 100 * time.Millisecond

// Button is a pointer button number as reported by the windowing system.
type Button int

const ButtonPrimary Button = 1

// Phase is the step a session is in.
type Phase int

const (
	PhaseCapturing Phase = iota // waiting for a click on a node
	PhaseChoosing               // node found, waiting for a widget choice
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseCapturing:
		return "capturing"
	case PhaseChoosing:
		return "choosing"
	default:
		return "closed"
	}
}

// Outcome tells the caller what a click did.
type Outcome int

const (
	OutcomeIgnored   Outcome = iota // session unchanged
	OutcomeCancelled                // session closed without a pick
	OutcomeChoosing                 // a node with eligible widgets was hit
)

// Session is one modal pick. Every exit path (escape, outside click, empty
// hit, successful choice, explicit cancel) closes it, and closing runs the
// registered teardown functions once, most recent first.
type Session struct {
	graph    *Graph
	view     Viewport
	selfID   int
	armedAt  time.Time
	phase    Phase
	target   *Node
	choices  []Widget
	releases []func()
	logger   *slog.Logger
}

// Begin starts a session for the node selfID. now is the time the picker was
// opened.
func Begin(g *Graph, v Viewport, selfID int, now time.Time, logger *slog.Logger) *Session {
	return &Session{graph: g, view: v, selfID: selfID, armedAt: now.Add(ArmDelay), logger: logger}
}

// Acquire registers a teardown to run when the session closes. If the
// session is already closed release runs immediately.
func (s *Session) Acquire(release func()) {
	if release == nil {
		return
	}
	if s == nil || s.phase == PhaseClosed {
		release()
		return
	}
	s.releases = append(s.releases, release)
}

// Phase returns the current step.
func (s *Session) Phase() Phase {
	if s == nil {
		return PhaseClosed
	}
	return s.phase
}

// Active reports whether the session is still open.
func (s *Session) Active() bool { return s.Phase() != PhaseClosed }

// Viewport returns the transform the session hit-tests with.
func (s *Session) Viewport() Viewport {
	if s == nil {
		return Viewport{}
	}
	return s.view
}

// Click handles a click at screen position (sx, sy).
func (s *Session) Click(sx, sy float64, b Button, now time.Time) Outcome {
	if s == nil || s.phase != PhaseCapturing || b != ButtonPrimary || now.Before(s.armedAt) {
		return OutcomeIgnored
	}
	gx, gy := s.view.ScreenToGraph(sx, sy)
	n, ok := s.graph.NodeAt(gx, gy)
	if !ok || !Selectable(n, s.selfID) {
		s.debug("pick cancelled", "x", gx, "y", gy, "hit", ok)
		s.Close()
		return OutcomeCancelled
	}
	s.target = n
	s.choices = EligibleWidgets(n)
	s.phase = PhaseChoosing
	s.debug("pick node", "node", n.ID, "widgets", len(s.choices))
	return OutcomeChoosing
}

// Choices returns the node hit and its eligible widgets while choosing.
func (s *Session) Choices() (*Node, []Widget) {
	if s == nil || s.phase != PhaseChoosing {
		return nil, nil
	}
	return s.target, s.choices
}

// Choose completes the pick with the named widget and closes the session.
func (s *Session) Choose(name string) (Reference, error) {
	if s == nil || s.phase != PhaseChoosing {
		return Reference{}, ErrNotActive
	}
	for _, w := range s.choices {
		if w.Name == name {
			ref := Reference{NodeID: s.target.ID, Widget: w.Name}
			s.Close()
			return ref, nil
		}
	}
	return Reference{}, ErrUnknownWidget
}

// Escape cancels the session.
func (s *Session) Escape() { s.Close() }

// ClickOutside cancels the session; it is called for clicks that land
// outside the canvas or outside the widget chooser.
func (s *Session) ClickOutside() { s.Close() }

// Close ends the session and releases everything acquired. It is idempotent.
func (s *Session) Close() {
	if s == nil || s.phase == PhaseClosed {
		return
	}
	s.phase = PhaseClosed
	s.target, s.choices = nil, nil
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

// Blocked returns the screen rectangles of nodes that can not be picked,
// for drawing as dimmed overlays.
func (s *Session) Blocked() []image.Rectangle {
	if s == nil {
		return nil
	}
	return BlockedRects(s.graph, s.view, s.selfID)
}

// BlockedRects returns the screen rectangles of the nodes of g that selfID
// can not pick.
func BlockedRects(g *Graph, v Viewport, selfID int) []image.Rectangle {
	if g == nil {
		return nil
	}
	var out []image.Rectangle
	for i := range g.Nodes {
		if !Selectable(&g.Nodes[i], selfID) {
			out = append(out, v.NodeRect(g.Nodes[i]))
		}
	}
	return out
}

func (s *Session) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
