package picker

import (
	"errors"
	"image"
	"strings"
	"testing"
	"time"
)

func testGraph() *Graph {
	return &Graph{Nodes: []Node{
		{ID: 1, Type: "KSampler", Pos: [2]float64{0, 0}, Size: [2]float64{200, 100},
			Widgets: []Widget{{Name: "seed", Type: "number"}, {Name: "Run", Type: "button"}}},
		{ID: 2, Type: "Overlap", Pos: [2]float64{150, 50}, Size: [2]float64{100, 100},
			Widgets: []Widget{{Name: "▼ Section", Type: "text"}, {Name: "steps", Type: "number"}, {Name: "cfg", Type: "number"}}},
		{ID: 3, Type: "ButtonsOnly", Pos: [2]float64{400, 0}, Size: [2]float64{100, 50},
			Widgets: []Widget{{Name: "Go", Type: "button"}, {Name: "▶ More", Type: "text"}, {Name: "", Type: "text"}}},
		{ID: 9, Type: "FileNaming", Pos: [2]float64{0, 300}, Size: [2]float64{100, 100},
			Widgets: []Widget{{Name: "prefix", Type: "text"}}},
	}}
}

func TestNodeAt_TopmostWins(t *testing.T) {
	g := testGraph()
	n, ok := g.NodeAt(175, 75)
	if !ok || n.ID != 2 {
		t.Fatalf("overlap hit = %+v %v, want node 2", n, ok)
	}
	n, ok = g.NodeAt(10, 10)
	if !ok || n.ID != 1 {
		t.Fatalf("hit = %+v %v, want node 1", n, ok)
	}
	if _, ok := g.NodeAt(200, 100); !ok {
		t.Fatalf("edge point should hit")
	}
	if _, ok := g.NodeAt(350, 250); ok {
		t.Fatalf("empty area should not hit")
	}
}

func TestEligibleWidgets_SkipsButtonsAndHeaders(t *testing.T) {
	g := testGraph()
	ws := EligibleWidgets(&g.Nodes[1])
	if len(ws) != 2 || ws[0].Name != "steps" || ws[1].Name != "cfg" {
		t.Fatalf("eligible = %+v", ws)
	}
	if Selectable(&g.Nodes[2], 9) {
		t.Fatalf("node without eligible widgets selectable")
	}
	if Selectable(&g.Nodes[3], 9) {
		t.Fatalf("self node selectable")
	}
}

func TestViewport_RoundTrip(t *testing.T) {
	v := Viewport{Scale: 0.5, OffsetX: 100, OffsetY: -40, Origin: image.Pt(20, 30)}
	gx, gy := v.ScreenToGraph(120, 130)
	if gx != 100 || gy != 240 {
		t.Fatalf("ScreenToGraph = %v,%v", gx, gy)
	}
	sx, sy := v.GraphToScreen(gx, gy)
	if sx != 120 || sy != 130 {
		t.Fatalf("GraphToScreen = %v,%v", sx, sy)
	}
}

func TestFit_ShowsAllNodes(t *testing.T) {
	g := testGraph()
	v := Fit(g, 520, 420, 10)
	for _, n := range g.Nodes {
		r := v.NodeRect(n)
		if r.Min.X < 9 || r.Min.Y < 9 || r.Max.X > 511 || r.Max.Y > 411 {
			t.Fatalf("node %d rect %v outside area", n.ID, r)
		}
	}
}

func TestReference_FormatAndParse(t *testing.T) {
	ref := Reference{NodeID: 12, Widget: "lora:strength"}
	if ref.String() != "#12:lora:strength" {
		t.Fatalf("String = %q", ref.String())
	}
	got, err := ParseReference("  #12:lora:strength ")
	if err != nil || got != ref {
		t.Fatalf("ParseReference = %+v, %v", got, err)
	}
	for _, bad := range []string{"12:seed", "#x:seed", "#3:", "#3", "plain text"} {
		if _, err := ParseReference(bad); !errors.Is(err, ErrBadReference) {
			t.Fatalf("ParseReference(%q) err = %v", bad, err)
		}
	}
	if !IsReference("#1:seed") || IsReference("seed") {
		t.Fatalf("IsReference mismatch")
	}
}

func TestLoadGraph(t *testing.T) {
	doc := `{"nodes":[{"id":4,"type":"CLIPTextEncode","pos":[10,20],"size":[300,120],"widgets":[{"name":"text","type":"customtext"}]}]}`
	g, err := LoadGraph(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadGraph: %v", err)
	}
	if len(g.Nodes) != 1 || g.Nodes[0].Label() != "CLIPTextEncode" || g.Nodes[0].Size[0] != 300 {
		t.Fatalf("graph = %+v", g)
	}
	if _, err := LoadGraph(strings.NewReader("{")); err == nil {
		t.Fatalf("expected decode error")
	}
}

// session helpers

type releaseLog struct{ calls []string }

func (r *releaseLog) add(name string) func() {
	return func() { r.calls = append(r.calls, name) }
}

func beginTest(t *testing.T) (*Session, *releaseLog, time.Time) {
	t.Helper()
	start := time.Unix(100, 0)
	s := Begin(testGraph(), Viewport{Scale: 1}, 9, start, nil)
	log := &releaseLog{}
	s.Acquire(log.add("overlay"))
	s.Acquire(log.add("banner"))
	return s, log, start.Add(time.Second)
}

func assertReleased(t *testing.T, s *Session, log *releaseLog) {
	t.Helper()
	if s.Active() {
		t.Fatalf("session still active")
	}
	if len(log.calls) != 2 || log.calls[0] != "banner" || log.calls[1] != "overlay" {
		t.Fatalf("teardown calls = %v", log.calls)
	}
}

func TestSession_PickFlow(t *testing.T) {
	s, log, now := beginTest(t)
	if out := s.Click(175, 75, ButtonPrimary, now); out != OutcomeChoosing {
		t.Fatalf("click outcome = %v", out)
	}
	node, ws := s.Choices()
	if node.ID != 2 || len(ws) != 2 {
		t.Fatalf("choices = %+v %+v", node, ws)
	}
	if _, err := s.Choose("▼ Section"); !errors.Is(err, ErrUnknownWidget) {
		t.Fatalf("header chosen: %v", err)
	}
	ref, err := s.Choose("cfg")
	if err != nil || ref.String() != "#2:cfg" {
		t.Fatalf("Choose = %v, %v", ref, err)
	}
	assertReleased(t, s, log)
	if _, err := s.Choose("cfg"); !errors.Is(err, ErrNotActive) {
		t.Fatalf("choose after close: %v", err)
	}
}

func TestSession_CancelPaths(t *testing.T) {
	cases := map[string]func(s *Session, now time.Time){
		"escape":        func(s *Session, _ time.Time) { s.Escape() },
		"outside":       func(s *Session, _ time.Time) { s.ClickOutside() },
		"empty":         func(s *Session, now time.Time) { s.Click(350, 250, ButtonPrimary, now) },
		"self":          func(s *Session, now time.Time) { s.Click(50, 350, ButtonPrimary, now) },
		"no widgets":    func(s *Session, now time.Time) { s.Click(450, 25, ButtonPrimary, now) },
		"chooser close": func(s *Session, now time.Time) { s.Click(10, 10, ButtonPrimary, now); s.Close() },
	}
	for name, exit := range cases {
		t.Run(name, func(t *testing.T) {
			s, log, now := beginTest(t)
			exit(s, now)
			assertReleased(t, s, log)
			s.Close()
			if len(log.calls) != 2 {
				t.Fatalf("teardown ran again: %v", log.calls)
			}
		})
	}
}

func TestSession_IgnoresEarlyAndSecondaryClicks(t *testing.T) {
	start := time.Unix(100, 0)
	s := Begin(testGraph(), Viewport{Scale: 1}, 9, start, nil)
	if out := s.Click(10, 10, ButtonPrimary, start.Add(50*time.Millisecond)); out != OutcomeIgnored {
		t.Fatalf("early click outcome = %v", out)
	}
	if out := s.Click(10, 10, 3, start.Add(time.Second)); out != OutcomeIgnored {
		t.Fatalf("secondary click outcome = %v", out)
	}
	if s.Phase() != PhaseCapturing {
		t.Fatalf("phase = %v", s.Phase())
	}
}

func TestSession_AcquireAfterCloseRunsImmediately(t *testing.T) {
	s := Begin(testGraph(), Viewport{}, 0, time.Now(), nil)
	s.Close()
	ran := false
	s.Acquire(func() { ran = true })
	if !ran {
		t.Fatalf("late acquire not released")
	}
}

func TestWidget_Label(t *testing.T) {
	if got := (Widget{Name: "seed", Type: "number"}).Label(); got != "seed (number)" {
		t.Fatalf("typed label = %q", got)
	}
	if got := (Widget{Name: "seed"}).Label(); got != "seed" {
		t.Fatalf("untyped label = %q", got)
	}
}

func TestSession_ViewportAndBlocked(t *testing.T) {
	v := Viewport{Scale: 1}
	s := Begin(testGraph(), v, 9, time.Now(), nil)
	if s.Viewport() != v {
		t.Fatalf("viewport = %+v", s.Viewport())
	}
	if got := s.Blocked(); len(got) != 2 || got[0] != image.Rect(400, 0, 500, 50) {
		t.Fatalf("blocked = %v", got)
	}
	var nilSession *Session
	if nilSession.Blocked() != nil || nilSession.Viewport() != (Viewport{}) {
		t.Fatalf("nil session returned values")
	}
}

func TestBlockedRects(t *testing.T) {
	rects := BlockedRects(testGraph(), Viewport{Scale: 1}, 9)
	if len(rects) != 2 {
		t.Fatalf("blocked = %v", rects)
	}
	if rects[0] != image.Rect(400, 0, 500, 50) || rects[1] != image.Rect(0, 300, 100, 400) {
		t.Fatalf("blocked rects = %v", rects)
	}
}
