package assets

import (
	"testing"

	"github.com/soocke/insetcrop/domain/picker"
)

func TestDemoGraph(t *testing.T) {
	g, err := DemoGraph()
	if err != nil {
		t.Fatalf("DemoGraph: %v", err)
	}
	self, ok := g.Node(DemoSelfNode)
	if !ok {
		t.Fatalf("self node %d missing", DemoSelfNode)
	}
	if picker.Selectable(self, DemoSelfNode) {
		t.Fatalf("self node selectable")
	}
	n, _ := g.Node(4)
	if picker.Selectable(n, DemoSelfNode) {
		t.Fatalf("header/button-only node selectable")
	}
}
