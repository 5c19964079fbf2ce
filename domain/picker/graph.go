package picker

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Widget is a named input on a graph node.
type Widget struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Label is the text a chooser shows for w: "name (type)", or just the name
// when the type is unknown.
func (w Widget) Label() string {
	if w.Type == "" {
		return w.Name
	}
	return w.Name + " (" + w.Type + ")"
}

// Node is a box on the graph canvas in graph coordinates.
type Node struct {
	ID      int        `json:"id"`
	Type    string     `json:"type"`
	Title   string     `json:"title,omitempty"`
	Pos     [2]float64 `json:"pos"`
	Size    [2]float64 `json:"size"`
	Widgets []Widget   `json:"widgets,omitempty"`
}

// Label returns the title, falling back to the node type.
func (n Node) Label() string {
	if n.Title != "" {
		return n.Title
	}
	return n.Type
}

// Contains reports whether the graph point (x, y) lies on the node, edges
// included.
func (n Node) Contains(x, y float64) bool {
	return x >= n.Pos[0] && x <= n.Pos[0]+n.Size[0] &&
		y >= n.Pos[1] && y <= n.Pos[1]+n.Size[1]
}

// Graph is an ordered node list; later nodes are drawn on top.
type Graph struct {
	Nodes []Node `json:"nodes"`
}

// LoadGraph decodes a graph document.
func LoadGraph(r io.Reader) (*Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("picker: decode graph: %w", err)
	}
	return &g, nil
}

// NodeAt returns the topmost node under the graph point (x, y). Nodes are
// scanned from last to first and the first hit wins.
func (g *Graph) NodeAt(x, y float64) (*Node, bool) {
	if g == nil {
		return nil, false
	}
	for i := len(g.Nodes) - 1; i >= 0; i-- {
		if g.Nodes[i].Contains(x, y) {
			return &g.Nodes[i], true
		}
	}
	return nil, false
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) (*Node, bool) {
	if g == nil {
		return nil, false
	}
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i], true
		}
	}
	return nil, false
}

// header glyphs mark collapsible section rows, not real inputs.
var headerPrefixes = []string{"▶", "▼"}

// Eligible reports whether w can be referenced: buttons, unnamed widgets and
// section headers are excluded.
func Eligible(w Widget) bool {
	if w.Type == "button" || w.Name == "" {
		return false
	}
	for _, p := range headerPrefixes {
		if strings.HasPrefix(w.Name, p) {
			return false
		}
	}
	return true
}

// EligibleWidgets returns the widgets of n that can be referenced, in order.
func EligibleWidgets(n *Node) []Widget {
	if n == nil {
		return nil
	}
	var out []Widget
	for _, w := range n.Widgets {
		if Eligible(w) {
			out = append(out, w)
		}
	}
	return out
}

// Selectable reports whether n can be picked by the node selfID.
func Selectable(n *Node, selfID int) bool {
	return n != nil && n.ID != selfID && len(EligibleWidgets(n)) > 0
}
