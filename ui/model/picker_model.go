package model

import (
	"github.com/soocke/insetcrop/domain/picker"
)

// PickerModel holds the graph the picker works on, the node the picker
// belongs to and the last reference picked.
type PickerModel struct {
	graph     *picker.Graph
	selfID    int
	reference string
}

// NewPickerModel returns a model for graph with the picker owned by selfID.
func NewPickerModel(graph *picker.Graph, selfID int) *PickerModel {
	return &PickerModel{graph: graph, selfID: selfID}
}

func (m *PickerModel) Graph() *picker.Graph {
	if m == nil {
		return nil
	}
	return m.graph
}

func (m *PickerModel) SetGraph(g *picker.Graph) {
	if m != nil {
		m.graph = g
	}
}

func (m *PickerModel) SelfID() int {
	if m == nil {
		return 0
	}
	return m.selfID
}

// Reference returns the current reference text, which may be typed by hand
// and is not necessarily well formed.
func (m *PickerModel) Reference() string {
	if m == nil {
		return ""
	}
	return m.reference
}

// SetReference stores the reference text and reports whether it changed.
func (m *PickerModel) SetReference(s string) bool {
	if m == nil || m.reference == s {
		return false
	}
	m.reference = s
	return true
}
