package assets

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/soocke/insetcrop/domain/picker"
)

// DemoGraphJSON contains the graph shown by the picker when no graph file is
// configured.
//
//go:embed demo_graph.json
var DemoGraphJSON []byte

// DemoSelfNode is the id of the crop node in the demo graph.
const DemoSelfNode = 3

// DemoGraph decodes the embedded demo graph.
func DemoGraph() (*picker.Graph, error) {
	if len(DemoGraphJSON) == 0 {
		return nil, fmt.Errorf("embedded demo_graph.json is empty")
	}
	return picker.LoadGraph(bytes.NewReader(DemoGraphJSON))
}
