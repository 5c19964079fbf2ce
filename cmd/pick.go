package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/soocke/insetcrop/assets"
	"github.com/soocke/insetcrop/domain/picker"
	"github.com/spf13/cobra"
)

// errNoPick is returned when the click resolves to nothing pickable.
var errNoPick = errors.New("nothing to pick")

type pickOptions struct {
	graph  string
	x, y   float64
	view   picker.Viewport
	self   int
	widget string
}

func pickCmd() *cobra.Command {
	o := pickOptions{}
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Resolve a click on the graph canvas to widget references",
		Long: "Resolve a click at screen position (x, y) on a graph canvas shown with the\n" +
			"given scale and pan offsets, and list the references it can produce.",
		Example: "  insetcrop pick --x 420 --y 130\n" +
			"  insetcrop pick --graph workflow.json --x 812 --y 96 --scale 0.8 --offset-x -120 --self 7 --widget seed",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd.OutOrStdout(), o)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.graph, "graph", "g", "", "Graph document (default: built-in demo graph)")
	f.Float64Var(&o.x, "x", 0, "Click x in canvas pixels")
	f.Float64Var(&o.y, "y", 0, "Click y in canvas pixels")
	f.Float64Var(&o.view.Scale, "scale", 1, "Canvas zoom")
	f.Float64Var(&o.view.OffsetX, "offset-x", 0, "Canvas pan x in graph units")
	f.Float64Var(&o.view.OffsetY, "offset-y", 0, "Canvas pan y in graph units")
	f.IntVar(&o.self, "self", 0, "Id of the picking node (default: the demo crop node)")
	f.StringVarP(&o.widget, "widget", "w", "", "Widget to choose; prints only its reference")
	return cmd
}

func runPick(w io.Writer, o pickOptions) error {
	g, self, err := pickGraph(o)
	if err != nil {
		return err
	}
	// The click is replayed through a session armed in the past so the
	// result matches the interactive picker, including its exit paths.
	now := time.Now()
	s := picker.Begin(g, o.view, self, now.Add(-picker.ArmDelay), nil)
	gx, gy := o.view.ScreenToGraph(o.x, o.y)
	if s.Click(o.x, o.y, picker.ButtonPrimary, now) != picker.OutcomeChoosing {
		Warn.Fprintf(w, "no pickable node at (%.0f, %.0f) -> graph (%.1f, %.1f)\n", o.x, o.y, gx, gy)
		return errNoPick
	}
	node, widgets := s.Choices()
	if o.widget != "" {
		ref, err := s.Choose(o.widget)
		if err != nil {
			return fmt.Errorf("%s on node %d: %w", o.widget, node.ID, err)
		}
		fmt.Fprintln(w, ref.String())
		return nil
	}
	defer s.Close()
	Brand.Fprintf(w, "#%d %s\n", node.ID, node.Label())
	for _, wd := range widgets {
		ref := picker.Reference{NodeID: node.ID, Widget: wd.Name}
		fmt.Fprintf(w, "  %-24s %s\n", ref.String(), Subtle.Sprint(wd.Type))
	}
	return nil
}

func pickGraph(o pickOptions) (*picker.Graph, int, error) {
	if o.graph == "" {
		g, err := assets.DemoGraph()
		if err != nil {
			return nil, 0, err
		}
		self := o.self
		if self == 0 {
			self = assets.DemoSelfNode
		}
		return g, self, nil
	}
	f, err := os.Open(o.graph)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	g, err := picker.LoadGraph(f)
	if err != nil {
		return nil, 0, err
	}
	return g, o.self, nil
}
