package picker

import (
	"image"
	"math"
)

// Viewport is the pan/zoom transform of the graph canvas. Origin is the
// canvas position on screen; Offset is the pan in graph units.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
	Origin  image.Point
}

func (v Viewport) scale() float64 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}

// ScreenToGraph converts a screen position into graph coordinates.
func (v Viewport) ScreenToGraph(sx, sy float64) (float64, float64) {
	s := v.scale()
	return (sx-float64(v.Origin.X))/s - v.OffsetX, (sy-float64(v.Origin.Y))/s - v.OffsetY
}

// GraphToScreen converts graph coordinates into a screen position.
func (v Viewport) GraphToScreen(gx, gy float64) (float64, float64) {
	s := v.scale()
	return float64(v.Origin.X) + (gx+v.OffsetX)*s, float64(v.Origin.Y) + (gy+v.OffsetY)*s
}

// NodeRect returns the screen rectangle of n, rounded outward.
func (v Viewport) NodeRect(n Node) image.Rectangle {
	x0, y0 := v.GraphToScreen(n.Pos[0], n.Pos[1])
	x1, y1 := v.GraphToScreen(n.Pos[0]+n.Size[0], n.Pos[1]+n.Size[1])
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}

// Fit returns a viewport that shows every node of g inside a screen area of
// w x h pixels with margin pixels of padding.
func Fit(g *Graph, w, h, margin int) Viewport {
	v := Viewport{Scale: 1}
	if g == nil || len(g.Nodes) == 0 || w <= 2*margin || h <= 2*margin {
		return v
	}
	minX, minY := g.Nodes[0].Pos[0], g.Nodes[0].Pos[1]
	maxX, maxY := minX+g.Nodes[0].Size[0], minY+g.Nodes[0].Size[1]
	for _, n := range g.Nodes[1:] {
		minX = min(minX, n.Pos[0])
		minY = min(minY, n.Pos[1])
		maxX = max(maxX, n.Pos[0]+n.Size[0])
		maxY = max(maxY, n.Pos[1]+n.Size[1])
	}
	gw, gh := maxX-minX, maxY-minY
	if gw <= 0 || gh <= 0 {
		return v
	}
	v.Scale = min(float64(w-2*margin)/gw, float64(h-2*margin)/gh)
	v.OffsetX = float64(margin)/v.Scale - minX
	v.OffsetY = float64(margin)/v.Scale - minY
	return v
}
