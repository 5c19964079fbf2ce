package images

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/soocke/insetcrop/domain/picker"
)

const (
	graphTitleHeight = 20
	graphRowHeight   = 16
)

var (
	graphBg      = color.NRGBA{0x20, 0x20, 0x20, 0xff}
	nodeBody     = color.NRGBA{0x35, 0x35, 0x35, 0xff}
	nodeTitle    = color.NRGBA{0x2a, 0x2a, 0x2a, 0xff}
	nodeBorder   = color.NRGBA{0x55, 0x55, 0x55, 0xff}
	selfBorder   = color.NRGBA{0x4a, 0x9e, 0xff, 0xff}
	blockedShade = color.NRGBA{100, 20, 20, 0x80}
)

// RenderGraph draws the nodes of g as seen through v on a w x h canvas.
// The node selfID gets an accent border and the blocked screen rectangles
// are covered with a red shade.
func RenderGraph(g *picker.Graph, v picker.Viewport, selfID int, blocked []image.Rectangle, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(graphBg), image.Point{}, draw.Src)
	if g == nil {
		return dst
	}
	// shift screen coordinates into canvas pixels
	off := v.Origin
	for _, n := range g.Nodes {
		r := v.NodeRect(n).Sub(off)
		fill(dst, r, nodeBody)
		title := image.Rect(r.Min.X, r.Min.Y, r.Max.X, min(r.Min.Y+graphTitleHeight, r.Max.Y))
		fill(dst, title, nodeTitle)
		border := nodeBorder
		if n.ID == selfID {
			border = selfBorder
		}
		stroke(dst, r, 1, border)
		drawTextLeft(dst, n.Label(), r.Min.X+4, r.Min.Y+14, r.Dx()-8, textColor)
		y := r.Min.Y + graphTitleHeight + graphRowHeight - 3
		for _, wd := range n.Widgets {
			if y > r.Max.Y-2 {
				break
			}
			c := mutedColor
			if picker.Eligible(wd) {
				c = textColor
			}
			drawTextLeft(dst, wd.Name, r.Min.X+8, y, r.Dx()-12, c)
			y += graphRowHeight
		}
	}
	for _, r := range blocked {
		fill(dst, r.Sub(off), blockedShade)
	}
	return dst
}
