package crop

import "math"

// DefaultHandleTolerance is the half-size in screen pixels of a handle's
// hit box.
const DefaultHandleTolerance = 12.0

// FitDisplay returns where the full image is drawn inside area: the largest
// rectangle with the image aspect ratio, centred horizontally and aligned to
// the top of area.
func FitDisplay(imgW, imgH int, area Rect) Rect {
	if imgW <= 0 || imgH <= 0 || area.Empty() {
		return Rect{}
	}
	imgAspect := float64(imgW) / float64(imgH)
	areaAspect := area.W / area.H
	var w, h float64
	if imgAspect > areaAspect {
		w = area.W
		h = area.W / imgAspect
	} else {
		h = area.H
		w = area.H * imgAspect
	}
	return Rect{X: area.X + (area.W-w)/2, Y: area.Y, W: w, H: h}
}

// ImageToScreen maps image pixel coordinates into the display rectangle d.
func (s *State) ImageToScreen(d Rect, px, py float64) Point {
	if s == nil {
		return Point{}
	}
	return Point{
		X: d.X + px*d.W/float64(s.width),
		Y: d.Y + py*d.H/float64(s.height),
	}
}

// ScreenToImage maps a screen point inside d back to the nearest image pixel.
// Halves round up so that both directions of a drag round alike.
func (s *State) ScreenToImage(d Rect, p Point) (int, int) {
	if s == nil || d.Empty() {
		return 0, 0
	}
	x := (p.X - d.X) * float64(s.width) / d.W
	y := (p.Y - d.Y) * float64(s.height) / d.H
	return roundHalfUp(x), roundHalfUp(y)
}

// CropRect returns the visible area in screen space.
func (s *State) CropRect(d Rect) Rect {
	if s == nil {
		return Rect{}
	}
	tl := s.ImageToScreen(d, float64(s.insets.Left), float64(s.insets.Top))
	br := s.ImageToScreen(d, float64(s.width-s.insets.Right), float64(s.height-s.insets.Bottom))
	return Rect{X: tl.X, Y: tl.Y, W: br.X - tl.X, H: br.Y - tl.Y}
}

// HandlePoints returns the centre of every handle of r, in hit-test order.
func HandlePoints(r Rect) [8]Point {
	var pts [8]Point
	for i, h := range handleOrder {
		pts[i] = handlePoint(r, h)
	}
	return pts
}

func handlePoint(r Rect, h Handle) Point {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	switch h {
	case HandleNW:
		return Point{r.X, r.Y}
	case HandleN:
		return Point{cx, r.Y}
	case HandleNE:
		return Point{r.X + r.W, r.Y}
	case HandleE:
		return Point{r.X + r.W, cy}
	case HandleSE:
		return Point{r.X + r.W, r.Y + r.H}
	case HandleS:
		return Point{cx, r.Y + r.H}
	case HandleSW:
		return Point{r.X, r.Y + r.H}
	case HandleW:
		return Point{r.X, cy}
	}
	return Point{cx, cy}
}

// HandleAt returns the first handle of r, in the order nw, n, ne, e, se, s,
// sw, w, whose hit box of half-size tol contains p.
func HandleAt(r Rect, p Point, tol float64) Handle {
	if tol <= 0 {
		tol = DefaultHandleTolerance
	}
	for _, h := range handleOrder {
		c := handlePoint(r, h)
		if math.Abs(p.X-c.X) <= tol && math.Abs(p.Y-c.Y) <= tol {
			return h
		}
	}
	return HandleNone
}

func roundHalfUp(v float64) int { return int(math.Floor(v + 0.5)) }
