package images

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ParseHexColor parses #rrggbb.
func ParseHexColor(s string) (color.NRGBA, error) {
	var c color.NRGBA
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("images: bad color %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("images: bad color %q: %w", s, err)
	}
	c.A = 0xff
	return c, nil
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(a * 255))
	return c
}

// fill blends c over r.
func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// stroke draws the outline of r, width pixels thick, centred on the edge.
func stroke(dst draw.Image, r image.Rectangle, width int, c color.Color) {
	in := width / 2
	out := width - in
	fill(dst, image.Rect(r.Min.X-in, r.Min.Y-in, r.Max.X+out, r.Min.Y+out), c)
	fill(dst, image.Rect(r.Min.X-in, r.Max.Y-in, r.Max.X+out, r.Max.Y+out), c)
	fill(dst, image.Rect(r.Min.X-in, r.Min.Y+out, r.Min.X+out, r.Max.Y-in), c)
	fill(dst, image.Rect(r.Max.X-in, r.Min.Y+out, r.Max.X+out, r.Max.Y-in), c)
}

// drawText writes s with its baseline at y, centred on cx.
func drawText(dst draw.Image, s string, cx, y int, c color.Color) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(cx-w/2, y),
	}
	d.DrawString(s)
}

// drawTextLeft writes s with its baseline at (x, y), cut to maxW pixels.
func drawTextLeft(dst draw.Image, s string, x, y, maxW int, c color.Color) {
	face := basicfont.Face7x13
	for s != "" && font.MeasureString(face, s).Ceil() > maxW {
		r := []rune(s)
		s = string(r[:len(r)-1])
	}
	if s == "" {
		return
	}
	d := font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face, Dot: fixed.P(x, y)}
	d.DrawString(s)
}
