package images

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/soocke/insetcrop/domain/crop"
)

// Layout constants of the preview canvas. The image is fitted inside the
// preview area; the info band sits below the fitted image.
const (
	PreviewPadding = 10
	InfoGap        = 10
	InfoHeight     = 25
	HandleSize     = 8
)

// Placeholder is shown while no image is loaded.
const Placeholder = "[ Set an image path for interactive preview ]"

// OverlayOptions control how the crop preview is drawn.
type OverlayOptions struct {
	Width      int // canvas width
	AreaHeight int // height of the image area, excluding the info band
	BoxColor   color.NRGBA
	ShowGrid   bool
}

// DefaultOverlayOptions returns options for a canvas w wide with an image
// area h high.
func DefaultOverlayOptions(w, h int) OverlayOptions {
	c, _ := ParseHexColor("#4a9eff")
	return OverlayOptions{Width: w, AreaHeight: h, BoxColor: c, ShowGrid: true}
}

// Area returns the screen rectangle the image is fitted into.
func (o OverlayOptions) Area() crop.Rect {
	return crop.Rect{
		X: PreviewPadding,
		Y: PreviewPadding,
		W: float64(o.Width - 2*PreviewPadding),
		H: float64(o.AreaHeight),
	}
}

// Size returns the full canvas size including the info band.
func (o OverlayOptions) Size() (int, int) {
	return o.Width, PreviewPadding + o.AreaHeight + InfoGap + InfoHeight + PreviewPadding
}

var (
	canvasBg   = color.NRGBA{0x22, 0x22, 0x22, 0xff}
	shade      = color.NRGBA{0, 0, 0, 0x80}
	infoBg     = color.NRGBA{0, 0, 0, 0xb3}
	textColor  = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	mutedColor = color.NRGBA{0x88, 0x88, 0x88, 0xff}
)

// InfoText is the summary line under the preview.
func InfoText(st *crop.State) string {
	w, h := st.Size()
	vw, vh := st.VisibleSize()
	return fmt.Sprintf("Original: %dx%d -> Cropped: %dx%d", w, h, vw, vh)
}

// RenderPlaceholder draws the empty canvas with msg centred in the area.
func RenderPlaceholder(msg string, opt OverlayOptions) *image.RGBA {
	w, h := opt.Size()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(canvasBg), image.Point{}, draw.Src)
	if msg == "" {
		msg = Placeholder
	}
	drawText(dst, msg, w/2, PreviewPadding+20, mutedColor)
	return dst
}

// RenderBase draws src scaled into the display rectangle d of an empty
// canvas. The result only changes with the image, so callers keep it and
// pass it to RenderCropOverlay on every redraw.
func RenderBase(src image.Image, d crop.Rect, opt OverlayOptions) *image.RGBA {
	if src == nil || d.Empty() {
		return nil
	}
	w, h := opt.Size()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(canvasBg), image.Point{}, draw.Src)
	DrawScaled(dst, toRect(d), src)
	return dst
}

// RenderCropOverlay draws the crop box of st over a copy of base, a canvas
// from RenderBase: the outside is shaded, the box outlined, optional
// rule-of-thirds lines, the eight handles and the info band. base is not
// modified.
func RenderCropOverlay(base *image.RGBA, st *crop.State, d crop.Rect, opt OverlayOptions) *image.RGBA {
	if base == nil || st == nil || d.Empty() {
		return RenderPlaceholder("", opt)
	}
	w := base.Rect.Dx()
	dst := image.NewRGBA(base.Rect)
	copy(dst.Pix, base.Pix)

	disp := toRect(d)
	box := toRect(st.CropRect(d))
	fill(dst, image.Rect(disp.Min.X, disp.Min.Y, disp.Max.X, box.Min.Y), shade)
	fill(dst, image.Rect(disp.Min.X, box.Max.Y, disp.Max.X, disp.Max.Y), shade)
	fill(dst, image.Rect(disp.Min.X, box.Min.Y, box.Min.X, box.Max.Y), shade)
	fill(dst, image.Rect(box.Max.X, box.Min.Y, disp.Max.X, box.Max.Y), shade)

	stroke(dst, box, 2, opt.BoxColor)

	if opt.ShowGrid {
		grid := withAlpha(opt.BoxColor, 0.3)
		for i := 1; i <= 2; i++ {
			x := box.Min.X + box.Dx()*i/3
			y := box.Min.Y + box.Dy()*i/3
			fill(dst, image.Rect(x, box.Min.Y, x+1, box.Max.Y), grid)
			fill(dst, image.Rect(box.Min.X, y, box.Max.X, y+1), grid)
		}
	}

	for _, p := range crop.HandlePoints(st.CropRect(d)) {
		x, y := int(math.Round(p.X)), int(math.Round(p.Y))
		r := image.Rect(x-HandleSize/2, y-HandleSize/2, x+HandleSize/2, y+HandleSize/2)
		fill(dst, r, opt.BoxColor)
		stroke(dst, r, 2, textColor)
	}

	infoY := disp.Max.Y + InfoGap
	fill(dst, image.Rect(PreviewPadding, infoY, w-PreviewPadding, infoY+InfoHeight), infoBg)
	drawText(dst, InfoText(st), w/2, infoY+17, textColor)
	return dst
}

func toRect(r crop.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)), int(math.Round(r.Y+r.H)),
	)
}
