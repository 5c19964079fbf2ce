package images

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/soocke/insetcrop/domain/crop"
	"github.com/soocke/insetcrop/domain/picker"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#4a9eff")
	if err != nil || c != (color.NRGBA{0x4a, 0x9e, 0xff, 0xff}) {
		t.Fatalf("ParseHexColor = %v, %v", c, err)
	}
	for _, bad := range []string{"4a9eff", "#4a9e", "#zzzzzz"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("ParseHexColor(%q) accepted", bad)
		}
	}
}

func TestScaleToFit(t *testing.T) {
	src := solid(400, 200, color.White)
	out := ScaleToFit(src, 100, 100)
	if b := out.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("scaled bounds = %v", b)
	}
	small := solid(10, 10, color.White)
	if ScaleToFit(small, 100, 100) != image.Image(small) {
		t.Fatalf("image that fits was copied")
	}
	if ScaleToFit(nil, 10, 10) != nil {
		t.Fatalf("nil source")
	}
}

func TestRenderCropOverlay(t *testing.T) {
	st, _ := crop.NewState(100, 50)
	st.SetInsets(crop.Insets{Left: 50})
	opt := DefaultOverlayOptions(220, 100)
	d := crop.FitDisplay(100, 50, opt.Area())
	if d != (crop.Rect{X: 10, Y: 10, W: 200, H: 100}) {
		t.Fatalf("display rect = %+v", d)
	}
	base := RenderBase(solid(100, 50, color.White), d, opt)
	out := RenderCropOverlay(base, st, d, opt)
	if b := out.Bounds(); b.Dx() != 220 || b.Dy() != 155 {
		t.Fatalf("canvas = %v", b)
	}
	if px := base.RGBAAt(60, 60); px.R != 255 {
		t.Fatalf("base was drawn on: %v", px)
	}
	shaded := out.RGBAAt(60, 60)
	if shaded.R < 120 || shaded.R > 135 {
		t.Fatalf("outside pixel not shaded: %v", shaded)
	}
	if in := out.RGBAAt(150, 40); in.R != 255 || in.G != 255 || in.B != 255 {
		t.Fatalf("inside pixel changed: %v", in)
	}
	if edge := out.RGBAAt(130, 10); edge != (color.RGBA{0x4a, 0x9e, 0xff, 0xff}) {
		t.Fatalf("box edge = %v", edge)
	}
	if InfoText(st) != "Original: 100x50 -> Cropped: 50x50" {
		t.Fatalf("info = %q", InfoText(st))
	}
}

func TestRenderCropOverlay_ReusesBase(t *testing.T) {
	st, _ := crop.NewState(100, 50)
	opt := DefaultOverlayOptions(220, 100)
	d := crop.FitDisplay(100, 50, opt.Area())
	base := RenderBase(solid(100, 50, color.White), d, opt)
	first := RenderCropOverlay(base, st, d, opt)
	st.SetInsets(crop.Insets{Right: 50})
	second := RenderCropOverlay(base, st, d, opt)
	if px := first.RGBAAt(150, 40); px.R != 255 {
		t.Fatalf("first frame shaded the right half: %v", px)
	}
	if px := second.RGBAAt(150, 40); px.R == 255 {
		t.Fatalf("second frame kept the old box: %v", px)
	}
	if px := second.RGBAAt(60, 40); px.R != 255 || px.G != 255 {
		t.Fatalf("second frame shaded the visible half: %v", px)
	}
}

func TestRenderCropOverlay_NoImage(t *testing.T) {
	opt := DefaultOverlayOptions(300, 200)
	if RenderBase(nil, crop.Rect{}, opt) != nil {
		t.Fatalf("base without image")
	}
	out := RenderCropOverlay(nil, nil, crop.Rect{}, opt)
	w, h := opt.Size()
	if b := out.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("placeholder = %v", b)
	}
}

func TestRenderGraph_ShadesBlockedNodes(t *testing.T) {
	g := &picker.Graph{Nodes: []picker.Node{
		{ID: 1, Type: "A", Pos: [2]float64{0, 0}, Size: [2]float64{80, 60}, Widgets: []picker.Widget{{Name: "seed", Type: "number"}}},
		{ID: 2, Type: "B", Pos: [2]float64{100, 100}, Size: [2]float64{80, 60}},
	}}
	v := picker.Viewport{Scale: 1}
	out := RenderGraph(g, v, 9, picker.BlockedRects(g, v, 9), 200, 200)
	open := out.RGBAAt(70, 50)
	if open.R != open.G {
		t.Fatalf("selectable node tinted: %v", open)
	}
	blocked := out.RGBAAt(170, 150)
	if int(blocked.R) < int(blocked.G)+20 {
		t.Fatalf("blocked node not tinted: %v", blocked)
	}
}
