package view

import (
	"image"

	"github.com/soocke/insetcrop/domain/crop"
	"github.com/soocke/insetcrop/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerInput receives pointer events from the crop canvas in canvas pixel
// coordinates.
type PointerInput struct {
	Down func(p crop.Point)
	Move func(p crop.Point, held bool)
	Up   func(p crop.Point)
}

// CropCanvas shows the rendered crop preview and the cropped result
// thumbnail. It owns two LabelWidgets and replaces their photos on update.
type CropCanvas interface {
	ShowPreview(img image.Image)
	ShowResult(img image.Image)
	SetCursor(c crop.Cursor)
}

type cropCanvas struct {
	preview     *LabelWidget
	result      *LabelWidget
	prevPreview *Img
	prevResult  *Img
}

// NewCropCanvas creates the preview labels at row and binds pointer input.
// Layout: preview spans columns 0-3; the result thumbnail sits at column 4.
func NewCropCanvas(row int, w, h int, in PointerInput) CropCanvas {
	placeholder := images.EncodePNG(image.NewRGBA(image.Rect(0, 0, w, h)))
	thumb := images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	c := &cropCanvas{prevPreview: NewPhoto(Data(placeholder)), prevResult: NewPhoto(Data(thumb))}
	c.preview = Label(Image(c.prevPreview), Borderwidth(0))
	c.result = Label(Image(c.prevResult), Borderwidth(1), Relief("sunken"))
	Grid(c.preview, Row(row), Column(0), Columnspan(4), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	Grid(c.result, Row(row), Column(4), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	c.bind(in)
	return c
}

func (c *cropCanvas) bind(in PointerInput) {
	if in.Down != nil {
		Bind(c.preview, "<ButtonPress-1>", Command(func(e *Event) { in.Down(eventPoint(e)) }))
	}
	if in.Move != nil {
		Bind(c.preview, "<B1-Motion>", Command(func(e *Event) { in.Move(eventPoint(e), true) }))
		Bind(c.preview, "<Motion>", Command(func(e *Event) { in.Move(eventPoint(e), false) }))
	}
	if in.Up != nil {
		Bind(c.preview, "<ButtonRelease-1>", Command(func(e *Event) { in.Up(eventPoint(e)) }))
	}
}

// eventPoint returns the pointer position relative to the event widget.
func eventPoint(e *Event) crop.Point {
	return crop.Pt(float64(e.X), float64(e.Y))
}

func (c *cropCanvas) ShowPreview(img image.Image) {
	if c.preview == nil || img == nil {
		return
	}
	if c.prevPreview != nil {
		c.prevPreview.Delete()
	}
	c.prevPreview = NewPhoto(Data(images.EncodePNG(img)))
	c.preview.Configure(Image(c.prevPreview))
}

// ShowResult shows the cropped thumbnail; nil clears it.
func (c *cropCanvas) ShowResult(img image.Image) {
	if c.result == nil {
		return
	}
	if img == nil {
		img = image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	if c.prevResult != nil {
		c.prevResult.Delete()
	}
	c.prevResult = NewPhoto(Data(images.EncodePNG(img)))
	c.result.Configure(Image(c.prevResult))
}

var cursorNames = map[crop.Cursor]string{
	crop.CursorDefault:  "",
	crop.CursorMove:     "fleur",
	crop.CursorResizeNW: "top_left_corner",
	crop.CursorResizeN:  "top_side",
	crop.CursorResizeNE: "top_right_corner",
	crop.CursorResizeE:  "right_side",
	crop.CursorResizeSE: "bottom_right_corner",
	crop.CursorResizeS:  "bottom_side",
	crop.CursorResizeSW: "bottom_left_corner",
	crop.CursorResizeW:  "left_side",
}

func (c *cropCanvas) SetCursor(cur crop.Cursor) {
	if c.preview == nil {
		return
	}
	c.preview.Configure(Cursor(cursorNames[cur]))
}
