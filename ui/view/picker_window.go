package view

import (
	"image"
	"log/slog"

	"github.com/soocke/insetcrop/domain/picker"
	"github.com/soocke/insetcrop/ui/images"
	"github.com/soocke/insetcrop/ui/presenter"
	"github.com/soocke/insetcrop/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// PickerWindow is the modal window of the reference picker: the rendered
// graph on top and, once a node is hit, one button per eligible widget.
type PickerWindow interface {
	Open(graph image.Image, h presenter.PickerHandlers)
	ShowChoices(title string, widgets []picker.Widget)
	Close()
}

type pickerWindow struct {
	logger   *slog.Logger
	win      *ToplevelWidget
	photo    *Img
	banner   *TLabelWidget
	choices  *FrameWidget
	buttons  []*ButtonWidget
	handlers presenter.PickerHandlers
}

// NewPickerWindow returns a closed picker window.
func NewPickerWindow(logger *slog.Logger) PickerWindow {
	return &pickerWindow{logger: logger}
}

func (v *pickerWindow) Open(graph image.Image, h presenter.PickerHandlers) {
	if v.win != nil {
		v.Close()
	}
	v.handlers = h
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle("Pick a widget")
	v.win = win
	WmAttributes(win.Window, "-topmost", 1)

	v.banner = win.TLabel(Txt("Click a node to reference one of its widgets [Esc to cancel]"), Anchor("w"), Style(theme.StyleBannerLabel))
	Grid(v.banner, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	v.photo = NewPhoto(Data(images.EncodePNG(graph)))
	canvas := win.Label(Image(v.photo), Borderwidth(0))
	Grid(canvas, Row(1), Column(0), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	Bind(canvas, "<ButtonPress-1>", Command(func(e *Event) { v.click(e, 1) }))
	Bind(canvas, "<ButtonPress-3>", Command(func(e *Event) { v.click(e, 3) }))

	v.choices = win.Frame()
	Grid(v.choices, Row(2), Column(0), Sticky("we"))

	Bind(win, "<Escape>", Command(v.cancel))
	WmProtocol(win.Window, "WM_DELETE_WINDOW", v.cancel)
}

func (v *pickerWindow) click(e *Event, button int) {
	if v.handlers.Click != nil {
		p := eventPoint(e)
		v.handlers.Click(p.X, p.Y, button)
	}
}

func (v *pickerWindow) cancel() {
	if v.handlers.Cancel != nil {
		v.handlers.Cancel()
		return
	}
	v.Close()
}

func (v *pickerWindow) ShowChoices(title string, widgets []picker.Widget) {
	if v.win == nil || v.choices == nil {
		return
	}
	v.clearChoices()
	if v.banner != nil {
		v.banner.Configure(Txt("Select widget from " + title))
	}
	for i, w := range widgets {
		name := w.Name
		btn := v.win.Button(Txt(w.Label()), Command(func() {
			if v.handlers.Choose != nil {
				v.handlers.Choose(name)
			}
		}))
		Grid(btn, In(v.choices), Row(i/3), Column(i%3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		v.buttons = append(v.buttons, btn)
	}
	cancel := v.win.Button(Txt("Cancel"), Command(v.cancel))
	Grid(cancel, In(v.choices), Row(len(widgets)/3+1), Column(0), Columnspan(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	v.buttons = append(v.buttons, cancel)
}

func (v *pickerWindow) clearChoices() {
	for _, b := range v.buttons {
		Destroy(b)
	}
	v.buttons = nil
}

// Close destroys the window. It does not report a cancel; the session that
// opened the window is what calls it.
func (v *pickerWindow) Close() {
	if v.win == nil {
		return
	}
	v.clearChoices()
	if v.photo != nil {
		v.photo.Delete()
		v.photo = nil
	}
	Destroy(v.win)
	v.win, v.banner, v.choices = nil, nil, nil
	v.handlers = presenter.PickerHandlers{}
	if v.logger != nil {
		v.logger.Debug("picker window closed")
	}
}
