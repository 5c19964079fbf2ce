package view

import (
	"image"
	"log/slog"
	"strings"

	"github.com/soocke/insetcrop/config"
	"github.com/soocke/insetcrop/domain/crop"
	"github.com/soocke/insetcrop/ui/images"
	"github.com/soocke/insetcrop/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootHandlers are invoked on user actions in the main window.
type RootHandlers struct {
	PathEdited      func(path string)
	Load            func(path string)
	Pointer         PointerInput
	Release         func() // button release anywhere in the application
	Escape          func()
	ApplyInsets     func(crop.Insets)
	ApplyOffsets    func(h, v int)
	Pick            func()
	ReferenceEdited func(text string)
	Save            func()
	Exit            func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Canvas CropCanvas
	Panel  InsetPanel
	Status StatusBar

	// Widgets
	PathText *TextWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	ShowPreview(img image.Image)
	ShowResult(img image.Image)
	SetCursor(c crop.Cursor)
	SetInsets(in crop.Insets)
	SetMaxOffsets(h, v int)
	SetInfo(text string)
	SetReference(text string)
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(h RootHandlers) {
	if rv == nil {
		return
	}
	// Row 0: image path field with Load, Save and Exit buttons
	pathLbl := Label(Txt("Image"), Anchor("w"))
	Grid(pathLbl, Row(0), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	rv.PathText = Text(Height(1), Width(48))
	Grid(rv.PathText, Row(0), Column(1), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	if rv.cfg != nil && rv.cfg.ImagePath != "" {
		rv.PathText.Insert("1.0", rv.cfg.ImagePath)
	}
	if h.PathEdited != nil {
		Bind(rv.PathText, "<KeyRelease>", Command(func() { h.PathEdited(rv.Path()) }))
	}

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	loadBtn := TButton(Txt("Load"), Style(theme.StylePrimaryButton), Command(func() {
		if h.Load != nil {
			h.Load(rv.Path())
		}
	}))
	Grid(loadBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	saveBtn := Button(Txt("Save"), Command(func() {
		if h.Save != nil {
			h.Save()
		}
	}))
	Grid(saveBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(func() {
		if h.Exit != nil {
			h.Exit()
		}
	}))
	Grid(exitBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: preview and result thumbnail
	w, ht := rv.previewSize()
	rv.Canvas = NewCropCanvas(1, w, ht, h.Pointer)

	// Rows 2-3: summary line and reference field
	rv.Status = NewStatusBar(2, 0, h.Pick, h.ReferenceEdited)

	// Inset panel rows
	rv.Panel = NewInsetPanel(h.ApplyInsets, h.ApplyOffsets, rv.logger)
	rv.Panel.Build(4)

	if h.Release != nil {
		Bind(App, "<ButtonRelease-1>", Command(h.Release))
	}
	if h.Escape != nil {
		Bind(App, "<Escape>", Command(h.Escape))
	}
}

func (rv *RootView) previewSize() (int, int) {
	if rv.cfg == nil {
		return images.DefaultOverlayOptions(640, 280).Size()
	}
	return images.DefaultOverlayOptions(rv.cfg.PreviewWidth, rv.cfg.PreviewHeight).Size()
}

// Path returns the image path field text.
func (rv *RootView) Path() string {
	if rv == nil || rv.PathText == nil {
		return ""
	}
	return trimText(rv.PathText.Get("1.0", END))
}

// ShowPreview proxies to the crop canvas.
func (rv *RootView) ShowPreview(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.ShowPreview(img)
	}
}

// ShowResult proxies to the crop canvas.
func (rv *RootView) ShowResult(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.ShowResult(img)
	}
}

func (rv *RootView) SetCursor(c crop.Cursor) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.SetCursor(c)
	}
}

func (rv *RootView) SetInsets(in crop.Insets) {
	if rv != nil && rv.Panel != nil {
		rv.Panel.SetInsets(in)
	}
}

func (rv *RootView) SetMaxOffsets(h, v int) {
	if rv != nil && rv.Panel != nil {
		rv.Panel.SetMaxOffsets(h, v)
	}
}

func (rv *RootView) SetInfo(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetInfo(text)
	}
}

func (rv *RootView) SetReference(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetReference(text)
	}
}

// SetEditable toggles the inset panel, used while the picker is open.
func (rv *RootView) SetEditable(enabled bool) {
	if rv != nil && rv.Panel != nil {
		rv.Panel.SetEditable(enabled)
	}
}

// trimText joins the lines returned by a Text widget Get and trims them.
func trimText(parts []string) string {
	return strings.TrimSpace(strings.Join(parts, ""))
}
