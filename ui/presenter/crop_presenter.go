package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"

	"github.com/soocke/insetcrop/domain/crop"
	"github.com/soocke/insetcrop/ui/images"
	"github.com/soocke/insetcrop/ui/model"
)

// CropView is the UI surface updated by the crop presenter.
type CropView interface {
	ShowPreview(img image.Image)
	ShowResult(img image.Image)
	SetCursor(c crop.Cursor)
	SetInsets(in crop.Insets)
	SetMaxOffsets(h, v int)
	SetInfo(text string)
}

// Cropped result thumbnail bounds.
const (
	resultMaxW = 200
	resultMaxH = 150
)

// LoadingInfo is the info line while an image load is pending.
const LoadingInfo = "Loading…"

// CropPresenter turns pointer and panel input into crop state changes and
// keeps the preview in sync. All methods run on the UI thread.
type CropPresenter struct {
	model  *model.CropModel
	engine *crop.Engine
	view   CropView
	opt    images.OverlayOptions
	logger *slog.Logger

	display     crop.Rect
	base        *image.RGBA // fitted image under the overlay
	cursor      crop.Cursor
	dirty       bool
	resultDirty bool
	loading     bool
	restore     *crop.Insets
}

// NewCropPresenter wires the presenter to the model's state changes.
func NewCropPresenter(m *model.CropModel, engine *crop.Engine, view CropView, opt images.OverlayOptions, logger *slog.Logger) *CropPresenter {
	p := &CropPresenter{model: m, engine: engine, view: view, opt: opt, logger: logger, dirty: true}
	m.OnStateChanged(p.stateChanged)
	return p
}

func (p *CropPresenter) stateChanged(st *crop.State) {
	p.engine.SetState(st)
	p.display, p.base = crop.Rect{}, nil
	if st != nil {
		w, h := st.Size()
		p.display = crop.FitDisplay(w, h, p.opt.Area())
		p.base = images.RenderBase(p.model.Image(), p.display, p.opt)
		st.AddListener(p.insetsChanged)
	}
	p.setCursor(crop.CursorDefault)
	p.dirty, p.resultDirty = true, true
}

func (p *CropPresenter) insetsChanged(in crop.Insets) {
	st := p.model.State()
	p.view.SetInsets(in)
	p.view.SetMaxOffsets(st.MaxOffsets())
	p.view.SetInfo(images.InfoText(st))
	p.dirty, p.resultDirty = true, true
}

// Display returns where the image is drawn on the canvas.
func (p *CropPresenter) Display() crop.Rect {
	if p == nil {
		return crop.Rect{}
	}
	return p.display
}

func (p *CropPresenter) PointerDown(pt crop.Point) bool {
	if p == nil {
		return false
	}
	if !p.engine.PointerDown(pt, p.display) {
		return false
	}
	p.setCursor(crop.CursorFor(p.engine.Session().Handle, p.engine.Session().Mode == crop.ModeMoving))
	return true
}

func (p *CropPresenter) PointerMove(pt crop.Point, held bool) bool {
	if p == nil {
		return false
	}
	if p.engine.Session().Active() {
		if p.engine.PointerMove(pt, held, p.display) {
			return true
		}
		// the release was missed; refresh the result thumbnail
		p.dirty = true
	}
	p.setCursor(p.engine.Hover(pt, p.display))
	return false
}

func (p *CropPresenter) PointerUp(crop.Point) bool {
	if p == nil || !p.engine.PointerUp() {
		return false
	}
	p.dirty = true
	return true
}

// Cancel ends a drag in progress. It is bound to Escape and to button
// releases anywhere in the application.
func (p *CropPresenter) Cancel() {
	if p == nil || !p.engine.Session().Active() {
		return
	}
	p.engine.Cancel()
	p.dirty = true
}

// EditInsets applies typed values. Out-of-range values are clamped and the
// panel is refreshed with what was accepted.
func (p *CropPresenter) EditInsets(in crop.Insets) {
	if p == nil {
		return
	}
	st := p.model.State()
	if st == nil {
		p.view.SetInsets(p.model.LastInsets())
		return
	}
	st.SetInsets(in)
	p.view.SetInsets(st.Insets())
}

// EditOffsets slides the crop window to the given offsets keeping its size.
func (p *CropPresenter) EditOffsets(h, v int) {
	if p == nil {
		return
	}
	st := p.model.State()
	if st == nil {
		return
	}
	st.SetHorizontalOffset(h)
	st.SetVerticalOffset(v)
	p.view.SetInsets(st.Insets())
}

// RestoreInsets queues insets to apply once the next image loads.
func (p *CropPresenter) RestoreInsets(in crop.Insets) {
	if p == nil || in.IsZero() {
		return
	}
	p.restore = &in
}

// Insets returns the insets to persist.
func (p *CropPresenter) Insets() crop.Insets {
	if p == nil {
		return crop.Insets{}
	}
	if st := p.model.State(); st != nil {
		return st.Insets()
	}
	return p.model.LastInsets()
}

// ImageLoaded installs a freshly loaded image with zero insets, or with the
// queued restore insets.
func (p *CropPresenter) ImageLoaded(path string, img image.Image) {
	if p == nil {
		return
	}
	st, err := p.model.SetImage(path, img)
	if err != nil {
		p.ImageFailed(path, err)
		return
	}
	if p.logger != nil {
		w, h := st.Size()
		p.logger.Info("image loaded", "path", path, "width", w, "height", h)
	}
	if p.restore != nil {
		st.SetInsets(*p.restore)
		p.restore = nil
	}
	p.view.SetInsets(st.Insets())
	p.view.SetMaxOffsets(st.MaxOffsets())
	p.view.SetInfo(images.InfoText(st))
}

// ImageFailed drops the preview and keeps the last numeric insets.
func (p *CropPresenter) ImageFailed(path string, err error) {
	if p == nil {
		return
	}
	if p.logger != nil {
		p.logger.Warn("image load failed", "path", path, "error", err)
	}
	p.model.Fail(path, err)
	p.view.SetInsets(p.model.LastInsets())
	p.view.SetMaxOffsets(0, 0)
	p.view.SetInfo(p.infoText())
}

// ImageCleared drops the preview after the path was emptied.
func (p *CropPresenter) ImageCleared() {
	if p == nil {
		return
	}
	p.model.Clear()
	p.view.SetMaxOffsets(0, 0)
	p.view.SetInfo("")
}

// SetLoading shows LoadingInfo in the info line while on is true and puts
// the regular text back once it turns false.
func (p *CropPresenter) SetLoading(on bool) {
	if p == nil || on == p.loading {
		return
	}
	p.loading = on
	if on {
		p.view.SetInfo(LoadingInfo)
		return
	}
	p.view.SetInfo(p.infoText())
}

func (p *CropPresenter) infoText() string {
	if st := p.model.State(); st != nil {
		return images.InfoText(st)
	}
	if p.model.Err() != nil {
		return fmt.Sprintf("Failed to load %s", p.model.Path())
	}
	return ""
}

// Tick redraws the preview when something changed since the last call.
func (p *CropPresenter) Tick(time.Time) {
	if p == nil || !p.dirty {
		return
	}
	p.dirty = false
	st, img := p.model.State(), p.model.Image()
	if st == nil || img == nil || p.base == nil {
		p.view.ShowPreview(images.RenderPlaceholder("", p.opt))
		if p.resultDirty {
			p.resultDirty = false
			p.view.ShowResult(nil)
		}
		return
	}
	p.view.ShowPreview(images.RenderCropOverlay(p.base, st, p.display, p.opt))
	if p.resultDirty && !p.engine.Session().Active() {
		p.resultDirty = false
		out := imaging.Crop(img, st.VisibleRect().Add(img.Bounds().Min))
		p.view.ShowResult(images.ScaleToFit(out, resultMaxW, resultMaxH))
	}
}

func (p *CropPresenter) setCursor(c crop.Cursor) {
	if c == p.cursor {
		return
	}
	p.cursor = c
	p.view.SetCursor(c)
}
