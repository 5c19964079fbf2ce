package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/insetcrop/domain/crop"
	"github.com/soocke/insetcrop/domain/picker"
	"github.com/soocke/insetcrop/ui/images"
	"github.com/soocke/insetcrop/ui/model"
)

// ErrNoGraph is returned when the picker is opened without a graph.
var ErrNoGraph = errors.New("presenter: no graph to pick from")

// PickerHandlers are the callbacks a picker window reports user input to.
type PickerHandlers struct {
	Click  func(x, y float64, button int)
	Choose func(name string)
	Cancel func()
}

// PickerView is the modal window showing the graph and the widget chooser.
type PickerView interface {
	Open(graph image.Image, h PickerHandlers)
	ShowChoices(title string, widgets []picker.Widget)
	Close()
}

// ReferenceView shows the picked reference.
type ReferenceView interface {
	SetReference(text string)
}

// Picker canvas geometry.
const (
	PickerWidth  = 720
	PickerHeight = 480
	pickerMargin = 16
)

// PickerPresenter runs pick sessions against the model's graph.
type PickerPresenter struct {
	model    *model.PickerModel
	view     PickerView
	refView  ReferenceView
	logger   *slog.Logger
	now      func() time.Time
	session  *picker.Session
	onActive func(active bool)
}

// NewPickerPresenter returns a presenter; now may be nil to use time.Now.
func NewPickerPresenter(m *model.PickerModel, view PickerView, refView ReferenceView, now func() time.Time, logger *slog.Logger) *PickerPresenter {
	if now == nil {
		now = time.Now
	}
	return &PickerPresenter{model: m, view: view, refView: refView, now: now, logger: logger}
}

// Start opens the picker. It does nothing while a session is open.
func (p *PickerPresenter) Start() error {
	if p == nil {
		return nil
	}
	if p.Active() {
		return nil
	}
	g := p.model.Graph()
	if g == nil || len(g.Nodes) == 0 {
		return ErrNoGraph
	}
	self := p.model.SelfID()
	if _, ok := g.Node(self); !ok && p.logger != nil {
		p.logger.Warn("own node is not in the graph", "self", self)
	}
	s := picker.Begin(g, picker.Fit(g, PickerWidth, PickerHeight, pickerMargin), self, p.now(), p.logger)
	p.session = s
	if p.onActive != nil {
		p.onActive(true)
		s.Acquire(func() { p.onActive(false) })
	}
	p.view.Open(images.RenderGraph(g, s.Viewport(), self, s.Blocked(), PickerWidth, PickerHeight), PickerHandlers{
		Click:  p.Click,
		Choose: p.Choose,
		Cancel: p.Cancel,
	})
	s.Acquire(p.view.Close)
	if p.logger != nil {
		p.logger.Debug("picker opened", "nodes", len(g.Nodes), "self", self)
	}
	return nil
}

// OnActiveChanged registers fn to be called when a session opens and when
// it closes.
func (p *PickerPresenter) OnActiveChanged(fn func(active bool)) {
	if p != nil {
		p.onActive = fn
	}
}

// Active reports whether a pick session is open.
func (p *PickerPresenter) Active() bool {
	return p != nil && p.session.Active()
}

// Click handles a click on the graph canvas.
func (p *PickerPresenter) Click(x, y float64, button int) {
	if !p.Active() {
		return
	}
	if p.session.Click(x, y, picker.Button(button), p.now()) != picker.OutcomeChoosing {
		return
	}
	node, widgets := p.session.Choices()
	p.view.ShowChoices(fmt.Sprintf("#%d %s", node.ID, node.Label()), widgets)
}

// Choose completes the pick with the named widget.
func (p *PickerPresenter) Choose(name string) {
	if !p.Active() {
		return
	}
	ref, err := p.session.Choose(name)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("pick rejected", "widget", name, "error", err)
		}
		return
	}
	p.SetReference(ref.String())
	if p.logger != nil {
		p.logger.Info("widget picked", "reference", ref.String())
	}
}

// Cancel closes the session without a pick.
func (p *PickerPresenter) Cancel() {
	if p != nil {
		p.session.Close()
	}
}

// SetReference stores reference text, picked or typed, and shows it.
func (p *PickerPresenter) SetReference(text string) {
	if p == nil || !p.model.SetReference(text) {
		return
	}
	if text != "" && !picker.IsReference(text) && p.logger != nil {
		p.logger.Debug("reference is free text", "text", text)
	}
	if p.refView != nil {
		p.refView.SetReference(text)
	}
}

// EditReference stores text typed into the reference field without
// rewriting the field.
func (p *PickerPresenter) EditReference(text string) {
	if p != nil {
		p.model.SetReference(text)
	}
}

// While the picker is open the editor canvas is inert and a click on it
// counts as a click outside the picker.

func (p *PickerPresenter) PointerDown(crop.Point) bool {
	if !p.Active() {
		return false
	}
	p.session.ClickOutside()
	return true
}

func (p *PickerPresenter) PointerMove(crop.Point, bool) bool { return p.Active() }

func (p *PickerPresenter) PointerUp(crop.Point) bool { return p.Active() }
