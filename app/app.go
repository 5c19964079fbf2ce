package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/insetcrop/debug"
	"github.com/soocke/insetcrop/domain/crop"
	"github.com/soocke/insetcrop/ui/theme"
	"github.com/soocke/insetcrop/ui/view"
)

const (
	tick          = 50 * time.Millisecond
	debugInterval = 5 * time.Second
)

type app struct {
	title   string
	width   int
	height  int
	c       *AppContainer
	afterID string
	closed  bool
}

// NewApp prepares the main window. Start builds the widgets and blocks in
// the Tk event loop.
func NewApp(title string, width, height int, c *AppContainer) *app {
	a := &app{title: title, width: width, height: height, c: c}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

func (a *app) Start() {
	cfg, logger := a.c.Config, a.c.Logger
	theme.SetDark(cfg.DarkMode)
	a.c.RootView.Build(a.handlers())
	a.c.UI.SetReference(a.c.Picker.Reference())

	if cfg.Debug {
		debug.StartLoadLogger(debugInterval, logger, func() []slog.Attr { return a.c.Loader.Stats().Attrs() })
		debug.StartMemLogger(debugInterval, logger)
	}

	a.c.CropPresenter.RestoreInsets(cfg.Insets)
	if cfg.ImagePath != "" {
		a.c.Loader.Load(cfg.ImagePath, time.Now())
	}

	a.c.Loop.Schedule = a.scheduleUpdate
	a.scheduleUpdate()
	logger.Info("editor started", "config", a.c.ConfigPath, "server", cfg.ServerURL)

	App.Wait()
}

func (a *app) handlers() view.RootHandlers {
	c := a.c
	return view.RootHandlers{
		PathEdited: func(path string) { c.Loader.Request(path, time.Now()) },
		Load:       func(path string) { c.Loader.Load(path, time.Now()) },
		Pointer: view.PointerInput{
			Down: func(p crop.Point) { c.Pointer.PointerDown(p) },
			Move: func(p crop.Point, held bool) { c.Pointer.PointerMove(p, held) },
			Up:   func(p crop.Point) { c.Pointer.PointerUp(p) },
		},
		Release: c.CropPresenter.Cancel,
		Escape: func() {
			if c.PickerPresenter.Active() {
				c.PickerPresenter.Cancel()
				return
			}
			c.CropPresenter.Cancel()
		},
		ApplyInsets:  c.CropPresenter.EditInsets,
		ApplyOffsets: c.CropPresenter.EditOffsets,
		Pick: func() {
			if err := c.PickerPresenter.Start(); err != nil {
				c.Logger.Warn("picker unavailable", "error", err)
			}
		},
		ReferenceEdited: c.PickerPresenter.EditReference,
		Save:            a.save,
		Exit:            a.exitHandler,
	}
}

// save writes the current image path, insets and reference back to the
// config file.
func (a *app) save() {
	cfg := a.c.Config
	if p := a.c.Loader.Current(); p != "" {
		cfg.ImagePath = p
	}
	cfg.Insets = a.c.CropPresenter.Insets()
	cfg.Reference = a.c.Picker.Reference()
	if a.c.ConfigPath == "" {
		a.c.Logger.Warn("no config path; settings not saved")
		return
	}
	if err := cfg.Save(a.c.ConfigPath); err != nil {
		a.c.Logger.Error("save config", "path", a.c.ConfigPath, "error", err)
		a.c.UI.SetInfo(fmt.Sprintf("Save failed: %v", err))
		return
	}
	a.c.Logger.Info("config saved", slog.String("path", a.c.ConfigPath))
}

func (a *app) exitHandler() {
	if a.closed {
		return
	}
	a.closed = true
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.c.PickerPresenter.Cancel()
	a.c.Loader.Close()
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	if a.closed {
		return
	}
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, a.c.Loop.Tick)
}
