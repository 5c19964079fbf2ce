package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/soocke/insetcrop/assets"
	"github.com/soocke/insetcrop/config"
	"github.com/soocke/insetcrop/domain/crop"
	"github.com/soocke/insetcrop/domain/picker"
	"github.com/soocke/insetcrop/domain/source"
	"github.com/soocke/insetcrop/ui/images"
	"github.com/soocke/insetcrop/ui/model"
	"github.com/soocke/insetcrop/ui/presenter"
	"github.com/soocke/insetcrop/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Crop       *model.CropModel
	Picker     *model.PickerModel
	Engine     *crop.Engine
	Source     source.Source
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	CropPresenter   *presenter.CropPresenter
	PickerPresenter *presenter.PickerPresenter
	Loader          *presenter.Loader
	Pointer         presenter.PointerChain
	Loop            *presenter.Loop
}

// BuildContainer constructs all components. Side-effects limited to reading
// the graph document. Tk widgets are created later by RootView.Build.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) (*AppContainer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	_ = cfg.Validate()
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}

	opt := images.DefaultOverlayOptions(cfg.PreviewWidth, cfg.PreviewHeight)
	if col, err := images.ParseHexColor(cfg.BoxColor); err == nil {
		opt.BoxColor = col
	}
	opt.ShowGrid = cfg.ShowGrid

	c.Crop = model.NewCropModel()
	c.Engine = crop.NewEngine(cfg.HandleTolerance, logger)
	c.Source = source.NewRouter(cfg.ServerURL, &http.Client{Timeout: cfg.HTTPTimeout()}, logger)

	graph, self, err := loadGraph(cfg)
	if err != nil {
		return nil, err
	}
	c.Picker = model.NewPickerModel(graph, self)
	c.Picker.SetReference(cfg.Reference)

	// View
	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView

	// Presenters
	c.CropPresenter = presenter.NewCropPresenter(c.Crop, c.Engine, c.RootView, opt, logger)
	c.Loader = presenter.NewLoader(c.Source, c.CropPresenter, cfg.Debounce(), logger)
	c.PickerPresenter = presenter.NewPickerPresenter(c.Picker, view.NewPickerWindow(logger), c.RootView, nil, logger)
	c.PickerPresenter.OnActiveChanged(func(active bool) { c.RootView.SetEditable(!active) })
	// The picker sits first so an open pick session swallows canvas input.
	c.Pointer = presenter.PointerChain{c.PickerPresenter, c.CropPresenter}
	// Schedule is set by the app once the Tk timer exists.
	c.Loop = presenter.NewLoop(c.Loader, c.CropPresenter, nil, logger)
	return c, nil
}

// loadGraph reads the configured graph document, falling back to the
// embedded demo graph.
func loadGraph(cfg *config.Config) (*picker.Graph, int, error) {
	if cfg.GraphPath == "" {
		g, err := assets.DemoGraph()
		if err != nil {
			return nil, 0, err
		}
		self := cfg.SelfNode
		if self == 0 {
			self = assets.DemoSelfNode
		}
		return g, self, nil
	}
	f, err := os.Open(cfg.GraphPath)
	if err != nil {
		return nil, 0, fmt.Errorf("open graph: %w", err)
	}
	defer f.Close()
	g, err := picker.LoadGraph(f)
	if err != nil {
		return nil, 0, err
	}
	return g, cfg.SelfNode, nil
}
