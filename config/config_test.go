package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soocke/insetcrop/domain/crop"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestValidate_Normalises(t *testing.T) {
	cfg := &Config{
		ServerURL:       " http://127.0.0.1:8188/ ",
		DebounceMS:      -5,
		Insets:          crop.Insets{Left: -3, Right: 4},
		BoxColor:        "blue",
		HandleTolerance: -1,
		PreviewWidth:    10,
	}
	_ = cfg.Validate()
	if cfg.ServerURL != "http://127.0.0.1:8188" {
		t.Fatalf("server url = %q", cfg.ServerURL)
	}
	if cfg.DebounceMS != 100 || cfg.HTTPTimeoutMS != 10000 {
		t.Fatalf("timings = %d %d", cfg.DebounceMS, cfg.HTTPTimeoutMS)
	}
	if cfg.Insets != (crop.Insets{Right: 4}) {
		t.Fatalf("insets = %+v", cfg.Insets)
	}
	if cfg.BoxColor != "#4a9eff" || cfg.HandleTolerance != crop.DefaultHandleTolerance {
		t.Fatalf("preview = %q %v", cfg.BoxColor, cfg.HandleTolerance)
	}
	if cfg.PreviewWidth != 640 || cfg.PreviewHeight != 280 {
		t.Fatalf("preview size = %dx%d", cfg.PreviewWidth, cfg.PreviewHeight)
	}
}

func TestSaveLoad_JSONAndTOML(t *testing.T) {
	for _, name := range []string{"cfg.json", "cfg.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cfg := DefaultConfig()
			cfg.ImagePath = "/data/in.png"
			cfg.Insets = crop.Insets{Left: 1, Right: 2, Top: 3, Bottom: 4}
			cfg.ShowGrid = false
			if err := cfg.Save(path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if *got != *cfg {
				t.Fatalf("round trip = %+v, want %+v", got, cfg)
			}
		})
	}
}

func TestLoad_TOMLDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insetcrop.toml")
	doc := "server_url = \"http://localhost:8188\"\ndebounce_ms = 250\n\n[insets]\nleft = 12\nbottom = 7\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "http://localhost:8188" || cfg.DebounceMS != 250 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Insets != (crop.Insets{Left: 12, Bottom: 7}) || cfg.BoxColor != "#4a9eff" {
		t.Fatalf("insets/color = %+v %q", cfg.Insets, cfg.BoxColor)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if cfg == nil || cfg.PreviewHeight != 280 {
		t.Fatalf("defaults not returned: %+v", cfg)
	}
}
