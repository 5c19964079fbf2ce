package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/soocke/insetcrop/domain/crop"
)

// Config holds runtime configuration for the editor and the picker.
// Fields may be loaded from a JSON or TOML file and overridden by
// command-line flags.
type Config struct {
	Debug bool `json:"debug" toml:"debug"`

	// Image acquisition
	ServerURL     string `json:"server_url" toml:"server_url"`
	ImagePath     string `json:"image_path" toml:"image_path"`
	HTTPTimeoutMS int    `json:"http_timeout_ms" toml:"http_timeout_ms"`
	DebounceMS    int    `json:"debounce_ms" toml:"debounce_ms"`

	// Insets restored after the image loads.
	Insets crop.Insets `json:"insets" toml:"insets"`

	// Preview
	DarkMode        bool    `json:"dark_mode" toml:"dark_mode"`
	BoxColor        string  `json:"box_color" toml:"box_color"`
	ShowGrid        bool    `json:"show_grid" toml:"show_grid"`
	HandleTolerance float64 `json:"handle_tolerance" toml:"handle_tolerance"`
	PreviewWidth    int     `json:"preview_width" toml:"preview_width"`
	PreviewHeight   int     `json:"preview_height" toml:"preview_height"`

	// Picker graph document; empty uses the embedded demo graph.
	GraphPath string `json:"graph_path" toml:"graph_path"`
	// SelfNode is the node the picker picks on behalf of; it can not pick itself.
	SelfNode  int    `json:"self_node" toml:"self_node"`
	Reference string `json:"reference" toml:"reference"`
}

const (
	defaultBoxColor      = "#4a9eff"
	defaultPreviewWidth  = 640
	defaultPreviewHeight = 280
	defaultDebounceMS    = 100
	defaultHTTPTimeoutMS = 10000
)

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		HTTPTimeoutMS:   defaultHTTPTimeoutMS,
		DebounceMS:      defaultDebounceMS,
		BoxColor:        defaultBoxColor,
		ShowGrid:        true,
		HandleTolerance: crop.DefaultHandleTolerance,
		PreviewWidth:    defaultPreviewWidth,
		PreviewHeight:   defaultPreviewHeight,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	c.ServerURL = strings.TrimRight(strings.TrimSpace(c.ServerURL), "/")
	if c.HTTPTimeoutMS <= 0 {
		c.HTTPTimeoutMS = defaultHTTPTimeoutMS
	}
	if c.DebounceMS < 0 {
		c.DebounceMS = defaultDebounceMS
	}
	c.Insets.Left = max(c.Insets.Left, 0)
	c.Insets.Right = max(c.Insets.Right, 0)
	c.Insets.Top = max(c.Insets.Top, 0)
	c.Insets.Bottom = max(c.Insets.Bottom, 0)
	if !validHexColor(c.BoxColor) {
		c.BoxColor = defaultBoxColor
	}
	if c.HandleTolerance <= 0 {
		c.HandleTolerance = crop.DefaultHandleTolerance
	}
	if c.PreviewWidth < 64 {
		c.PreviewWidth = defaultPreviewWidth
	}
	if c.PreviewHeight < 64 {
		c.PreviewHeight = defaultPreviewHeight
	}
	return nil
}

// HTTPTimeout returns the image fetch timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMS) * time.Millisecond
}

// Debounce returns the delay between the last path edit and the load.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// IsTOML reports whether path is read and written as TOML.
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load attempts to read configuration from the given path, as TOML when it
// ends in .toml and as JSON otherwise. If the file does not exist it returns
// DefaultConfig(). On decode error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	if IsTOML(path) {
		if _, err := toml.NewDecoder(f).Decode(cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else {
		if err := json.NewDecoder(f).Decode(cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("config: decode %s: %w", path, err)
		}
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path, as TOML when it ends in
// .toml and as indented JSON otherwise.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if IsTOML(path) {
		return toml.NewEncoder(f).Encode(c)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
