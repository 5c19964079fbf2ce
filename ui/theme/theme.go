package theme

// Palettes and ttk styles for the crop editor. SetDark picks a palette and
// reconfigures every named style from it; widgets refer to styles by name
// only, so a mode switch needs no widget rebuild.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ColorPrimary is the crop box and primary button colour in both modes.
const ColorPrimary = "#4a9eff"

// PaletteSnapshot holds the resolved colours of one mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Primary   string
	Danger    string
	Banner    string // picker instruction banner
	Text      string
	TextMuted string
}

var (
	light = PaletteSnapshot{
		AppBg:     "#f7f9fb",
		Surface:   "#ffffff",
		Primary:   ColorPrimary,
		Danger:    "#dc2626",
		Banner:    "#f59e0b",
		Text:      "#1e293b",
		TextMuted: "#64748b",
	}
	dark = PaletteSnapshot{
		AppBg:     "#1e1e1e",
		Surface:   "#2a2a2a",
		Primary:   ColorPrimary,
		Danger:    "#ef4444",
		Banner:    "#b45309",
		Text:      "#f1f5f9",
		TextMuted: "#888888",
	}
)

// Style names used with Style(...).
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleInfoLabel     = "info.TLabel"
	StyleBannerLabel   = "banner.TLabel"
)

var darkMode bool

// CurrentPalette returns the colours of the active mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return dark
	}
	return light
}

// SetDark selects the mode and reapplies all styles.
func SetDark(on bool) {
	darkMode = on
	applyStyles(CurrentPalette())
}

func applyStyles(p PaletteSnapshot) {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(p.AppBg))

	for name, bg := range map[string]string{
		StylePrimaryButton: p.Primary,
		StyleDangerButton:  p.Danger,
	} {
		StyleConfigure(name,
			Background(bg),
			Foreground("white"),
			Padding("4p 3p"),
			Borderwidth(1),
			Relief("ridge"),
		)
	}
	StyleConfigure(StyleInfoLabel,
		Foreground(p.Text),
		Background(p.Surface),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
	StyleConfigure(StyleBannerLabel,
		Foreground("white"),
		Background(p.Banner),
		Padding("6p 3p"),
	)
}
