package cmd

import (
	"errors"
	"log/slog"

	"github.com/soocke/insetcrop/config"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

// EditorFunc runs the interactive editor until its window closes.
type EditorFunc func(cfg *config.Config, logger *slog.Logger, cfgPath string) error

var (
	editor    EditorFunc
	cfgPath   string
	imagePath string
	serverURL string
	graphPath string
	debugMode bool
)

var rootCmd = &cobra.Command{
	Use:   "insetcrop",
	Short: "Crop images by dragging inset margins",
	Long: Brand.Sprint("insetcrop") + " loads an image and trims it by four inset margins.\n" +
		Subtle.Sprint("Drag the crop box or its handles, or type the margins, then save."),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEditor,
}

func init() {
	rootCmd.SetVersionTemplate("insetcrop {{ .Version }}\n")
	f := rootCmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", "insetcrop.json", "Config file (.json or .toml)")
	f.StringVarP(&imagePath, "path", "p", "", "Image to open: file path, URL, server path or screen[:x,y,w,h]")
	f.StringVar(&serverURL, "server", "", "Base URL of the image-view server")
	f.StringVar(&graphPath, "graph", "", "Graph document for the widget picker")
	f.BoolVar(&debugMode, "debug", false, "Debug logging and runtime stats")

	rootCmd.AddCommand(
		applyCmd(),
		pickCmd(),
	)
}

// SetEditor sets the function the root command runs the editor with.
func SetEditor(fn EditorFunc) {
	editor = fn
}

// Execute runs the root command and prints its error, if any, to the
// command's error stream.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		Bad.Fprintf(rootCmd.ErrOrStderr(), "insetcrop: %v\n", err)
	}
	return err
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		Warn.Fprintf(cmd.ErrOrStderr(), "insetcrop: %v; using defaults\n", err)
	}
	overrideConfig(cmd, cfg)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if editor == nil {
		return errors.New("no editor available in this build")
	}
	return editor(cfg, logger, cfgPath)
}

// overrideConfig copies explicitly set flags over file values.
func overrideConfig(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("path") {
		cfg.ImagePath = imagePath
	}
	if f.Changed("server") {
		cfg.ServerURL = serverURL
	}
	if f.Changed("graph") {
		cfg.GraphPath = graphPath
	}
	if f.Changed("debug") {
		cfg.Debug = debugMode
	}
	_ = cfg.Validate()
}
