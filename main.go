package main

import (
	"log/slog"
	"os"

	"github.com/soocke/insetcrop/app"
	"github.com/soocke/insetcrop/cmd"
	"github.com/soocke/insetcrop/config"
)

func main() {
	cmd.SetEditor(runEditor)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEditor(cfg *config.Config, logger *slog.Logger, cfgPath string) error {
	c, err := app.BuildContainer(cfg, logger, cfgPath)
	if err != nil {
		return err
	}
	app.NewApp("Inset Crop", 900, 720, c).Start()
	return nil
}
