package cmd

import (
	"server-launcher/core/config"
	"server-launcher/core/platform"
)

// declareApp registers the configured function with entry as its entry point.
func declareApp(cfg *config.Config, entry platform.Handler) (*platform.App, error) {
	app := platform.NewApp(cfg.Function.App)
	if _, err := app.Function(cfg.Function.Spec(), entry); err != nil {
		return nil, err
	}
	return app, nil
}
