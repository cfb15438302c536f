//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"mt5-history/internal/app"
)

// initializeApp assembles Config + Provider + Saver via Wire.
// Caller runs the pipeline and must let it Close the provider.
func initializeApp(opts app.Options) (*app.App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideSaver,
		app.ProvideProvider,
		app.ProvideOutputPath,
		wire.Struct(new(app.App), "Config", "Provider", "Saver", "OutputPath"),
	)
	return nil, nil
}
