package app

import (
	"context"
	"log/slog"

	"mt5-history/internal/apperr"
	"mt5-history/internal/backfill"
	"mt5-history/internal/model"
	"mt5-history/internal/normalize"
	"mt5-history/internal/provider"
	"mt5-history/internal/saver"
	"mt5-history/internal/timeframe"
)

// App bundles the dependencies for one fetch-and-write run, assembled by
// Wire in cmd/mt5-history.
type App struct {
	Config     *Config
	Provider   provider.Provider
	Saver      saver.Saver
	OutputPath string
}

// Fetch runs the ranged-query mode: one direct request for the configured
// [start_date, end_date] window, no paging loop.
func (a *App) Fetch(ctx context.Context) error {
	return a.run(ctx, func(ctx context.Context, tf timeframe.Spec) ([]model.RawBar, error) {
		cfg := a.Config
		slog.Info("fetching range",
			"symbol", cfg.Symbol, "timeframe", tf.Label,
			"start", cfg.StartDate.Format(normalize.TimeLayout),
			"end", cfg.EndDate.Format(normalize.TimeLayout))

		raw, err := a.Provider.FetchRange(ctx, cfg.Symbol, tf, cfg.StartDate, cfg.EndDate)
		if err != nil {
			return nil, apperr.Errorf(apperr.KindFetch, "range %s %s [%s, %s]: %w",
				cfg.Symbol, tf.Label,
				cfg.StartDate.Format(normalize.TimeLayout),
				cfg.EndDate.Format(normalize.TimeLayout), err)
		}
		return raw, nil
	})
}

// Backfill runs the full-history mode: page backward from now until the
// terminal has no earlier bars.
func (a *App) Backfill(ctx context.Context) error {
	return a.run(ctx, func(ctx context.Context, tf timeframe.Spec) ([]model.RawBar, error) {
		slog.Info("backfilling full history",
			"symbol", a.Config.Symbol, "timeframe", tf.Label, "batch_size", a.Config.BatchSize)
		return backfill.New(a.Provider, a.Config.BatchSize).Run(ctx, a.Config.Symbol, tf)
	})
}

// run is the shared pipeline: resolve timeframe, connect, fetch raw bars via
// the mode-specific step, normalize, persist. The provider session is
// released on every exit path.
func (a *App) run(ctx context.Context, fetch func(context.Context, timeframe.Spec) ([]model.RawBar, error)) error {
	tf, err := timeframe.Resolve(a.Config.Timeframe)
	if err != nil {
		return err
	}

	if err := a.Provider.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := a.Provider.Close(); err != nil {
			slog.Warn("closing provider", "provider", a.Provider.Name(), "error", err)
		}
	}()
	slog.Info("connected", "provider", a.Provider.Name())

	raw, err := fetch(ctx, tf)
	if err != nil {
		return err
	}
	slog.Info("received bars", "count", len(raw))

	bars, err := normalize.LiveBars(raw)
	if err != nil {
		return err
	}

	if err := a.Saver.Save(bars, a.OutputPath); err != nil {
		return err
	}
	slog.Info("saved", "path", a.OutputPath, "bars", len(bars), "format", a.Saver.Extension())
	return nil
}
