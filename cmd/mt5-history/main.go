package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mt5-history/internal/app"
	"mt5-history/internal/apperr"
	"mt5-history/internal/slogx"
)

var (
	configPath string
	outputPath string
	mockSeed   int64
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mt5-history",
		Short:         "Fetch OHLCV bar history from a MetaTrader 5 terminal and save it as JSON, Parquet or CSV",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.ini", "path to the config file")
	root.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output file (default <symbol>_<start>_<end>.<ext>)")

	root.AddCommand(&cobra.Command{
		Use:   "fetch",
		Short: "Fetch the configured [start_date, end_date] range in one ranged query",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMode(cmd, app.ModeLive, (*app.App).Fetch)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "backfill",
		Short: "Page backward from now and assemble the symbol's full available history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMode(cmd, app.ModeLive, (*app.App).Backfill)
		},
	})
	mockCmd := &cobra.Command{
		Use:   "mock",
		Short: "Generate synthetic history through the same writer path (development mode)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMode(cmd, app.ModeMock, (*app.App).Fetch)
		},
	}
	mockCmd.Flags().Int64Var(&mockSeed, "seed", 0, "random seed for reproducible mock data (0 = from clock)")
	root.AddCommand(mockCmd)

	return root
}

func runMode(cmd *cobra.Command, mode app.Mode, run func(*app.App, context.Context) error) error {
	a, err := initializeApp(app.Options{
		ConfigPath: configPath,
		Output:     outputPath,
		Mode:       mode,
		MockSeed:   mockSeed,
	})
	if err != nil {
		return err
	}
	slog.SetDefault(slogx.NewDefault(a.Config.LogLevel))
	return run(a, cmd.Context())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(apperr.ExitCode(err))
	}
}
