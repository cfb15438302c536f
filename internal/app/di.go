package app

import (
	"mt5-history/internal/apperr"
	"mt5-history/internal/provider"
	"mt5-history/internal/provider/mock"
	"mt5-history/internal/provider/mt5"
	"mt5-history/internal/saver"
)

// Mode selects the provider implementation once at startup. There is no
// runtime fallback from live to mock.
type Mode string

const (
	ModeLive Mode = "live"
	ModeMock Mode = "mock"
)

// Options are the CLI-level inputs to dependency assembly.
type Options struct {
	ConfigPath string
	Output     string // empty → derived from config
	Mode       Mode
	MockSeed   int64
}

// ProvideConfig loads the config file (for Wire).
func ProvideConfig(opts Options) (*Config, error) {
	return Load(opts.ConfigPath)
}

// ProvideSaver creates the output writer from config (for Wire).
func ProvideSaver(cfg *Config) (saver.Saver, error) {
	s := saver.NewSaver(cfg.Format)
	if s == nil {
		return nil, apperr.Errorf(apperr.KindConfig, "unsupported output format %q (use: json, parquet, csv)", cfg.Format)
	}
	return s, nil
}

// ProvideProvider creates the data provider for the selected mode (for Wire).
func ProvideProvider(cfg *Config, opts Options) (provider.Provider, error) {
	switch opts.Mode {
	case ModeLive:
		return mt5.New(cfg.BridgeURL), nil
	case ModeMock:
		return mock.New(opts.MockSeed), nil
	default:
		return nil, apperr.Errorf(apperr.KindConfig, "unknown provider mode %q", opts.Mode)
	}
}

// ProvideOutputPath resolves the output file: explicit -o flag, or the
// derived <symbol>_<start>_<end>.<ext> default.
func ProvideOutputPath(cfg *Config, opts Options, s saver.Saver) string {
	if opts.Output != "" {
		return opts.Output
	}
	return cfg.DefaultOutputPath(s.Extension())
}
