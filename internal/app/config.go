package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"mt5-history/internal/apperr"
	"mt5-history/internal/backfill"
	"mt5-history/internal/normalize"
)

// Config holds the run parameters read from the INI config file.
type Config struct {
	Symbol    string `validate:"required"`
	StartDate time.Time
	EndDate   time.Time
	Timeframe string `validate:"required"`
	BatchSize int    `validate:"gte=1"`
	Format    string `validate:"oneof=json parquet csv"`
	BridgeURL string `validate:"required,url"`
	LogLevel  string
}

// Load reads and validates the config file. Any failure here is a
// ConfigError raised before a terminal connection is attempted.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	v.SetDefault("data.timeframe", "M1")
	v.SetDefault("data.batch_size", backfill.DefaultBatchSize)
	v.SetDefault("output.format", "json")
	v.SetDefault("bridge.url", "http://127.0.0.1:6542")
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, apperr.Errorf(apperr.KindConfig, "reading %s: %w", path, err)
	}

	cfg := &Config{
		Symbol:    strings.TrimSpace(v.GetString("data.symbol")),
		Timeframe: strings.TrimSpace(v.GetString("data.timeframe")),
		BatchSize: v.GetInt("data.batch_size"),
		Format:    strings.ToLower(strings.TrimSpace(v.GetString("output.format"))),
		BridgeURL: v.GetString("bridge.url"),
		LogLevel:  v.GetString("log.level"),
	}

	var err error
	if cfg.StartDate, err = requiredDate(v, "data.start_date"); err != nil {
		return nil, err
	}
	if cfg.EndDate, err = requiredDate(v, "data.end_date"); err != nil {
		return nil, err
	}
	if cfg.EndDate.Before(cfg.StartDate) {
		return nil, apperr.Errorf(apperr.KindConfig, "start_date %s is after end_date %s",
			cfg.StartDate.Format(normalize.TimeLayout), cfg.EndDate.Format(normalize.TimeLayout))
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, apperr.Errorf(apperr.KindConfig, "invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// requiredDate reads a mandatory local-time date key (2006-01-02 15:04:05).
func requiredDate(v *viper.Viper, key string) (time.Time, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return time.Time{}, apperr.Errorf(apperr.KindConfig, "missing required key %s", key)
	}
	ts, err := time.ParseInLocation(normalize.TimeLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, apperr.Errorf(apperr.KindConfig, "key %s: want %q format: %w", key, normalize.TimeLayout, err)
	}
	return ts, nil
}

// DefaultOutputPath derives <symbol>_<start>_<end>.<ext> with spaces
// replaced by underscores and colons by dashes.
func (c *Config) DefaultOutputPath(ext string) string {
	sanitize := strings.NewReplacer(" ", "_", ":", "-")
	return fmt.Sprintf("%s_%s_%s.%s",
		c.Symbol,
		sanitize.Replace(c.StartDate.Format(normalize.TimeLayout)),
		sanitize.Replace(c.EndDate.Format(normalize.TimeLayout)),
		ext)
}
