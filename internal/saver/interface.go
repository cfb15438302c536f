package saver

import (
	"strings"

	"mt5-history/internal/model"
)

// Saver persists an ordered bar sequence to one output file. Implementations
// must never leave a partially written file behind on failure.
type Saver interface {
	Save(bars []model.Bar, path string) error
	Extension() string
}

// NewSaver creates the implementation for a format (json, parquet, csv).
// Returns nil if the format is not supported.
func NewSaver(format string) Saver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSONSaver{}
	case "parquet":
		return ParquetSaver{}
	case "csv":
		return CSVSaver{}
	default:
		return nil
	}
}
