package saver

import (
	"github.com/parquet-go/parquet-go"

	"mt5-history/internal/model"
)

// ParquetSaver writes bars as a columnar parquet table, one column per Bar
// field (time string, prices double, volume int64), no row index column.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(bars []model.Bar, path string) error {
	return atomically(path, func(tmp string) error {
		return parquet.WriteFile(tmp, bars)
	})
}
