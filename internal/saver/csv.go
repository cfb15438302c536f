package saver

import (
	"encoding/csv"
	"os"
	"strconv"

	"mt5-history/internal/model"
)

// CSVSaver writes bars as CSV (header: time,open,high,low,close,volume).
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(bars []model.Bar, path string) error {
	return atomically(path, func(tmp string) error {
		return writeFile(tmp, func(f *os.File) error {
			w := csv.NewWriter(f)
			if err := w.Write([]string{"time", "open", "high", "low", "close", "volume"}); err != nil {
				return err
			}
			for _, b := range bars {
				if err := w.Write([]string{
					b.Time,
					floatStr(b.Open),
					floatStr(b.High),
					floatStr(b.Low),
					floatStr(b.Close),
					strconv.FormatInt(b.Volume, 10),
				}); err != nil {
					return err
				}
			}
			w.Flush()
			return w.Error()
		})
	})
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
