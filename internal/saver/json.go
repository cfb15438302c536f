package saver

import (
	"encoding/json"
	"os"

	"mt5-history/internal/model"
)

// JSONSaver writes bars as an indented JSON array. Non-ASCII text passes
// through unescaped, matching the terminal's own export conventions.
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(bars []model.Bar, path string) error {
	if bars == nil {
		bars = []model.Bar{}
	}
	return atomically(path, func(tmp string) error {
		return writeFile(tmp, func(f *os.File) error {
			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(bars)
		})
	})
}
