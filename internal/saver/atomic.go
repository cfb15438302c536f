package saver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"mt5-history/internal/apperr"
)

// atomically runs write against a temporary path in the target's directory,
// then renames over path. The temp file is removed when write or the rename
// fails, so a crash or I/O error never leaves a half-written file that looks
// like a finished one.
func atomically(path string, write func(tmp string) error) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := write(tmp); err != nil {
		os.Remove(tmp)
		return apperr.Errorf(apperr.KindWrite, "write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return apperr.Errorf(apperr.KindWrite, "rename %s: %w", path, err)
	}
	return nil
}

// writeFile opens tmp for writing and hands the file to fn, closing and
// syncing before return. Shared by the stream-oriented savers.
func writeFile(tmp string, fn func(f *os.File) error) error {
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
