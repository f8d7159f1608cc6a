package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"scaleforge/internal/scale"
)

// CheckDir walks a tree of scl files, re-validates every one, and
// enforces filename uniqueness across the whole tree. It returns the
// number of files checked. Any failure is fatal for the batch.
func CheckDir(dir string, pol Policy, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	names := map[string]string{}
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".scl") {
			return nil
		}
		parsed, parseErr := scale.ParseFile(path)
		if parseErr != nil {
			return parseErr
		}
		if vErr := Scale(parsed, pol, logger); vErr != nil {
			var e *Error
			if errors.As(vErr, &e) {
				e.Path = path
				return e
			}
			return vErr
		}
		if prev, dup := names[d.Name()]; dup {
			return fmt.Errorf("scl filename %q not unique: %s and %s", d.Name(), prev, path)
		}
		names[d.Name()] = path
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	logger.Info("checked scl files", "count", count, "dir", dir)
	return count, nil
}
