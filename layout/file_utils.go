package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ExecutableDir is the directory of the running binary, or "." if it cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}

	return filepath.Dir(exe)
}

// OpenPath opens an absolute path as is. Relative paths are tried against the working
// directory first and then against the directory of the binary.
func OpenPath(path string) (*os.File, error) {
	if filepath.IsAbs(path) {
		slog.Debug("Opening absolute path", "path", path)

		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open file %s: %w", path, err)
		}

		return file, nil
	}

	file, err := os.Open(path)
	if err == nil {
		slog.Debug("Opening relative path", "path", path)

		return file, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	fallback := filepath.Join(ExecutableDir(), path)
	slog.Debug("Opening path next to binary", "path", fallback)

	file, err = os.Open(fallback)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	return file, nil
}
