package dataio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gmlima/censodata/colf"
	"github.com/gmlima/censodata/frame"
)

type Format string

const (
	FormatColf Format = "colf"
	FormatCsv  Format = "csv"
	FormatXlsx Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// Save persists the frame, creating parent directories as needed.
// Write failures propagate to the caller, there is no retry.
func Save(f *frame.Frame, path string, format Format) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}

	var err error
	switch format {
	case FormatColf:
		err = colf.WriteFile(path, f)
	case FormatCsv:
		err = saveCsv(path, f)
	case FormatXlsx:
		err = saveXlsx(path, f)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
