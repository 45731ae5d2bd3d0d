// Package dataio loads source spreadsheets into frames and persists
// cleaned frames to disk. Formats: xlsx workbooks, csv, and the colf
// columnar format preferred by the dashboard.
package dataio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gmlima/censodata/colf"
	"github.com/gmlima/censodata/frame"
)

var ErrUnknownExtension = errors.New("unknown source file extension")

type LoadOptions struct {
	// Sheet is the 1-based workbook sheet index, only meaningful for
	// xlsx sources. Zero means the first sheet.
	Sheet int
}

// Load reads a source file into a frame, dispatching on extension.
// Any failure (missing file, unreadable content) comes back wrapped
// with the path.
func Load(path string, opts LoadOptions) (*frame.Frame, error) {
	var (
		f   *frame.Frame
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		f, err = loadXlsx(path, opts.Sheet)
	case ".csv":
		f, err = loadCsv(path)
	case ".colf":
		f, err = colf.ReadFile(path)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownExtension, filepath.Ext(path))
	}

	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return f, nil
}
