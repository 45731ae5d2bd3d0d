// Package clean holds the pure table-to-table cleaning stages. Each
// function consumes a frame and hands back a new one together with a
// small report, so every stage is testable on its own and the driver
// just chains them.
package clean

import (
	"fmt"
	"strings"

	"github.com/gmlima/censodata/frame"
)

type RowReport struct {
	RowsBefore  int
	RowsAfter   int
	RowsRemoved int
}

func rowReport(before, after int) RowReport {
	return RowReport{
		RowsBefore:  before,
		RowsAfter:   after,
		RowsRemoved: before - after,
	}
}

// DedupeRows drops rows identical to an earlier row across all
// columns, keeping the first occurrence in original order.
func DedupeRows(f *frame.Frame) (*frame.Frame, RowReport) {
	return dedupe(f, f.Columns())
}

// DedupeByKey keeps the first row per distinct key combination. The
// key is expected unique in the source, duplicates are a data defect
// resolved silently here, not an error.
func DedupeByKey(f *frame.Frame, keys []string) (*frame.Frame, RowReport, error) {
	keyCols := make([]*frame.Column, 0, len(keys))
	for _, name := range keys {
		c := f.Column(name)
		if c == nil {
			return nil, RowReport{}, fmt.Errorf("dedupe key column %q not found", name)
		}
		keyCols = append(keyCols, c)
	}

	out, report := dedupe(f, keyCols)
	return out, report, nil
}

func dedupe(f *frame.Frame, keyCols []*frame.Column) (*frame.Frame, RowReport) {
	rows := f.NumRows()

	seen := make(map[string]struct{}, rows)
	keep := make([]int32, 0, rows)
	var b strings.Builder

	for row := 0; row < rows; row++ {
		key := frame.RowKey(&b, row, keyCols)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, int32(row))
	}

	if len(keep) == rows {
		return f, rowReport(rows, rows)
	}
	return f.Take(keep), rowReport(rows, len(keep))
}

// DropAllNullRows removes rows where every column is null.
func DropAllNullRows(f *frame.Frame) (*frame.Frame, RowReport) {
	rows := f.NumRows()

	keep := make([]int32, 0, rows)
	for row := 0; row < rows; row++ {
		if !f.RowAllNull(row) {
			keep = append(keep, int32(row))
		}
	}

	if len(keep) == rows {
		return f, rowReport(rows, rows)
	}
	return f.Take(keep), rowReport(rows, len(keep))
}
