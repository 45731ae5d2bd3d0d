// Package inspect prints read-only diagnostics for a frame: shape,
// per-column types, null ratios, cardinalities and a row sample. It
// never mutates anything, it exists for the operator running a
// cleaning pipeline.
package inspect

import (
	"log"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/gmlima/censodata/frame"
)

func Describe(f *frame.Frame, sampleRows int) {
	color.Cyan("=== Dataset Info ===")
	log.Printf("shape: %d rows x %d columns", f.NumRows(), f.NumCols())

	for _, c := range f.Columns() {
		nulls := c.NullCount()
		log.Printf("  %-28s %-12s nulls %7d (%5.1f%%) distinct %d",
			c.Name, c.Type.String(), nulls, c.NullRatio()*100, c.DistinctCount())
	}

	if sampleRows > 0 && f.NumRows() > 0 {
		color.Cyan("first rows:")
		spew.Dump(f.Head(sampleRows))
	}
}
