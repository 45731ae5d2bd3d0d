// Package pipeline drives a dataset cleaning run: load, inspect,
// clean, prune, filter, select, aggregate, persist. Every knob lives
// in Config so the cmd entry points enumerate their constants exactly
// once, and every stage past Load is guarded by ErrNotLoaded.
package pipeline

import (
	"github.com/gmlima/censodata/agg"
	"github.com/gmlima/censodata/dataio"
	"github.com/gmlima/censodata/filter"
)

type Output struct {
	Path   string
	Format dataio.Format
}

type Config struct {
	// Name labels the dataset in progress output.
	Name string

	SourcePath string
	Sheet      int // 1-based xlsx sheet, 0 = first

	// DedupeKeys switches dedup from whole-row equality to
	// keep-first-per-key over these columns.
	DedupeKeys []string

	// NullThreshold drops columns with null ratio strictly above it.
	// Negative disables the pruning stage.
	NullThreshold float64

	Conditions  []filter.Condition
	KeepColumns []string

	Aggregations []agg.GroupSpec

	SampleRows int // rows shown by Describe, 0 = default
	Outputs    []Output
}
