package pipeline

import (
	"errors"
	"log"

	"github.com/fatih/color"

	"github.com/gmlima/censodata/agg"
	"github.com/gmlima/censodata/clean"
	"github.com/gmlima/censodata/dataio"
	"github.com/gmlima/censodata/filter"
	"github.com/gmlima/censodata/frame"
	"github.com/gmlima/censodata/inspect"
)

var ErrNotLoaded = errors.New("no table loaded, call Load first")

// Runner owns the current table between stages. Strictly linear: any
// stage error aborts the run, there is no recovery or retry.
type Runner struct {
	cfg   Config
	table *frame.Frame
}

func New(cfg Config) *Runner {
	return &Runner{cfg: cfg}
}

// Table exposes the current frame, mostly for tests and the analysis
// binary.
func (r *Runner) Table() *frame.Frame {
	return r.table
}

func (r *Runner) guard() error {
	if r.table == nil {
		return ErrNotLoaded
	}
	return nil
}

func (r *Runner) Load() error {
	log.Printf("[%s] loading %s", r.cfg.Name, r.cfg.SourcePath)

	table, err := dataio.Load(r.cfg.SourcePath, dataio.LoadOptions{Sheet: r.cfg.Sheet})
	if err != nil {
		return err
	}

	r.table = table
	log.Printf("[%s] loaded %d rows and %d columns", r.cfg.Name, table.NumRows(), table.NumCols())
	return nil
}

// Describe prints diagnostics without touching the table.
func (r *Runner) Describe() error {
	if err := r.guard(); err != nil {
		return err
	}

	sample := r.cfg.SampleRows
	if sample == 0 {
		sample = 5
	}
	inspect.Describe(r.table, sample)
	return nil
}

// Clean deduplicates, drops all-null rows and trims string cells.
func (r *Runner) Clean() error {
	if err := r.guard(); err != nil {
		return err
	}

	color.Cyan("=== Cleaning Data [%s] ===", r.cfg.Name)

	var report clean.RowReport
	if len(r.cfg.DedupeKeys) > 0 {
		var err error
		r.table, report, err = clean.DedupeByKey(r.table, r.cfg.DedupeKeys)
		if err != nil {
			return err
		}
		log.Printf("removed %d duplicate rows by key %v", report.RowsRemoved, r.cfg.DedupeKeys)
	} else {
		r.table, report = clean.DedupeRows(r.table)
		log.Printf("removed %d duplicate rows", report.RowsRemoved)
	}

	r.table, report = clean.DropAllNullRows(r.table)
	log.Printf("removed %d rows with all null values", report.RowsRemoved)

	trimmed := clean.TrimStrings(r.table)
	log.Printf("trimmed whitespace in %d cells", trimmed)

	log.Printf("rows after cleaning: %d", r.table.NumRows())
	return nil
}

// PruneHighNullColumns drops columns with too many nulls, using the
// configured threshold.
func (r *Runner) PruneHighNullColumns() error {
	if err := r.guard(); err != nil {
		return err
	}

	threshold := r.cfg.NullThreshold
	color.Cyan("=== Removing columns with >%.0f%% nulls [%s] ===", threshold*100, r.cfg.Name)

	table, dropped, skipped := clean.PruneHighNullColumns(r.table, threshold)
	r.table = table

	if skipped {
		color.Yellow("table has no rows, skipping null-column pruning")
		return nil
	}

	if len(dropped) == 0 {
		log.Printf("no columns removed")
	} else {
		log.Printf("removed columns: %v", dropped)
	}
	return nil
}

// FilterRows applies the configured predicate conjunction.
func (r *Runner) FilterRows() error {
	if err := r.guard(); err != nil {
		return err
	}

	table, report, err := filter.Apply(r.table, r.cfg.Conditions)
	if err != nil {
		return err
	}
	r.table = table

	color.Cyan("=== Row Filter Applied [%s] ===", r.cfg.Name)
	log.Printf("retained %d of %d rows (%.1f%%)", report.RowsAfter, report.RowsBefore, report.RetainedPct)
	return nil
}

// SelectColumns keeps only the configured columns; unknown names get
// a soft warning and are skipped.
func (r *Runner) SelectColumns() error {
	if err := r.guard(); err != nil {
		return err
	}

	if len(r.cfg.KeepColumns) == 0 {
		log.Printf("no column filter applied")
		return nil
	}

	table, missing := clean.KeepColumns(r.table, r.cfg.KeepColumns)
	r.table = table

	for _, name := range missing {
		color.Yellow("requested column %q not found, skipping", name)
	}
	log.Printf("selected %d columns", r.table.NumCols())
	return nil
}

// Aggregate joins the configured per-group distinct counts back onto
// every row.
func (r *Runner) Aggregate() error {
	if err := r.guard(); err != nil {
		return err
	}

	for _, spec := range r.cfg.Aggregations {
		rowsBefore := r.table.NumRows()

		table, err := agg.AddGroupDistinctCounts(r.table, spec)
		if err != nil {
			return err
		}
		r.table = table

		log.Printf("aggregated by %v: %d derived columns, %d rows (unchanged from %d)",
			spec.Keys, len(spec.Counts), r.table.NumRows(), rowsBefore)
	}
	return nil
}

// Save writes every configured output.
func (r *Runner) Save() error {
	if err := r.guard(); err != nil {
		return err
	}

	for _, out := range r.cfg.Outputs {
		color.Cyan("=== Saving cleaned data to %s ===", out.Path)
		if err := dataio.Save(r.table, out.Path, out.Format); err != nil {
			return err
		}
		log.Printf("saved %d rows to %s", r.table.NumRows(), out.Path)
	}
	return nil
}

// Run executes the canonical stage order for the configured dataset.
// Stages with no configuration are cheap no-ops.
func (r *Runner) Run() error {
	if err := r.Load(); err != nil {
		return err
	}
	if err := r.Describe(); err != nil {
		return err
	}
	if err := r.Clean(); err != nil {
		return err
	}
	if r.cfg.NullThreshold >= 0 {
		if err := r.PruneHighNullColumns(); err != nil {
			return err
		}
	}
	if err := r.FilterRows(); err != nil {
		return err
	}
	if err := r.SelectColumns(); err != nil {
		return err
	}
	if err := r.Aggregate(); err != nil {
		return err
	}
	return r.Save()
}
