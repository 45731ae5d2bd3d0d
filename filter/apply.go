package filter

import (
	"fmt"

	"github.com/gmlima/censodata/frame"
	"github.com/gmlima/censodata/lists"
	"github.com/gmlima/censodata/ops"
)

type Report struct {
	RowsBefore  int
	RowsAfter   int
	RowsRemoved int
	RetainedPct float64
}

// Apply evaluates the full conjunction in a single pass over the
// conditions and keeps only the rows satisfying every clause,
// original order preserved. Applying the same conditions twice yields
// the same frame as applying them once.
func Apply(f *frame.Frame, conds []Condition) (*frame.Frame, Report, error) {
	rows := f.NumRows()

	if len(conds) == 0 || rows == 0 {
		return f, reportFor(rows, rows), nil
	}

	conj := lists.NewConjunction(rows)
	buf := make([]int32, rows)

	// int columns get compared in float space, one view per column
	views := map[string][]float64{}

	for _, cond := range conds {
		n, err := evaluate(f, cond, buf, views)
		if err != nil {
			return nil, Report{}, err
		}
		conj.With(buf[:n])
	}

	result := conj.Result()
	if len(result) == rows {
		return f, reportFor(rows, rows), nil
	}
	return f.Take(result), reportFor(rows, len(result)), nil
}

func reportFor(before, after int) Report {
	pct := 100.0
	if before > 0 {
		pct = float64(after) / float64(before) * 100
	}
	return Report{
		RowsBefore:  before,
		RowsAfter:   after,
		RowsRemoved: before - after,
		RetainedPct: pct,
	}
}

func evaluate(f *frame.Frame, cond Condition, out []int32, views map[string][]float64) (int, error) {
	col := f.Column(cond.Column)
	if col == nil {
		return 0, fmt.Errorf("filter column %q not found", cond.Column)
	}

	if cond.Op == NON_EMPTY {
		// Numeric key columns (all-digit codes get inferred as Int64)
		// have no blank state beyond null, so only validity is checked.
		if col.Type.Textual() {
			return ops.CollectNonEmptyStrings(col.Strs, col.Valid, out), nil
		}
		return ops.CollectValid(col.Valid, out), nil
	}

	if !col.Type.Numeric() {
		return 0, fmt.Errorf("filter %s on non-numeric column %q", cond.Op, cond.Column)
	}

	arr, err := floatView(col, views)
	if err != nil {
		return 0, err
	}

	switch cond.Op {
	case RANGE:
		return ops.CollectInRangeExclusive(arr, col.Valid, cond.Value, cond.Hi, out), nil
	case RANGE_INCL:
		return ops.CollectInRangeInclusive(arr, col.Valid, cond.Value, cond.Hi, out), nil
	case GT:
		return ops.CollectBigger(arr, col.Valid, cond.Value, out), nil
	case GE:
		return ops.CollectBiggerOrEqual(arr, col.Valid, cond.Value, out), nil
	case LT:
		return ops.CollectSmaller(arr, col.Valid, cond.Value, out), nil
	case LE:
		return ops.CollectSmallerOrEqual(arr, col.Valid, cond.Value, out), nil
	case EQ:
		return ops.CollectEqual(arr, col.Valid, cond.Value, out), nil

	case GE_COLUMN:
		other := f.Column(cond.Other)
		if other == nil {
			return 0, fmt.Errorf("filter column %q not found", cond.Other)
		}
		if !other.Type.Numeric() {
			return 0, fmt.Errorf("filter %s on non-numeric column %q", cond.Op, cond.Other)
		}
		otherArr, otherErr := floatView(other, views)
		if otherErr != nil {
			return 0, otherErr
		}
		return ops.CollectColumnBiggerOrEqual(arr, otherArr, col.Valid, other.Valid, out), nil

	default:
		return 0, fmt.Errorf("unsupported filter operand %d on column %q", cond.Op, cond.Column)
	}
}

func floatView(col *frame.Column, views map[string][]float64) ([]float64, error) {
	if col.Type == frame.Float64Field {
		return col.Floats, nil
	}

	if view, ok := views[col.Name]; ok {
		return view, nil
	}

	view := make([]float64, len(col.Ints))
	for i, v := range col.Ints {
		view[i] = float64(v)
	}
	views[col.Name] = view
	return view, nil
}
