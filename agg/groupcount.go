// Package agg computes per-group cardinality statistics and joins
// them back onto the full table as derived columns. Left-join
// semantics: the row count never changes, rows whose grouping key is
// null get null derived values.
package agg

import (
	"fmt"
	"strings"

	"github.com/gmlima/censodata/frame"
)

type DistinctCount struct {
	Of string // entity column counted per group
	As string // name of the derived column
}

type GroupSpec struct {
	Keys   []string
	Counts []DistinctCount
}

// AddGroupDistinctCounts appends one Int64 column per Counts entry,
// holding the number of distinct entity values within the row's key
// group. Aggregation collapses to one value per key before the join,
// so the join can never fan out.
func AddGroupDistinctCounts(f *frame.Frame, spec GroupSpec) (*frame.Frame, error) {
	keyCols := make([]*frame.Column, 0, len(spec.Keys))
	for _, name := range spec.Keys {
		c := f.Column(name)
		if c == nil {
			return nil, fmt.Errorf("aggregation key column %q not found", name)
		}
		keyCols = append(keyCols, c)
	}

	entityCols := make([]*frame.Column, 0, len(spec.Counts))
	for _, count := range spec.Counts {
		c := f.Column(count.Of)
		if c == nil {
			return nil, fmt.Errorf("aggregation entity column %q not found", count.Of)
		}
		entityCols = append(entityCols, c)
	}

	rows := f.NumRows()

	rowKeys := make([]string, rows)
	hasKey := make([]bool, rows)

	// distinct sets: group key -> per-count set of encoded entity values
	groups := map[string][]map[string]struct{}{}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		valid := true
		for _, kc := range keyCols {
			if kc.IsNull(row) {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}

		key := frame.RowKey(&b, row, keyCols)
		rowKeys[row] = key
		hasKey[row] = true

		sets, ok := groups[key]
		if !ok {
			sets = make([]map[string]struct{}, len(entityCols))
			for i := range sets {
				sets[i] = map[string]struct{}{}
			}
			groups[key] = sets
		}

		for i, ec := range entityCols {
			if ec.IsNull(row) {
				continue
			}
			b.Reset()
			ec.EncodeValue(&b, row)
			sets[i][b.String()] = struct{}{}
		}
	}

	for i, count := range spec.Counts {
		values := make([]int64, rows)
		valid := make([]bool, rows)

		for row := 0; row < rows; row++ {
			if !hasKey[row] {
				continue
			}
			values[row] = int64(len(groups[rowKeys[row]][i]))
			valid[row] = true
		}

		if err := f.AddColumn(frame.NewIntColumn(count.As, values, valid)); err != nil {
			return nil, err
		}
	}

	return f, nil
}
