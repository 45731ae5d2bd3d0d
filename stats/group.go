package stats

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/gmlima/censodata/frame"
)

// GroupStat is one summary row of GroupSummary: per-column sums and
// means over the rows sharing the key value.
type GroupStat struct {
	Key   string
	Count int
	Sums  map[string]float64
	Means map[string]float64
}

// GroupSummary groups rows by the key column and accumulates the
// named numeric columns. Rows with a null key are skipped, null cells
// do not contribute to their column's mean. Output sorted by key.
func GroupSummary(f *frame.Frame, key string, cols []string) ([]GroupStat, error) {
	keyCol := f.Column(key)
	if keyCol == nil {
		return nil, fmt.Errorf("group key column %q not found", key)
	}

	valueCols := make([]*frame.Column, 0, len(cols))
	for _, name := range cols {
		c := f.Column(name)
		if c == nil {
			return nil, fmt.Errorf("group value column %q not found", name)
		}
		if !c.Type.Numeric() {
			return nil, fmt.Errorf("group value column %q is not numeric", name)
		}
		valueCols = append(valueCols, c)
	}

	type acc struct {
		count int
		sums  []float64
		ns    []int
	}

	groups := map[string]*acc{}
	var b strings.Builder

	for row := 0; row < f.NumRows(); row++ {
		if keyCol.IsNull(row) {
			continue
		}
		b.Reset()
		keyCol.EncodeValue(&b, row)
		k := b.String()

		a, ok := groups[k]
		if !ok {
			a = &acc{
				sums: make([]float64, len(valueCols)),
				ns:   make([]int, len(valueCols)),
			}
			groups[k] = a
		}
		a.count++

		for i, vc := range valueCols {
			if vc.IsNull(row) {
				continue
			}
			a.sums[i] += vc.Float(row)
			a.ns[i]++
		}
	}

	keys := maps.Keys(groups)
	sort.Strings(keys)

	out := make([]GroupStat, 0, len(keys))
	for _, k := range keys {
		a := groups[k]
		stat := GroupStat{
			Key:   k,
			Count: a.count,
			Sums:  make(map[string]float64, len(cols)),
			Means: make(map[string]float64, len(cols)),
		}
		for i, name := range cols {
			stat.Sums[name] = a.sums[i]
			if a.ns[i] > 0 {
				stat.Means[name] = a.sums[i] / float64(a.ns[i])
			}
		}
		out = append(out, stat)
	}

	return out, nil
}
