package clean

import (
	"github.com/gmlima/censodata/frame"
)

// PruneHighNullColumns drops every column whose null ratio is strictly
// greater than threshold, columns exactly at the threshold stay. With
// zero rows the ratio is undefined, the frame passes through untouched
// and skipped reports it.
//
// The non-strict "<= threshold retained" boundary is deliberate and
// must not be inverted, both dataset cleaners rely on it.
func PruneHighNullColumns(f *frame.Frame, threshold float64) (out *frame.Frame, dropped []string, skipped bool) {
	if f.NumRows() == 0 {
		return f, nil, true
	}

	kept := make([]string, 0, f.NumCols())
	for _, c := range f.Columns() {
		if c.NullRatio() <= threshold {
			kept = append(kept, c.Name)
		} else {
			dropped = append(dropped, c.Name)
		}
	}

	if len(dropped) == 0 {
		return f, nil, false
	}
	return f.Select(kept), dropped, false
}

// KeepColumns restricts the frame to the requested columns, in the
// requested order. Names missing from the frame are dropped from the
// request and returned for a soft warning. An empty request passes
// the frame through unchanged.
func KeepColumns(f *frame.Frame, names []string) (out *frame.Frame, missing []string) {
	if len(names) == 0 {
		return f, nil
	}

	present := make([]string, 0, len(names))
	for _, name := range names {
		if f.HasColumn(name) {
			present = append(present, name)
		} else {
			missing = append(missing, name)
		}
	}

	return f.Select(present), missing
}
