package clean

import (
	"strings"

	"github.com/gmlima/censodata/frame"
)

// TrimStrings strips leading/trailing whitespace on every textual
// column, in place. A value-level transform, no rows are removed.
// Returns the number of cells actually changed.
func TrimStrings(f *frame.Frame) int {
	changed := 0

	for _, c := range f.Columns() {
		if !c.Type.Textual() {
			continue
		}
		for i, s := range c.Strs {
			if !c.Valid[i] {
				continue
			}
			trimmed := strings.TrimSpace(s)
			if trimmed != s {
				c.Strs[i] = trimmed
				changed++
			}
		}
	}

	return changed
}
