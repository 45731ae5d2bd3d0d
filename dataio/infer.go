package dataio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gmlima/censodata/frame"
)

// BuildFrame turns raw string cells (header row first) into a typed
// frame. Per-column inference tries int64, then float64, then falls
// back to string. Empty cells are nulls and do not vote on the type.
func BuildFrame(records [][]string) (*frame.Frame, error) {
	if len(records) == 0 {
		return frame.New()
	}

	header := records[0]
	body := records[1:]

	cols := make([]*frame.Column, 0, len(header))
	for ci, rawName := range header {
		name := strings.TrimSpace(rawName)
		if name == "" {
			name = fmt.Sprintf("col_%d", ci+1)
		}
		cols = append(cols, buildColumn(name, body, ci))
	}

	return frame.New(cols...)
}

func buildColumn(name string, body [][]string, ci int) *frame.Column {
	rows := len(body)

	cells := make([]string, rows)
	valid := make([]bool, rows)

	allInt := true
	allFloat := true
	anyValue := false

	for ri, record := range body {
		cell := ""
		if ci < len(record) {
			cell = strings.TrimSpace(record[ci])
		}
		cells[ri] = cell

		if cell == "" {
			continue
		}
		valid[ri] = true
		anyValue = true

		if allInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				allFloat = false
			}
		}
	}

	switch {
	case anyValue && allInt:
		ints := make([]int64, rows)
		for ri, cell := range cells {
			if valid[ri] {
				ints[ri], _ = strconv.ParseInt(cell, 10, 64)
			}
		}
		return frame.NewIntColumn(name, ints, valid)

	case anyValue && allFloat:
		floats := make([]float64, rows)
		for ri, cell := range cells {
			if valid[ri] {
				floats[ri], _ = strconv.ParseFloat(cell, 64)
			}
		}
		return frame.NewFloatColumn(name, floats, valid)

	default:
		return frame.NewStringColumn(name, cells, valid)
	}
}
