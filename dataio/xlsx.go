package dataio

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gmlima/censodata/frame"
)

var ErrSheetOutOfRange = errors.New("sheet index out of range")

func loadXlsx(path string, sheet int) (*frame.Frame, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if sheet == 0 {
		sheet = 1
	}

	sheets := file.GetSheetList()
	if sheet < 1 || sheet > len(sheets) {
		return nil, fmt.Errorf("%w: %d of %d", ErrSheetOutOfRange, sheet, len(sheets))
	}

	records, err := file.GetRows(sheets[sheet-1])
	if err != nil {
		return nil, err
	}

	return BuildFrame(records)
}

func saveXlsx(path string, f *frame.Frame) error {
	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Sheet1"

	header := make([]any, f.NumCols())
	for i, name := range f.Names() {
		header[i] = name
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	row := make([]any, f.NumCols())
	for ri := 0; ri < f.NumRows(); ri++ {
		for ci, col := range f.Columns() {
			if col.IsNull(ri) {
				row[ci] = nil
				continue
			}
			switch col.Type {
			case frame.Int64Field:
				row[ci] = col.Ints[ri]
			case frame.Float64Field:
				row[ci] = col.Floats[ri]
			default:
				row[ci] = col.Strs[ri]
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, ri+2)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return file.SaveAs(path)
}
