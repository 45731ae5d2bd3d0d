package dataio

import (
	"bufio"
	"encoding/csv"
	"os"

	"github.com/gmlima/censodata/frame"
)

func loadCsv(path string) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return BuildFrame(records)
}

func saveCsv(path string, f *frame.Frame) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(f.Names()); err != nil {
		file.Close()
		return err
	}

	record := make([]string, f.NumCols())
	for ri := 0; ri < f.NumRows(); ri++ {
		for ci, col := range f.Columns() {
			record[ci] = col.FormatValue(ri)
		}
		if err := writer.Write(record); err != nil {
			file.Close()
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
