package colf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gmlima/censodata/bits"
	"github.com/gmlima/censodata/compression"
	"github.com/gmlima/censodata/frame"
)

func Read(r io.Reader) (*frame.Frame, error) {
	reader := bits.NewReader(r, ByteOrder)

	var magic [4]byte
	if err := reader.ReadBytes(magic[:]); err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, ErrBadMagic
	}

	version, err := reader.ReadU8()
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	// dataset uid, currently informational only
	if _, err := reader.ReadUUID(); err != nil {
		return nil, err
	}

	rows64, err := reader.ReadU64()
	if err != nil {
		return nil, err
	}
	colCount, err := reader.ReadU32()
	if err != nil {
		return nil, err
	}

	if rows64 > MaxRows || colCount > MaxColumns {
		return nil, fmt.Errorf("%w: %d rows, %d columns", ErrHeaderOutOfBounds, rows64, colCount)
	}
	rows := int(rows64)

	cols := make([]*frame.Column, 0, colCount)
	for ci := 0; ci < int(colCount); ci++ {
		col, colErr := readColumn(reader, rows)
		if colErr != nil {
			return nil, fmt.Errorf("column %d: %w", ci, colErr)
		}
		cols = append(cols, col)
	}

	return frame.New(cols...)
}

func readColumn(reader *bits.Reader, rows int) (*frame.Column, error) {
	name, err := reader.ReadString()
	if err != nil {
		return nil, err
	}

	typeRaw, err := reader.ReadU8()
	if err != nil {
		return nil, err
	}
	fieldType := frame.FieldType(typeRaw)
	if fieldType > frame.CategoricalField {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFieldType, typeRaw)
	}

	// null count is derivable from the bitmap, stored for cheap stats
	if _, err := reader.ReadU64(); err != nil {
		return nil, err
	}

	uncompressedSize, err := reader.ReadU64()
	if err != nil {
		return nil, err
	}
	compressedSize, err := reader.ReadU64()
	if err != nil {
		return nil, err
	}

	compressed := make([]byte, compressedSize)
	if err := reader.ReadBytes(compressed); err != nil {
		return nil, err
	}

	payload, err := compression.UncompressLz4(compressed, int(uncompressedSize))
	if err != nil {
		return nil, fmt.Errorf("uncompress %s: %w", name, err)
	}

	return decodeColumnPayload(name, fieldType, rows, payload)
}

func decodeColumnPayload(name string, fieldType frame.FieldType, rows int, payload []byte) (*frame.Column, error) {
	bitmapLen := bits.BitmapBytes(rows)
	if len(payload) < bitmapLen {
		return nil, fmt.Errorf("payload of %s too short for validity bitmap", name)
	}

	valid := bits.UnpackBools(payload[:bitmapLen], rows)
	values := bits.NewReader(bytes.NewReader(payload[bitmapLen:]), ByteOrder)

	switch fieldType {
	case frame.Int64Field:
		ints := make([]int64, rows)
		for i := range ints {
			v, err := values.ReadI64()
			if err != nil {
				return nil, err
			}
			ints[i] = v
		}
		return frame.NewIntColumn(name, ints, valid), nil

	case frame.Float64Field:
		floats := make([]float64, rows)
		for i := range floats {
			v, err := values.ReadF64()
			if err != nil {
				return nil, err
			}
			floats[i] = v
		}
		return frame.NewFloatColumn(name, floats, valid), nil

	default:
		strs := make([]string, rows)
		for i := range strs {
			v, err := values.ReadString()
			if err != nil {
				return nil, err
			}
			strs[i] = v
		}
		if fieldType == frame.CategoricalField {
			return frame.NewCategoricalColumn(name, strs, valid), nil
		}
		return frame.NewStringColumn(name, strs, valid), nil
	}
}

func ReadFile(path string) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}
