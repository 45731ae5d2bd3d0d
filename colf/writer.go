package colf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/gmlima/censodata/bits"
	"github.com/gmlima/censodata/compression"
	"github.com/gmlima/censodata/frame"
)

// Write encodes the whole frame. Layout:
//
//	magic, version, dataset uuid, rows u64, cols u32
//	per column: name, type u8, null count u64,
//	            uncompressed size u64, compressed size u64, lz4 block
//
// The per-column payload is a validity bitmap followed by the values,
// fixed 8 bytes for numerics, length-prefixed bytes for strings
// (nulls written as zero values).
func Write(w io.Writer, f *frame.Frame) error {
	header := bits.NewWriter(ByteOrder)

	header.PutBytes(Magic[:])
	header.PutU8(Version)
	header.PutUUID(uuid.New())
	header.PutU64(uint64(f.NumRows()))
	header.PutU32(uint32(f.NumCols()))

	if _, err := w.Write(header.Bytes()); err != nil {
		return err
	}

	payload := bits.NewWriter(ByteOrder)
	var compressed bytes.Buffer

	for _, col := range f.Columns() {
		payload.Reset()
		encodeColumnPayload(payload, col)

		compressed.Reset()
		if err := compression.CompressLz4(payload.Bytes(), &compressed); err != nil {
			return fmt.Errorf("compress column %s: %w", col.Name, err)
		}

		header.Reset()
		header.PutString(col.Name)
		header.PutU8(uint8(col.Type))
		header.PutU64(uint64(col.NullCount()))
		header.PutU64(uint64(payload.Len()))
		header.PutU64(uint64(compressed.Len()))

		if _, err := w.Write(header.Bytes()); err != nil {
			return err
		}
		if _, err := w.Write(compressed.Bytes()); err != nil {
			return err
		}
	}

	return nil
}

func encodeColumnPayload(payload *bits.Writer, col *frame.Column) {
	payload.PutBytes(bits.PackBools(col.Valid))

	switch col.Type {
	case frame.Int64Field:
		for _, v := range col.Ints {
			payload.PutI64(v)
		}
	case frame.Float64Field:
		for _, v := range col.Floats {
			payload.PutF64(v)
		}
	default:
		for _, v := range col.Strs {
			payload.PutString(v)
		}
	}
}

func WriteFile(path string, f *frame.Frame) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if err := Write(file, f); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
