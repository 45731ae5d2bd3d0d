package compression

import (
	"bytes"
	"errors"
	"io"

	"github.com/pierrec/lz4/v4"
)

var ErrTrailingData = errors.New("trailing data after compressed block")

func CompressLz4(src []byte, output *bytes.Buffer) error {
	zw := lz4.NewWriter(output)

	if _, err := zw.Write(src); err != nil {
		return err
	}

	flushErr := zw.Flush()
	if flushErr != nil {
		return flushErr
	}

	return zw.Close()
}

// UncompressLz4 inflates a block written by CompressLz4.
// uncompressedSize comes from the file header, a short or long block
// means the file is corrupt.
func UncompressLz4(src []byte, uncompressedSize int) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(src))

	out := make([]byte, uncompressedSize)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, err
	}

	var tail [1]byte
	if n, _ := zr.Read(tail[:]); n != 0 {
		return nil, ErrTrailingData
	}

	return out, nil
}
