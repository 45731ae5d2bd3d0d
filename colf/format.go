// Package colf is the columnar on-disk format the cleaners produce and
// the dashboard consumes. One header, then one lz4-compressed block
// per column holding a validity bitmap and the values.
package colf

import (
	"encoding/binary"
	"errors"
)

const (
	Version uint8 = 1

	// sane upper bounds so a corrupt header cannot drive allocations
	MaxColumns = 1 << 14
	MaxRows    = 1 << 31
)

var Magic = [4]byte{'C', 'L', 'F', '1'}

var ByteOrder = binary.LittleEndian

var (
	ErrBadMagic           = errors.New("not a colf file")
	ErrUnsupportedVersion = errors.New("unsupported colf version")
	ErrHeaderOutOfBounds  = errors.New("colf header out of bounds")
	ErrUnknownFieldType   = errors.New("unknown field type in colf column")
)
