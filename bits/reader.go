package bits

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
)

var (
	ErrEOF             = errors.New("end of file")
	ErrStringTooLarge  = errors.New("string length prefix too large")
	MaxDecodedStringLn = 1 << 24
)

// Reader decodes values written by Writer. Short reads surface as
// wrapped io errors, the codec treats any of them as corruption.
type Reader struct {
	readBuffer [16]byte

	buf   io.Reader
	order binary.ByteOrder
}

func NewReader(buf io.Reader, order binary.ByteOrder) *Reader {
	return &Reader{buf: buf, order: order}
}

func (r *Reader) fill(size int) error {
	_, err := io.ReadFull(r.buf, r.readBuffer[:size])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrEOF
	}
	return err
}

func (r *Reader) ReadU8() (uint8, error) {
	if err := r.fill(1); err != nil {
		return 0, err
	}
	return r.readBuffer[0], nil
}

func (r *Reader) ReadU16() (uint16, error) {
	if err := r.fill(2); err != nil {
		return 0, err
	}
	return r.order.Uint16(r.readBuffer[:2]), nil
}

func (r *Reader) ReadU32() (uint32, error) {
	if err := r.fill(4); err != nil {
		return 0, err
	}
	return r.order.Uint32(r.readBuffer[:4]), nil
}

func (r *Reader) ReadU64() (uint64, error) {
	if err := r.fill(8); err != nil {
		return 0, err
	}
	return r.order.Uint64(r.readBuffer[:8]), nil
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (r *Reader) ReadUUID() (result uuid.UUID, err error) {
	err = r.ReadBytes(result[:])
	return result, err
}

func (r *Reader) ReadBytes(out []byte) error {
	_, err := io.ReadFull(r.buf, out)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrEOF
	}
	return err
}

// ReadString decodes a u32 length-prefixed string. The prefix is
// bounded so a corrupt file cannot ask for a giant allocation.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadU32()
	if err != nil {
		return "", err
	}
	if int(n) > MaxDecodedStringLn {
		return "", fmt.Errorf("%w: %d", ErrStringTooLarge, n)
	}
	if n == 0 {
		return "", nil
	}

	buf := make([]byte, n)
	if err := r.ReadBytes(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
