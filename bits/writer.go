package bits

import (
	"encoding/binary"
	"math"

	"github.com/google/uuid"
)

// Writer encodes fixed-width values into a growable buffer. All of
// the column payloads and file headers go through it.
type Writer struct {
	data  []byte
	order binary.AppendByteOrder
}

func NewWriter(order binary.AppendByteOrder) *Writer {
	return &Writer{
		data:  make([]byte, 0, 512),
		order: order,
	}
}

func (w *Writer) Reset() {
	w.data = w.data[:0]
}

func (w *Writer) Len() int {
	return len(w.data)
}

func (w *Writer) Bytes() []byte {
	return w.data
}

func (w *Writer) PutU8(v uint8) {
	w.data = append(w.data, v)
}

func (w *Writer) PutU16(v uint16) {
	w.data = w.order.AppendUint16(w.data, v)
}

func (w *Writer) PutU32(v uint32) {
	w.data = w.order.AppendUint32(w.data, v)
}

func (w *Writer) PutU64(v uint64) {
	w.data = w.order.AppendUint64(w.data, v)
}

func (w *Writer) PutI64(v int64) {
	w.data = w.order.AppendUint64(w.data, uint64(v))
}

func (w *Writer) PutF64(v float64) {
	w.data = w.order.AppendUint64(w.data, math.Float64bits(v))
}

func (w *Writer) PutUUID(id uuid.UUID) {
	w.data = append(w.data, id[:]...)
}

func (w *Writer) PutBytes(b []byte) {
	w.data = append(w.data, b...)
}

// PutString writes a u32 length prefix followed by the raw bytes.
func (w *Writer) PutString(s string) {
	w.PutU32(uint32(len(s)))
	w.data = append(w.data, s...)
}
