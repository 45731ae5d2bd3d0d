package bits

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestPackUnpackBools(t *testing.T) {

	in := []bool{true, false, true, true, false, false, false, true, true, false}

	out := UnpackBools(PackBools(in), len(in))

	if len(out) != len(in) {
		t.Errorf("Expected %d but got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("Expected %v but got %v at %d", in[i], out[i], i)
		}
	}
}

func TestBitmapBytes(t *testing.T) {

	if got := BitmapBytes(0); got != 0 {
		t.Errorf("Expected %d but got %d", 0, got)
	}
	if got := BitmapBytes(8); got != 1 {
		t.Errorf("Expected %d but got %d", 1, got)
	}
	if got := BitmapBytes(9); got != 2 {
		t.Errorf("Expected %d but got %d", 2, got)
	}
}

func TestWriterByteLayout(t *testing.T) {

	w := NewWriter(binary.LittleEndian)
	w.PutU16(0x0102)
	w.PutU32(0x03040506)
	w.PutU64(0x0708090a0b0c0d0e)

	want := []byte{
		0x02, 0x01,
		0x06, 0x05, 0x04, 0x03,
		0x0e, 0x0d, 0x0c, 0x0b, 0x0a, 0x09, 0x08, 0x07,
	}

	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("Expected %x but got %x", want, w.Bytes())
	}

	be := NewWriter(binary.BigEndian)
	be.PutU16(0x0102)

	if !bytes.Equal(be.Bytes(), []byte{0x01, 0x02}) {
		t.Errorf("Expected %x but got %x", []byte{0x01, 0x02}, be.Bytes())
	}
}

func TestWriterReaderRoundtrip(t *testing.T) {

	uid := uuid.New()

	w := NewWriter(binary.LittleEndian)
	w.PutU8(7)
	w.PutU32(123456)
	w.PutU64(1 << 40)
	w.PutI64(-42)
	w.PutF64(3.5)
	w.PutUUID(uid)
	w.PutString("espvida")
	w.PutString("")

	r := NewReader(bytes.NewReader(w.Bytes()), binary.LittleEndian)

	if v, err := r.ReadU8(); err != nil || v != 7 {
		t.Errorf("Expected %d but got %d (%v)", 7, v, err)
	}
	if v, err := r.ReadU32(); err != nil || v != 123456 {
		t.Errorf("Expected %d but got %d (%v)", 123456, v, err)
	}
	if v, err := r.ReadU64(); err != nil || v != 1<<40 {
		t.Errorf("Expected %d but got %d (%v)", uint64(1)<<40, v, err)
	}
	if v, err := r.ReadI64(); err != nil || v != -42 {
		t.Errorf("Expected %d but got %d (%v)", -42, v, err)
	}
	if v, err := r.ReadF64(); err != nil || v != 3.5 {
		t.Errorf("Expected %.2f but got %.2f (%v)", 3.5, v, err)
	}
	if v, err := r.ReadUUID(); err != nil || v != uid {
		t.Errorf("Expected %s but got %s (%v)", uid, v, err)
	}
	if v, err := r.ReadString(); err != nil || v != "espvida" {
		t.Errorf("Expected %q but got %q (%v)", "espvida", v, err)
	}
	if v, err := r.ReadString(); err != nil || v != "" {
		t.Errorf("Expected %q but got %q (%v)", "", v, err)
	}
}

func TestReaderEOF(t *testing.T) {

	r := NewReader(bytes.NewReader([]byte{1, 2}), binary.LittleEndian)

	if _, err := r.ReadU32(); !errors.Is(err, ErrEOF) {
		t.Errorf("Expected %v but got %v", ErrEOF, err)
	}
}

func TestReaderRejectsHugeString(t *testing.T) {

	w := NewWriter(binary.LittleEndian)
	w.PutU32(uint32(MaxDecodedStringLn + 1))

	r := NewReader(bytes.NewReader(w.Bytes()), binary.LittleEndian)

	if _, err := r.ReadString(); !errors.Is(err, ErrStringTooLarge) {
		t.Errorf("Expected %v but got %v", ErrStringTooLarge, err)
	}
}
