package frame

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrColumnLengthMismatch = errors.New("columns have different lengths")
	ErrDuplicateColumnName  = errors.New("duplicate column name")
)

// Frame is an in-memory table: named typed columns, row aligned.
// Stages of the cleaning pipeline consume one Frame and produce a new
// one, no stage keeps a reference to its input afterwards.
type Frame struct {
	cols []*Column
}

func New(cols ...*Column) (*Frame, error) {
	seen := map[string]struct{}{}
	rows := -1

	for _, c := range cols {
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumnName, c.Name)
		}
		seen[c.Name] = struct{}{}

		if rows == -1 {
			rows = c.Len()
		} else if c.Len() != rows {
			return nil, fmt.Errorf("%w: %s has %d rows, expected %d", ErrColumnLengthMismatch, c.Name, c.Len(), rows)
		}
	}

	return &Frame{cols: cols}, nil
}

func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

func (f *Frame) NumCols() int {
	return len(f.cols)
}

func (f *Frame) Columns() []*Column {
	return f.cols
}

func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column or nil.
func (f *Frame) Column(name string) *Column {
	for _, c := range f.cols {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (f *Frame) HasColumn(name string) bool {
	return f.Column(name) != nil
}

func (f *Frame) AddColumn(c *Column) error {
	if f.HasColumn(c.Name) {
		return fmt.Errorf("%w: %s", ErrDuplicateColumnName, c.Name)
	}
	if len(f.cols) > 0 && c.Len() != f.NumRows() {
		return fmt.Errorf("%w: %s has %d rows, expected %d", ErrColumnLengthMismatch, c.Name, c.Len(), f.NumRows())
	}
	f.cols = append(f.cols, c)
	return nil
}

// Take builds a new Frame from the given row indices, in the given
// order.
func (f *Frame) Take(indices []int32) *Frame {
	out := make([]*Column, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.take(indices)
	}
	return &Frame{cols: out}
}

// Select builds a new Frame restricted to the named columns, in the
// given order. Unknown names are the caller's problem and panic.
func (f *Frame) Select(names []string) *Frame {
	out := make([]*Column, 0, len(names))
	for _, name := range names {
		c := f.Column(name)
		if c == nil {
			panic("select of unknown column " + name)
		}
		out = append(out, c)
	}
	return &Frame{cols: out}
}

// RowKey encodes the row's values across the given columns into a
// single string usable as a map key.
func RowKey(b *strings.Builder, row int, cols []*Column) string {
	b.Reset()
	for _, c := range cols {
		c.EncodeValue(b, row)
		b.WriteByte(0x00)
	}
	return b.String()
}

// RowAllNull reports whether every column is null at the given row.
func (f *Frame) RowAllNull(row int) bool {
	for _, c := range f.cols {
		if c.Valid[row] {
			return false
		}
	}
	return true
}

// Head renders up to n rows as formatted strings, header first.
func (f *Frame) Head(n int) [][]string {
	if n > f.NumRows() {
		n = f.NumRows()
	}

	out := make([][]string, 0, n+1)
	out = append(out, f.Names())

	for row := 0; row < n; row++ {
		line := make([]string, len(f.cols))
		for i, c := range f.cols {
			line[i] = c.FormatValue(row)
		}
		out = append(out, line)
	}
	return out
}
