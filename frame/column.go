package frame

import (
	"strconv"
	"strings"
)

// Column is a single named, typed column with a validity mask.
// Valid[i] == false means the value at row i is null, the backing
// slot then holds the zero value and must not be interpreted.
type Column struct {
	Name string
	Type FieldType

	Ints   []int64
	Floats []float64
	Strs   []string

	Valid []bool
}

func NewIntColumn(name string, values []int64, valid []bool) *Column {
	return &Column{
		Name:  name,
		Type:  Int64Field,
		Ints:  values,
		Valid: fillValid(valid, len(values)),
	}
}

func NewFloatColumn(name string, values []float64, valid []bool) *Column {
	return &Column{
		Name:   name,
		Type:   Float64Field,
		Floats: values,
		Valid:  fillValid(valid, len(values)),
	}
}

func NewStringColumn(name string, values []string, valid []bool) *Column {
	return &Column{
		Name:  name,
		Type:  StringField,
		Strs:  values,
		Valid: fillValid(valid, len(values)),
	}
}

func NewCategoricalColumn(name string, values []string, valid []bool) *Column {
	c := NewStringColumn(name, values, valid)
	c.Type = CategoricalField
	return c
}

func fillValid(valid []bool, n int) []bool {
	if valid != nil {
		return valid
	}
	valid = make([]bool, n)
	for i := range valid {
		valid[i] = true
	}
	return valid
}

func (c *Column) Len() int {
	return len(c.Valid)
}

func (c *Column) IsNull(row int) bool {
	return !c.Valid[row]
}

func (c *Column) NullCount() int {
	nulls := 0
	for _, v := range c.Valid {
		if !v {
			nulls++
		}
	}
	return nulls
}

// NullRatio reports nulls/rows. Undefined at zero rows, reported as 0.
func (c *Column) NullRatio() float64 {
	n := c.Len()
	if n == 0 {
		return 0
	}
	return float64(c.NullCount()) / float64(n)
}

func (c *Column) DistinctCount() int {
	seen := make(map[string]struct{}, c.Len())
	var b strings.Builder
	for i := 0; i < c.Len(); i++ {
		if !c.Valid[i] {
			continue
		}
		b.Reset()
		c.EncodeValue(&b, i)
		seen[b.String()] = struct{}{}
	}
	return len(seen)
}

// Float reads a numeric cell as float64. Row must be valid and the
// column numeric.
func (c *Column) Float(row int) float64 {
	if c.Type == Int64Field {
		return float64(c.Ints[row])
	}
	return c.Floats[row]
}

// EncodeValue appends a canonical encoding of the cell to b, used for
// row keys in dedup and grouping. Null cells encode as a single marker
// byte so that (null) and ("") stay distinct.
func (c *Column) EncodeValue(b *strings.Builder, row int) {
	if !c.Valid[row] {
		b.WriteByte(0x01)
		return
	}
	switch c.Type {
	case Int64Field:
		b.WriteString(strconv.FormatInt(c.Ints[row], 10))
	case Float64Field:
		b.WriteString(strconv.FormatFloat(c.Floats[row], 'g', -1, 64))
	default:
		b.WriteString(c.Strs[row])
	}
}

// FormatValue renders the cell for console/CSV output, empty for null.
func (c *Column) FormatValue(row int) string {
	if !c.Valid[row] {
		return ""
	}
	switch c.Type {
	case Int64Field:
		return strconv.FormatInt(c.Ints[row], 10)
	case Float64Field:
		return strconv.FormatFloat(c.Floats[row], 'g', -1, 64)
	default:
		return c.Strs[row]
	}
}

func (c *Column) take(indices []int32) *Column {
	out := &Column{
		Name:  c.Name,
		Type:  c.Type,
		Valid: make([]bool, len(indices)),
	}

	switch c.Type {
	case Int64Field:
		out.Ints = make([]int64, len(indices))
		for i, idx := range indices {
			out.Ints[i] = c.Ints[idx]
		}
	case Float64Field:
		out.Floats = make([]float64, len(indices))
		for i, idx := range indices {
			out.Floats[i] = c.Floats[idx]
		}
	default:
		out.Strs = make([]string, len(indices))
		for i, idx := range indices {
			out.Strs[i] = c.Strs[idx]
		}
	}

	for i, idx := range indices {
		out.Valid[i] = c.Valid[idx]
	}

	return out
}
