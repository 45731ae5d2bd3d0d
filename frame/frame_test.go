package frame

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRejectsDuplicateNames(t *testing.T) {

	_, err := New(
		NewIntColumn("a", []int64{1}, nil),
		NewIntColumn("a", []int64{2}, nil),
	)

	if !errors.Is(err, ErrDuplicateColumnName) {
		t.Errorf("Expected %v but got %v", ErrDuplicateColumnName, err)
	}
}

func TestNewRejectsLengthMismatch(t *testing.T) {

	_, err := New(
		NewIntColumn("a", []int64{1, 2}, nil),
		NewIntColumn("b", []int64{1}, nil),
	)

	if !errors.Is(err, ErrColumnLengthMismatch) {
		t.Errorf("Expected %v but got %v", ErrColumnLengthMismatch, err)
	}
}

func TestTakeReordersRows(t *testing.T) {

	f, err := New(
		NewIntColumn("id", []int64{10, 20, 30, 40}, nil),
		NewStringColumn("name", []string{"a", "b", "c", "d"}, nil),
	)
	if err != nil {
		t.Fatal(err)
	}

	out := f.Take([]int32{3, 1})

	if out.NumRows() != 2 {
		t.Errorf("Expected %d but got %d", 2, out.NumRows())
	}
	if got := out.Column("id").Ints[0]; got != 40 {
		t.Errorf("Expected %d but got %d", 40, got)
	}
	if got := out.Column("name").Strs[1]; got != "b" {
		t.Errorf("Expected %s but got %s", "b", got)
	}
}

func TestTakePreservesValidity(t *testing.T) {

	f, _ := New(NewFloatColumn("v", []float64{1, 0, 3}, []bool{true, false, true}))

	out := f.Take([]int32{1, 2})

	if !out.Column("v").IsNull(0) {
		t.Errorf("Expected null at row 0")
	}
	if out.Column("v").IsNull(1) {
		t.Errorf("Expected valid at row 1")
	}
}

func TestNullRatio(t *testing.T) {

	c := NewIntColumn("v", []int64{0, 0, 0, 0}, []bool{true, false, false, true})

	if got := c.NullRatio(); got != 0.5 {
		t.Errorf("Expected %.2f but got %.2f", 0.5, got)
	}

	empty := NewIntColumn("v", nil, nil)
	if got := empty.NullRatio(); got != 0 {
		t.Errorf("Expected %.2f but got %.2f", 0.0, got)
	}
}

func TestRowKeyDistinguishesNullFromEmpty(t *testing.T) {

	c := NewStringColumn("s", []string{"", ""}, []bool{true, false})

	var b strings.Builder
	k0 := RowKey(&b, 0, []*Column{c})
	k1 := RowKey(&b, 1, []*Column{c})

	if k0 == k1 {
		t.Errorf("null and empty string encode to the same key %q", k0)
	}
}

func TestRowAllNull(t *testing.T) {

	f, _ := New(
		NewIntColumn("a", []int64{0, 1}, []bool{false, true}),
		NewStringColumn("b", []string{"", "x"}, []bool{false, false}),
	)

	if !f.RowAllNull(0) {
		t.Errorf("Expected row 0 all null")
	}
	if f.RowAllNull(1) {
		t.Errorf("Expected row 1 not all null")
	}
}

func TestDistinctCount(t *testing.T) {

	c := NewStringColumn("uf", []string{"SP", "RJ", "SP", "", "SP"}, []bool{true, true, true, false, true})

	if got := c.DistinctCount(); got != 2 {
		t.Errorf("Expected %d but got %d", 2, got)
	}
}
