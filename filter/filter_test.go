package filter

import (
	"testing"

	"github.com/gmlima/censodata/frame"
)

// Population bounds keep 100 and 500, dropping the negative and the
// implausibly large value.
func TestApplyPopulationBounds(t *testing.T) {

	f, err := frame.New(frame.NewIntColumn("populacao_total", []int64{-5, 100, 25000000, 500}, nil))
	if err != nil {
		t.Fatal(err)
	}

	out, report, err := Apply(f, []Condition{Between("populacao_total", 0, 20_000_000)})
	if err != nil {
		t.Fatal(err)
	}

	if out.NumRows() != 2 {
		t.Errorf("Expected %d but got %d", 2, out.NumRows())
	}
	if report.RowsRemoved != 2 {
		t.Errorf("Expected %d but got %d", 2, report.RowsRemoved)
	}

	ints := out.Column("populacao_total").Ints
	if ints[0] != 100 || ints[1] != 500 {
		t.Errorf("Expected [100 500] but got %v", ints)
	}
}

func TestApplyIsIdempotent(t *testing.T) {

	f, _ := frame.New(
		frame.NewFloatColumn("espvida", []float64{73.1, -2, 68.4, 120}, nil),
		frame.NewFloatColumn("mort1", []float64{12, 8, 15, 3}, nil),
	)

	conds := []Condition{
		Between("espvida", 0, 100),
		Ge("mort1", 0),
	}

	once, _, err := Apply(f, conds)
	if err != nil {
		t.Fatal(err)
	}
	twice, report, err := Apply(once, conds)
	if err != nil {
		t.Fatal(err)
	}

	if twice.NumRows() != once.NumRows() {
		t.Errorf("Expected %d but got %d", once.NumRows(), twice.NumRows())
	}
	if report.RowsRemoved != 0 {
		t.Errorf("Expected %d but got %d", 0, report.RowsRemoved)
	}
}

func TestApplyCrossColumn(t *testing.T) {

	f, _ := frame.New(
		frame.NewFloatColumn("mort5", []float64{20, 10, 30}, nil),
		frame.NewFloatColumn("mort1", []float64{15, 12, 30}, nil),
	)

	out, _, err := Apply(f, []Condition{GeColumn("mort5", "mort1")})
	if err != nil {
		t.Fatal(err)
	}

	if out.NumRows() != 2 {
		t.Errorf("Expected %d but got %d", 2, out.NumRows())
	}
	if v := out.Column("mort5").Floats[1]; v != 30 {
		t.Errorf("Expected %.0f but got %.0f", 30.0, v)
	}
}

func TestApplyNullsNeverMatch(t *testing.T) {

	f, _ := frame.New(frame.NewFloatColumn("v", []float64{5, 0, 7}, []bool{true, false, true}))

	out, _, err := Apply(f, []Condition{Ge("v", 0)})
	if err != nil {
		t.Fatal(err)
	}
	if out.NumRows() != 2 {
		t.Errorf("Expected %d but got %d", 2, out.NumRows())
	}
}

func TestApplyConjunctionAcrossColumns(t *testing.T) {

	f, _ := frame.New(
		frame.NewIntColumn("ano", []int64{2010, 2010, 2000, 2010}, nil),
		frame.NewFloatColumn("espvida", []float64{73, 120, 70, 68}, nil),
	)

	out, _, err := Apply(f, []Condition{
		Eq("ano", 2010),
		Between("espvida", 0, 100),
	})
	if err != nil {
		t.Fatal(err)
	}

	if out.NumRows() != 2 {
		t.Errorf("Expected %d but got %d", 2, out.NumRows())
	}
}

func TestApplyNonEmptyStrings(t *testing.T) {

	f, _ := frame.New(frame.NewStringColumn("CD_SETOR", []string{"A", "", "C"}, []bool{true, true, false}))

	out, _, err := Apply(f, []Condition{NonEmpty("CD_SETOR")})
	if err != nil {
		t.Fatal(err)
	}
	if out.NumRows() != 1 {
		t.Errorf("Expected %d but got %d", 1, out.NumRows())
	}
}

// All-digit sector codes come out of type inference as Int64; the
// non-empty check must still work there as a plain validity check.
func TestApplyNonEmptyNumericKeyColumn(t *testing.T) {

	f, _ := frame.New(frame.NewIntColumn("CD_SETOR",
		[]int64{355030805000001, 0, 355030805000002}, []bool{true, false, true}))

	out, _, err := Apply(f, []Condition{NonEmpty("CD_SETOR")})
	if err != nil {
		t.Fatal(err)
	}

	if out.NumRows() != 2 {
		t.Errorf("Expected %d but got %d", 2, out.NumRows())
	}
	if v := out.Column("CD_SETOR").Ints[1]; v != 355030805000002 {
		t.Errorf("Expected %d but got %d", int64(355030805000002), v)
	}
}

func TestApplyUnknownColumn(t *testing.T) {

	f, _ := frame.New(frame.NewIntColumn("v", []int64{1}, nil))

	if _, _, err := Apply(f, []Condition{Gt("ghost", 0)}); err == nil {
		t.Errorf("Expected error for unknown filter column")
	}
}

func TestApplyTypeMismatch(t *testing.T) {

	f, _ := frame.New(frame.NewStringColumn("name", []string{"x"}, nil))

	if _, _, err := Apply(f, []Condition{Gt("name", 0)}); err == nil {
		t.Errorf("Expected error for numeric filter on text column")
	}
}
