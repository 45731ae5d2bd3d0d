package clean

import (
	"testing"

	"github.com/gmlima/censodata/frame"
)

func TestDedupeRowsKeepsFirst(t *testing.T) {

	f, err := frame.New(
		frame.NewIntColumn("id", []int64{1, 1, 2}, nil),
		frame.NewStringColumn("uf", []string{"SP", "SP", "RJ"}, nil),
	)
	if err != nil {
		t.Fatal(err)
	}

	out, report := DedupeRows(f)

	if out.NumRows() != 2 {
		t.Errorf("Expected %d but got %d", 2, out.NumRows())
	}
	if report.RowsRemoved != 1 {
		t.Errorf("Expected %d but got %d", 1, report.RowsRemoved)
	}
	if got := out.Column("uf").Strs[1]; got != "RJ" {
		t.Errorf("Expected %s but got %s", "RJ", got)
	}
}

func TestDedupeByKeyKeepsFirstPerKey(t *testing.T) {

	f, err := frame.New(
		frame.NewStringColumn("CD_SETOR", []string{"A", "B", "A", "C", "B"}, nil),
		frame.NewIntColumn("v", []int64{1, 2, 3, 4, 5}, nil),
	)
	if err != nil {
		t.Fatal(err)
	}

	out, report, err := DedupeByKey(f, []string{"CD_SETOR"})
	if err != nil {
		t.Fatal(err)
	}

	if out.NumRows() != 3 {
		t.Errorf("Expected %d but got %d", 3, out.NumRows())
	}
	if report.RowsRemoved != 2 {
		t.Errorf("Expected %d but got %d", 2, report.RowsRemoved)
	}
	if got := out.Column("CD_SETOR").DistinctCount(); got != out.NumRows() {
		t.Errorf("Expected key unique after dedupe, %d distinct in %d rows", got, out.NumRows())
	}
	// first occurrence wins
	if got := out.Column("v").Ints[0]; got != 1 {
		t.Errorf("Expected %d but got %d", 1, got)
	}
}

func TestDedupeByKeyUnknownColumn(t *testing.T) {

	f, _ := frame.New(frame.NewIntColumn("v", []int64{1}, nil))

	if _, _, err := DedupeByKey(f, []string{"missing"}); err == nil {
		t.Errorf("Expected error for unknown key column")
	}
}

// Three rows, one full duplicate and one all-null row, leaves a single
// clean row.
func TestCleaningCollapsesDuplicatesAndNullRows(t *testing.T) {

	f, err := frame.New(
		frame.NewIntColumn("a", []int64{1, 1, 0}, []bool{true, true, false}),
		frame.NewStringColumn("b", []string{"x", "x", ""}, []bool{true, true, false}),
	)
	if err != nil {
		t.Fatal(err)
	}

	out, _ := DedupeRows(f)
	out, _ = DropAllNullRows(out)

	if out.NumRows() != 1 {
		t.Errorf("Expected %d but got %d", 1, out.NumRows())
	}
}

func TestDropAllNullRowsKeepsPartialRows(t *testing.T) {

	f, _ := frame.New(
		frame.NewIntColumn("a", []int64{0, 2}, []bool{false, true}),
		frame.NewStringColumn("b", []string{"x", ""}, []bool{true, false}),
	)

	out, report := DropAllNullRows(f)

	if out.NumRows() != 2 {
		t.Errorf("Expected %d but got %d", 2, out.NumRows())
	}
	if report.RowsRemoved != 0 {
		t.Errorf("Expected %d but got %d", 0, report.RowsRemoved)
	}
}

func TestTrimStrings(t *testing.T) {

	f, _ := frame.New(
		frame.NewStringColumn("name", []string{"  São Paulo ", "Rio", "  "}, []bool{true, true, false}),
		frame.NewIntColumn("v", []int64{1, 2, 3}, nil),
	)

	changed := TrimStrings(f)

	if changed != 1 {
		t.Errorf("Expected %d but got %d", 1, changed)
	}
	if got := f.Column("name").Strs[0]; got != "São Paulo" {
		t.Errorf("Expected %q but got %q", "São Paulo", got)
	}
	// null cells stay untouched
	if got := f.Column("name").Strs[2]; got != "  " {
		t.Errorf("Expected %q but got %q", "  ", got)
	}
}

func TestPruneHighNullColumnsThresholdBoundary(t *testing.T) {

	// half column has null ratio exactly 0.5
	f, _ := frame.New(
		frame.NewIntColumn("full", []int64{1, 2, 3, 4}, nil),
		frame.NewIntColumn("half", []int64{1, 0, 3, 0}, []bool{true, false, true, false}),
	)

	out, dropped, skipped := PruneHighNullColumns(f, 0.5)

	if skipped {
		t.Errorf("Expected skipped=false")
	}
	if len(dropped) != 0 {
		t.Errorf("Expected no drops at the boundary but got %v", dropped)
	}
	if !out.HasColumn("half") {
		t.Errorf("Expected half column retained at ratio == threshold")
	}

	out, dropped, _ = PruneHighNullColumns(f, 0.49)

	if len(dropped) != 1 || dropped[0] != "half" {
		t.Errorf("Expected [half] but got %v", dropped)
	}
	if out.HasColumn("half") {
		t.Errorf("Expected half column removed below threshold")
	}
}

func TestPruneHighNullColumnsZeroRows(t *testing.T) {

	f, _ := frame.New(frame.NewIntColumn("v", nil, nil))

	out, dropped, skipped := PruneHighNullColumns(f, 0.3)

	if !skipped {
		t.Errorf("Expected skipped=true at zero rows")
	}
	if len(dropped) != 0 {
		t.Errorf("Expected no drops but got %v", dropped)
	}
	if out.NumCols() != 1 {
		t.Errorf("Expected %d but got %d", 1, out.NumCols())
	}
}

func TestKeepColumns(t *testing.T) {

	f, _ := frame.New(
		frame.NewIntColumn("a", []int64{1}, nil),
		frame.NewIntColumn("b", []int64{2}, nil),
		frame.NewIntColumn("c", []int64{3}, nil),
	)

	out, missing := KeepColumns(f, []string{"c", "a", "ghost"})

	if out.NumCols() != 2 {
		t.Errorf("Expected %d but got %d", 2, out.NumCols())
	}
	if got := out.Names()[0]; got != "c" {
		t.Errorf("Expected %s but got %s", "c", got)
	}
	if len(missing) != 1 || missing[0] != "ghost" {
		t.Errorf("Expected [ghost] but got %v", missing)
	}
}

func TestKeepColumnsEmptyRequestPassesThrough(t *testing.T) {

	f, _ := frame.New(frame.NewIntColumn("a", []int64{1}, nil))

	out, missing := KeepColumns(f, nil)

	if out.NumCols() != 1 || len(missing) != 0 {
		t.Errorf("Expected pass-through but got %d cols, missing %v", out.NumCols(), missing)
	}
}
