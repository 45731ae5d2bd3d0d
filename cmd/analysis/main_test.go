package main

import (
	"testing"

	"github.com/gmlima/censodata/frame"
)

func analysisFrame(t *testing.T) *frame.Frame {
	t.Helper()

	f, err := frame.New(
		frame.NewStringColumn("uf", []string{"Ceara", "Bahia", "Parana", "Sao Paulo", "Amazonas"}, nil),
		frame.NewFloatColumn("espvida", []float64{68, 70, 76, 75, 71}, nil),
		frame.NewFloatColumn("renda_per_capita", []float64{300, 400, 900, 1100, 500}, nil),
		frame.NewFloatColumn("t_analf18m", []float64{25, 20, 6, 5, 10}, nil),
		frame.NewFloatColumn("mort1", []float64{30, 22, 10, 12, 18}, nil),
		frame.NewFloatColumn("mort5", []float64{35, 25, 12, 14, 21}, nil),
	)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestRegionStats(t *testing.T) {

	f := analysisFrame(t)

	northeast := regionStats(f, []string{
		"Alagoas", "Bahia", "Ceara", "Maranhao", "Paraiba",
		"Pernambuco", "Piaui", "Sergipe", "Rio Grande do Norte",
	})

	if northeast.n != 2 {
		t.Errorf("Expected %d but got %d", 2, northeast.n)
	}
	if got := northeast.life / float64(northeast.n); got != 69 {
		t.Errorf("Expected %.2f but got %.2f", 69.0, got)
	}
	if got := northeast.income / float64(northeast.n); got != 350 {
		t.Errorf("Expected %.2f but got %.2f", 350.0, got)
	}

	// Amazonas belongs to none of the three reported regions
	south := regionStats(f, []string{"Rio Grande do Sul", "Santa Catarina", "Parana"})
	if south.n != 1 {
		t.Errorf("Expected %d but got %d", 1, south.n)
	}
}

func TestBucketByInfantMortality(t *testing.T) {

	f := analysisFrame(t)

	buckets, err := bucketByInfantMortality(f)
	if err != nil {
		t.Fatal(err)
	}

	// 10 and 12 low, 18 and 22 medium, 30 high
	if buckets[0].n != 2 {
		t.Errorf("Expected %d but got %d", 2, buckets[0].n)
	}
	if buckets[1].n != 2 {
		t.Errorf("Expected %d but got %d", 2, buckets[1].n)
	}
	if buckets[2].n != 1 {
		t.Errorf("Expected %d but got %d", 1, buckets[2].n)
	}

	if got := buckets[2].infant; got != 30 {
		t.Errorf("Expected %.2f but got %.2f", 30.0, got)
	}
	if got := buckets[0].child / 2; got != 13 {
		t.Errorf("Expected %.2f but got %.2f", 13.0, got)
	}
}

func TestBucketByInfantMortalitySkipsNulls(t *testing.T) {

	f, err := frame.New(
		frame.NewFloatColumn("mort1", []float64{10, 99}, []bool{true, false}),
		frame.NewFloatColumn("mort5", []float64{12, 99}, []bool{true, false}),
		frame.NewFloatColumn("espvida", []float64{75, 99}, []bool{true, false}),
		frame.NewFloatColumn("renda_per_capita", []float64{800, 99}, []bool{true, false}),
	)
	if err != nil {
		t.Fatal(err)
	}

	buckets, err := bucketByInfantMortality(f)
	if err != nil {
		t.Fatal(err)
	}

	if total := buckets[0].n + buckets[1].n + buckets[2].n; total != 1 {
		t.Errorf("Expected %d but got %d", 1, total)
	}
}
