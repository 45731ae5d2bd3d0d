// Prints descriptive statistics over the cleaned Atlas 2010 dataset
// for manual analysis: national averages, state rankings, municipal
// extremes, correlations, income quartiles and inequality ranges.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/gmlima/censodata/colf"
	"github.com/gmlima/censodata/frame"
	"github.com/gmlima/censodata/stats"
)

func main() {
	source := flag.String("source", "data/cleaned/atlas2010_cleaned.colf", "cleaned Atlas dataset")
	flag.Parse()

	f, err := colf.ReadFile(*source)
	if err != nil {
		log.Fatalf("loading %s: %v", *source, err)
	}

	color.Cyan("=== ATLAS BRASIL 2010 - DATA ANALYSIS ===")

	overview(f)
	nationalAverages(f)
	stateRanking(f)
	municipalExtremes(f)
	correlations(f)
	incomeQuartiles(f)
	mortalityGroups(f)
	regionalPatterns(f)
	inequalityRanges(f)

	color.Cyan("=== Analysis complete ===")
}

func col(f *frame.Frame, name string) *frame.Column {
	c := f.Column(name)
	if c == nil {
		log.Fatalf("dataset misses column %q", name)
	}
	return c
}

func overview(f *frame.Frame) {
	color.Cyan("--- Dataset overview ---")
	fmt.Printf("Total municipalities: %d\n", f.NumRows())
	fmt.Printf("Total states: %d\n", col(f, "uf").DistinctCount())
	fmt.Printf("Columns: %s\n", strings.Join(f.Names(), ", "))
}

func nationalAverages(f *frame.Frame) {
	color.Cyan("--- National averages ---")
	fmt.Printf("Life expectancy: %.2f years\n", stats.Mean(col(f, "espvida")))
	fmt.Printf("Infant mortality: %.2f per 1,000 births\n", stats.Mean(col(f, "mort1")))
	fmt.Printf("Years of schooling: %.2f\n", stats.Mean(col(f, "e_anosestudo")))
	fmt.Printf("Illiteracy rate (18+): %.2f%%\n", stats.Mean(col(f, "t_analf18m")))
	fmt.Printf("Per capita income: R$ %.2f\n", stats.Mean(col(f, "renda_per_capita")))
	fmt.Printf("Fertility rate: %.2f children/woman\n", stats.Mean(col(f, "fectot")))
	fmt.Printf("Total population: %.0f\n", stats.Sum(col(f, "populacao_total")))
}

func stateRanking(f *frame.Frame) {
	color.Cyan("--- State ranking by life expectancy ---")

	groups, err := stats.GroupSummary(f, "uf", []string{
		"espvida", "mort1", "e_anosestudo", "t_analf18m", "renda_per_capita", "populacao_total",
	})
	if err != nil {
		log.Fatalf("state ranking: %v", err)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Means["espvida"] > groups[j].Means["espvida"]
	})

	printState := func(g stats.GroupStat) {
		fmt.Printf("%-25s %4d mun  life %.2f  mort %.2f  school %.2f  illit %.2f%%  income R$ %.2f\n",
			g.Key, g.Count, g.Means["espvida"], g.Means["mort1"],
			g.Means["e_anosestudo"], g.Means["t_analf18m"], g.Means["renda_per_capita"])
	}

	fmt.Println("Top 10 states:")
	for i := 0; i < len(groups) && i < 10; i++ {
		printState(groups[i])
	}
	fmt.Println("Bottom 10 states:")
	for i := len(groups) - 1; i >= 0 && i >= len(groups)-10; i-- {
		printState(groups[i])
	}
}

func municipalExtremes(f *frame.Frame) {
	color.Cyan("--- Municipal extremes by life expectancy ---")

	espvida := col(f, "espvida")
	uf := col(f, "uf")
	mun := col(f, "nome_mun")
	income := col(f, "renda_per_capita")

	rows := make([]int, 0, f.NumRows())
	for i := 0; i < f.NumRows(); i++ {
		if espvida.Valid[i] {
			rows = append(rows, i)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return espvida.Float(rows[i]) > espvida.Float(rows[j])
	})

	printRow := func(row int) {
		fmt.Printf("%-25s (%s)  life %.2f  income R$ %.2f\n",
			mun.FormatValue(row), uf.FormatValue(row),
			espvida.Float(row), income.Float(row))
	}

	fmt.Println("Top 10 municipalities:")
	for i := 0; i < len(rows) && i < 10; i++ {
		printRow(rows[i])
	}
	fmt.Println("Bottom 10 municipalities:")
	for i := len(rows) - 1; i >= 0 && i >= len(rows)-10; i-- {
		printRow(rows[i])
	}
}

func correlations(f *frame.Frame) {
	color.Cyan("--- Correlation analysis ---")

	pairs := [][2]string{
		{"renda_per_capita", "espvida"},
		{"renda_per_capita", "mort1"},
		{"renda_per_capita", "mort5"},
		{"mort1", "espvida"},
		{"mort5", "espvida"},
		{"e_anosestudo", "espvida"},
	}
	for _, p := range pairs {
		fmt.Printf("%s vs %s: %+.3f\n", p[0], p[1], stats.Corr(col(f, p[0]), col(f, p[1])))
	}
}

func incomeQuartiles(f *frame.Frame) {
	color.Cyan("--- Income quartile analysis ---")

	income := col(f, "renda_per_capita")
	q1 := stats.Quantile(income, 0.25)
	q2 := stats.Quantile(income, 0.50)
	q3 := stats.Quantile(income, 0.75)
	fmt.Printf("Quartile thresholds: Q1 R$ %.2f  Q2 R$ %.2f  Q3 R$ %.2f\n", q1, q2, q3)

	espvida := col(f, "espvida")
	mort1 := col(f, "mort1")

	type bucket struct {
		n                       int
		income, life, mortality float64
	}
	buckets := [4]bucket{}
	labels := [4]string{"Q1 poorest", "Q2 low", "Q3 medium", "Q4 richest"}

	for row := 0; row < f.NumRows(); row++ {
		if income.IsNull(row) {
			continue
		}
		v := income.Float(row)

		b := 3
		switch {
		case v <= q1:
			b = 0
		case v <= q2:
			b = 1
		case v <= q3:
			b = 2
		}

		buckets[b].n++
		buckets[b].income += v
		if espvida.Valid[row] {
			buckets[b].life += espvida.Float(row)
		}
		if mort1.Valid[row] {
			buckets[b].mortality += mort1.Float(row)
		}
	}

	fmt.Println("Health outcomes by income quartile:")
	for i, b := range buckets {
		if b.n == 0 {
			continue
		}
		n := float64(b.n)
		fmt.Printf("%-10s %5d mun  avg income R$ %.2f  avg life %.2f  avg infant mort %.2f\n",
			labels[i], b.n, b.income/n, b.life/n, b.mortality/n)
	}
}

type mortBucket struct {
	n                           int
	infant, child, life, income float64
}

// bucketByInfantMortality splits municipalities into low (<15),
// medium (<25) and high infant-mortality groups, accumulating the
// columns the report averages.
func bucketByInfantMortality(f *frame.Frame) ([3]mortBucket, error) {
	mort1 := f.Column("mort1")
	if mort1 == nil {
		return [3]mortBucket{}, fmt.Errorf("dataset misses column %q", "mort1")
	}
	mort5 := f.Column("mort5")
	espvida := f.Column("espvida")
	income := f.Column("renda_per_capita")

	var buckets [3]mortBucket

	for row := 0; row < f.NumRows(); row++ {
		if mort1.IsNull(row) {
			continue
		}
		v := mort1.Float(row)

		b := 2
		switch {
		case v < 15:
			b = 0
		case v < 25:
			b = 1
		}

		buckets[b].n++
		buckets[b].infant += v
		if mort5 != nil && mort5.Valid[row] {
			buckets[b].child += mort5.Float(row)
		}
		if espvida != nil && espvida.Valid[row] {
			buckets[b].life += espvida.Float(row)
		}
		if income != nil && income.Valid[row] {
			buckets[b].income += income.Float(row)
		}
	}

	return buckets, nil
}

func mortalityGroups(f *frame.Frame) {
	color.Cyan("--- Child mortality groups ---")

	buckets, err := bucketByInfantMortality(f)
	if err != nil {
		log.Fatalf("mortality groups: %v", err)
	}

	labels := [3]string{"Low (<15)", "Medium (15-25)", "High (>25)"}
	for i, b := range buckets {
		if b.n == 0 {
			continue
		}
		n := float64(b.n)
		fmt.Printf("%-15s %5d mun  avg infant mort %.2f  avg child mort %.2f  avg life %.2f  avg income R$ %.2f\n",
			labels[i], b.n, b.infant/n, b.child/n, b.life/n, b.income/n)
	}
}

type regionSummary struct {
	n                   int
	life, income, illit float64
}

// regionStats averages the rows whose state belongs to the region.
func regionStats(f *frame.Frame, states []string) regionSummary {
	uf := f.Column("uf")
	espvida := f.Column("espvida")
	income := f.Column("renda_per_capita")
	illit := f.Column("t_analf18m")

	member := map[string]struct{}{}
	for _, st := range states {
		member[st] = struct{}{}
	}

	var sum regionSummary
	for row := 0; row < f.NumRows(); row++ {
		if uf == nil || uf.IsNull(row) {
			continue
		}
		if _, ok := member[uf.FormatValue(row)]; !ok {
			continue
		}

		sum.n++
		if espvida != nil && espvida.Valid[row] {
			sum.life += espvida.Float(row)
		}
		if income != nil && income.Valid[row] {
			sum.income += income.Float(row)
		}
		if illit != nil && illit.Valid[row] {
			sum.illit += illit.Float(row)
		}
	}
	return sum
}

func regionalPatterns(f *frame.Frame) {
	color.Cyan("--- Regional patterns ---")

	regions := []struct {
		name   string
		states []string
	}{
		{"Northeast", []string{
			"Alagoas", "Bahia", "Ceara", "Maranhao", "Paraiba",
			"Pernambuco", "Piaui", "Sergipe", "Rio Grande do Norte",
		}},
		{"South", []string{"Rio Grande do Sul", "Santa Catarina", "Parana"}},
		{"Southeast", []string{"Sao Paulo", "Rio de Janeiro", "Minas Gerais", "Espirito Santo"}},
	}

	for _, region := range regions {
		sum := regionStats(f, region.states)
		if sum.n == 0 {
			continue
		}
		n := float64(sum.n)
		fmt.Printf("%s (%d municipalities):\n", region.name, sum.n)
		fmt.Printf("  avg life expectancy: %.2f years\n", sum.life/n)
		fmt.Printf("  avg income: R$ %.2f\n", sum.income/n)
		fmt.Printf("  avg illiteracy: %.2f%%\n", sum.illit/n)
	}
}

func inequalityRanges(f *frame.Frame) {
	color.Cyan("--- Inequality ranges ---")

	if min, max, ok := stats.MinMax(col(f, "espvida")); ok {
		fmt.Printf("Life expectancy: %.2f - %.2f years (gap %.2f)\n", min, max, max-min)
	}
	if min, max, ok := stats.MinMax(col(f, "renda_per_capita")); ok && min > 0 {
		fmt.Printf("Income: R$ %.2f - R$ %.2f (ratio %.1fx)\n", min, max, max/min)
	}
	if min, max, ok := stats.MinMax(col(f, "t_analf18m")); ok {
		fmt.Printf("Illiteracy: %.2f%% - %.2f%%\n", min, max)
	}
	if min, max, ok := stats.MinMax(col(f, "mort1")); ok {
		fmt.Printf("Infant mortality: %.2f - %.2f per 1,000\n", min, max)
	}
}
