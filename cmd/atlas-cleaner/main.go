// Cleans the Atlas Brasil 2010 municipal indicators workbook and
// persists the result for the analysis binary and the dashboard.
package main

import (
	"flag"
	"log"

	"github.com/gmlima/censodata/dataio"
	"github.com/gmlima/censodata/filter"
	"github.com/gmlima/censodata/pipeline"
)

func main() {
	source := flag.String("source", "data/atlas2010.xlsx", "Atlas 2010 workbook")
	outDir := flag.String("out", "data/cleaned", "output directory")
	flag.Parse()

	cfg := pipeline.Config{
		Name:          "atlas2010",
		SourcePath:    *source,
		NullThreshold: 0.3,
		Conditions: []filter.Condition{
			filter.Between("populacao_total", 0, 20_000_000),
			filter.Eq("ano", 2010),
			filter.Between("espvida", 0, 100),
			filter.Ge("mort1", 0),
			filter.Ge("mort5", 0),
			filter.GeColumn("mort5", "mort1"),
			filter.Gt("sobre60", 0),
			filter.Le("sobre60", 100),
			filter.Between("fectot", 0, 8),
			filter.Ge("e_anosestudo", 0),
			filter.Lt("e_anosestudo", 20),
			filter.BetweenIncl("t_analf18m", 0, 100),
			filter.Between("renda_per_capita", 0, 50_000),
		},
		Outputs: []pipeline.Output{
			{Path: *outDir + "/atlas2010_cleaned.colf", Format: dataio.FormatColf},
			{Path: *outDir + "/atlas2010_cleaned.csv", Format: dataio.FormatCsv},
		},
	}

	if err := pipeline.New(cfg).Run(); err != nil {
		log.Fatalf("atlas cleaning failed: %v", err)
	}
}
