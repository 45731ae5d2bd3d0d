// Cleans the three Censo 2022 companion datasets: the favelas and
// urban communities sector table, the per-state Gini index and the
// per-state population, all consumed by the dashboard.
package main

import (
	"flag"
	"log"

	"github.com/gmlima/censodata/agg"
	"github.com/gmlima/censodata/dataio"
	"github.com/gmlima/censodata/filter"
	"github.com/gmlima/censodata/pipeline"
)

func favelasConfig(dataDir, outDir string) pipeline.Config {
	return pipeline.Config{
		Name:          "favelas2022",
		SourcePath:    dataDir + "/favelas_comunidades_2022.xlsx",
		DedupeKeys:    []string{"CD_SETOR"},
		NullThreshold: -1,
		KeepColumns: []string{
			"CD_SETOR", "CD_FCU", "NM_FCU",
			"CD_MUN", "NM_MUN", "CD_UF", "NM_UF",
		},
		Conditions: []filter.Condition{
			filter.NonEmpty("CD_SETOR"),
			filter.NonEmpty("CD_FCU"),
		},
		Aggregations: []agg.GroupSpec{
			{
				Keys: []string{"CD_MUN"},
				Counts: []agg.DistinctCount{
					{Of: "CD_FCU", As: "total_fcu_mun"},
					{Of: "CD_SETOR", As: "total_setores_mun"},
				},
			},
			{
				Keys: []string{"CD_UF"},
				Counts: []agg.DistinctCount{
					{Of: "CD_FCU", As: "total_fcu_uf"},
					{Of: "CD_SETOR", As: "total_setores_uf"},
					{Of: "CD_MUN", As: "total_municipios_uf"},
				},
			},
		},
		Outputs: []pipeline.Output{
			{Path: outDir + "/favelas_comunidades_2022_cleaned.colf", Format: dataio.FormatColf},
		},
	}
}

func giniConfig(dataDir, outDir string) pipeline.Config {
	return pipeline.Config{
		Name:          "gini",
		SourcePath:    dataDir + "/indice_gini_uf.csv",
		NullThreshold: -1,
		Conditions: []filter.Condition{
			filter.BetweenIncl("indice_gini", 0, 1),
		},
		Outputs: []pipeline.Output{
			{Path: outDir + "/indice_gini_cleaned.colf", Format: dataio.FormatColf},
		},
	}
}

func populationConfig(dataDir, outDir string) pipeline.Config {
	return pipeline.Config{
		Name:          "populacao_uf",
		SourcePath:    dataDir + "/populacao_uf_2022.csv",
		NullThreshold: -1,
		Conditions: []filter.Condition{
			filter.Gt("populacao", 0),
		},
		Outputs: []pipeline.Output{
			{Path: outDir + "/populacao_uf_2022_cleaned.colf", Format: dataio.FormatColf},
		},
	}
}

func main() {
	dataDir := flag.String("data", "data", "raw dataset directory")
	outDir := flag.String("out", "data/cleaned", "output directory")
	flag.Parse()

	configs := []pipeline.Config{
		favelasConfig(*dataDir, *outDir),
		giniConfig(*dataDir, *outDir),
		populationConfig(*dataDir, *outDir),
	}

	for _, cfg := range configs {
		if err := pipeline.New(cfg).Run(); err != nil {
			log.Fatalf("[%s] cleaning failed: %v", cfg.Name, err)
		}
	}
}
