// Serves the favelas dashboard over the cleaned colf outputs.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/gmlima/censodata/dashboard"
)

func main() {
	addr := flag.String("addr", ":8077", "listen address")
	dataDir := flag.String("data", "data/cleaned", "cleaned dataset directory")
	flag.Parse()

	store, err := dashboard.Open(context.Background(), dashboard.StorePaths{
		Favelas:    *dataDir + "/favelas_comunidades_2022_cleaned.colf",
		Gini:       *dataDir + "/indice_gini_cleaned.colf",
		Population: *dataDir + "/populacao_uf_2022_cleaned.colf",
	})
	if err != nil {
		log.Fatalf("opening datasets: %v", err)
	}

	log.Printf("dashboard listening on %s", *addr)
	if err := http.ListenAndServe(*addr, dashboard.NewRouter(store)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
