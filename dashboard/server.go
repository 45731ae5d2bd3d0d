package dashboard

import (
	"embed"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

//go:embed index.html
var indexPage embed.FS

// NewRouter wires the read-only JSON API plus the single-page UI.
func NewRouter(store *Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		page, err := indexPage.ReadFile("index.html")
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/overview", func(w http.ResponseWriter, req *http.Request) {
			view, err := store.Overview()
			if err != nil {
				renderError(w, req, err)
				return
			}
			render.JSON(w, req, view)
		})

		r.Get("/states", func(w http.ResponseWriter, req *http.Request) {
			view, err := store.StateStats()
			if err != nil {
				renderError(w, req, err)
				return
			}
			render.JSON(w, req, view)
		})

		r.Get("/municipalities", func(w http.ResponseWriter, req *http.Request) {
			view, err := store.MunicipalStats(queryInt(req, "top", 20))
			if err != nil {
				renderError(w, req, err)
				return
			}
			render.JSON(w, req, view)
		})

		r.Get("/communities", func(w http.ResponseWriter, req *http.Request) {
			view, err := store.CommunityStats(queryInt(req, "top", 20))
			if err != nil {
				renderError(w, req, err)
				return
			}
			render.JSON(w, req, view)
		})

		r.Get("/inequality", func(w http.ResponseWriter, req *http.Request) {
			view, err := store.Inequality()
			if err != nil {
				renderError(w, req, err)
				return
			}
			render.JSON(w, req, view)
		})

		r.Get("/explorer", func(w http.ResponseWriter, req *http.Request) {
			states, query := explorerParams(req)
			matched, rows := store.Explore(states, query, queryInt(req, "limit", 100))
			render.JSON(w, req, map[string]any{
				"matched": matched,
				"rows":    rows,
			})
		})

		r.Get("/explorer/download", func(w http.ResponseWriter, req *http.Request) {
			states, query := explorerParams(req)
			f := store.ExploreFrame(states, query)

			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="favelas_filtradas.csv"`)

			cw := csv.NewWriter(w)
			cw.Write(f.Names())
			record := make([]string, f.NumCols())
			for row := 0; row < f.NumRows(); row++ {
				for i, c := range f.Columns() {
					record[i] = c.FormatValue(row)
				}
				cw.Write(record)
			}
			cw.Flush()
		})
	})

	return r
}

func renderError(w http.ResponseWriter, req *http.Request, err error) {
	render.Status(req, http.StatusInternalServerError)
	render.JSON(w, req, map[string]string{"error": err.Error()})
}

func queryInt(req *http.Request, name string, def int) int {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func explorerParams(req *http.Request) (states []string, query string) {
	if raw := req.URL.Query().Get("states"); raw != "" {
		for _, st := range strings.Split(raw, ",") {
			if st = strings.TrimSpace(st); st != "" {
				states = append(states, st)
			}
		}
	}
	return states, req.URL.Query().Get("q")
}
