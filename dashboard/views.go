package dashboard

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/gmlima/censodata/frame"
	"github.com/gmlima/censodata/stats"
)

// Column names of the cleaned favelas dataset, fixed by the cleaner.
const (
	colSetor   = "CD_SETOR"
	colFcu     = "CD_FCU"
	colNomeFcu = "NM_FCU"
	colMun     = "CD_MUN"
	colNomeMun = "NM_MUN"
	colUF      = "CD_UF"
	colNomeUF  = "NM_UF"
)

type Overview struct {
	Setores    int `json:"setores"`
	Favelas    int `json:"favelas"`
	Municipios int `json:"municipios"`
	Estados    int `json:"estados"`
	Rows       int `json:"rows"`
	Cols       int `json:"cols"`
}

type StateStat struct {
	CodigoUF        string  `json:"cd_uf"`
	NomeUF          string  `json:"nm_uf"`
	TotalFcu        int     `json:"total_fcu"`
	TotalSetores    int     `json:"total_setores"`
	TotalMunicipios int     `json:"total_municipios"`
	Populacao       int64   `json:"populacao"`
	FcuPer100k      float64 `json:"fcu_per_100k"`
	Gini            float64 `json:"indice_gini"`
	HasGini         bool    `json:"has_gini"`
}

type MunicipalStat struct {
	CodigoMun    string `json:"cd_mun"`
	NomeMun      string `json:"nm_mun"`
	NomeUF       string `json:"nm_uf"`
	TotalFcu     int    `json:"total_fcu"`
	TotalSetores int    `json:"total_setores"`
}

type CommunityStat struct {
	CodigoFcu  string `json:"cd_fcu"`
	NomeFcu    string `json:"nm_fcu"`
	NomeMun    string `json:"nm_mun"`
	NomeUF     string `json:"nm_uf"`
	NumSetores int    `json:"num_setores"`
}

type InequalityView struct {
	States          []StateStat `json:"states"`
	AvgGini         float64     `json:"avg_gini"`
	CorrGiniFcu     float64     `json:"corr_gini_fcu"`
	CorrGiniDensity float64     `json:"corr_gini_density"`
}

func (s *Store) Overview() (Overview, error) {
	v, err := s.cached("overview", func() (any, error) {
		f := s.favelas
		for _, name := range []string{colSetor, colFcu, colMun, colUF} {
			if !f.HasColumn(name) {
				return nil, fmt.Errorf("favelas dataset misses column %q", name)
			}
		}
		return Overview{
			Setores:    f.Column(colSetor).DistinctCount(),
			Favelas:    f.Column(colFcu).DistinctCount(),
			Municipios: f.Column(colMun).DistinctCount(),
			Estados:    f.Column(colUF).DistinctCount(),
			Rows:       f.NumRows(),
			Cols:       f.NumCols(),
		}, nil
	})
	if err != nil {
		return Overview{}, err
	}
	return v.(Overview), nil
}

type groupAcc struct {
	labels  []string
	setores map[string]struct{}
	fcus    map[string]struct{}
	muns    map[string]struct{}
}

// groupDistinct buckets rows by the key column and fills the distinct
// sets. labelCols are carried along from the first row of each group.
func groupDistinct(f *frame.Frame, key string, labelCols []string) (map[string]*groupAcc, error) {
	keyCol := f.Column(key)
	if keyCol == nil {
		return nil, fmt.Errorf("favelas dataset misses column %q", key)
	}

	labels := make([]*frame.Column, len(labelCols))
	for i, name := range labelCols {
		labels[i] = f.Column(name)
		if labels[i] == nil {
			return nil, fmt.Errorf("favelas dataset misses column %q", name)
		}
	}

	setorCol := f.Column(colSetor)
	fcuCol := f.Column(colFcu)
	munCol := f.Column(colMun)

	groups := map[string]*groupAcc{}

	for row := 0; row < f.NumRows(); row++ {
		if keyCol.IsNull(row) {
			continue
		}
		k := keyCol.FormatValue(row)

		acc, ok := groups[k]
		if !ok {
			acc = &groupAcc{
				labels:  make([]string, len(labels)),
				setores: map[string]struct{}{},
				fcus:    map[string]struct{}{},
				muns:    map[string]struct{}{},
			}
			for i, lc := range labels {
				acc.labels[i] = lc.FormatValue(row)
			}
			groups[k] = acc
		}

		if setorCol != nil && !setorCol.IsNull(row) {
			acc.setores[setorCol.FormatValue(row)] = struct{}{}
		}
		if fcuCol != nil && !fcuCol.IsNull(row) {
			acc.fcus[fcuCol.FormatValue(row)] = struct{}{}
		}
		if munCol != nil && !munCol.IsNull(row) {
			acc.muns[munCol.FormatValue(row)] = struct{}{}
		}
	}

	return groups, nil
}

// StateStats aggregates per state and joins population and Gini in,
// sorted by favela count descending.
func (s *Store) StateStats() ([]StateStat, error) {
	v, err := s.cached("states", func() (any, error) {
		groups, err := groupDistinct(s.favelas, colUF, []string{colNomeUF})
		if err != nil {
			return nil, err
		}

		popByUF := lookupTable(s.population, colNomeUF, "populacao")
		giniByUF := lookupTable(s.gini, colUF, "indice_gini")

		keys := maps.Keys(groups)
		sort.Strings(keys)

		out := make([]StateStat, 0, len(keys))
		for _, k := range keys {
			acc := groups[k]
			stat := StateStat{
				CodigoUF:        k,
				NomeUF:          acc.labels[0],
				TotalFcu:        len(acc.fcus),
				TotalSetores:    len(acc.setores),
				TotalMunicipios: len(acc.muns),
			}

			if pop, ok := popByUF[stat.NomeUF]; ok && pop > 0 {
				stat.Populacao = int64(pop)
				stat.FcuPer100k = float64(stat.TotalFcu) / pop * 100000
			}
			if gini, ok := giniByUF[k]; ok {
				stat.Gini = gini
				stat.HasGini = true
			}

			out = append(out, stat)
		}

		sort.Slice(out, func(i, j int) bool {
			return out[i].TotalFcu > out[j].TotalFcu
		})
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]StateStat), nil
}

// lookupTable maps key column values to a numeric column, skipping
// null entries. Missing columns yield an empty map, the join is then
// simply absent from the view.
func lookupTable(f *frame.Frame, key, value string) map[string]float64 {
	out := map[string]float64{}
	if f == nil {
		return out
	}

	keyCol := f.Column(key)
	valueCol := f.Column(value)
	if keyCol == nil || valueCol == nil || !valueCol.Type.Numeric() {
		return out
	}

	for row := 0; row < f.NumRows(); row++ {
		if keyCol.IsNull(row) || valueCol.IsNull(row) {
			continue
		}
		out[keyCol.FormatValue(row)] = valueCol.Float(row)
	}
	return out
}

func (s *Store) MunicipalStats(topN int) ([]MunicipalStat, error) {
	v, err := s.cached("municipalities", func() (any, error) {
		groups, err := groupDistinct(s.favelas, colMun, []string{colNomeMun, colNomeUF})
		if err != nil {
			return nil, err
		}

		keys := maps.Keys(groups)
		sort.Strings(keys)

		out := make([]MunicipalStat, 0, len(keys))
		for _, k := range keys {
			acc := groups[k]
			out = append(out, MunicipalStat{
				CodigoMun:    k,
				NomeMun:      acc.labels[0],
				NomeUF:       acc.labels[1],
				TotalFcu:     len(acc.fcus),
				TotalSetores: len(acc.setores),
			})
		}

		sort.Slice(out, func(i, j int) bool {
			return out[i].TotalFcu > out[j].TotalFcu
		})
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	all := v.([]MunicipalStat)
	if topN > 0 && topN < len(all) {
		return all[:topN], nil
	}
	return all, nil
}

func (s *Store) CommunityStats(topN int) ([]CommunityStat, error) {
	v, err := s.cached("communities", func() (any, error) {
		groups, err := groupDistinct(s.favelas, colFcu, []string{colNomeFcu, colNomeMun, colNomeUF})
		if err != nil {
			return nil, err
		}

		keys := maps.Keys(groups)
		sort.Strings(keys)

		out := make([]CommunityStat, 0, len(keys))
		for _, k := range keys {
			acc := groups[k]
			out = append(out, CommunityStat{
				CodigoFcu:  k,
				NomeFcu:    acc.labels[0],
				NomeMun:    acc.labels[1],
				NomeUF:     acc.labels[2],
				NumSetores: len(acc.setores),
			})
		}

		sort.Slice(out, func(i, j int) bool {
			return out[i].NumSetores > out[j].NumSetores
		})
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	all := v.([]CommunityStat)
	if topN > 0 && topN < len(all) {
		return all[:topN], nil
	}
	return all, nil
}

// Inequality correlates the Gini index with favela counts, raw and
// population adjusted.
func (s *Store) Inequality() (InequalityView, error) {
	states, err := s.StateStats()
	if err != nil {
		return InequalityView{}, err
	}

	var ginis, fcus, densities []float64
	sum := 0.0

	for _, st := range states {
		if !st.HasGini {
			continue
		}
		sum += st.Gini
		ginis = append(ginis, st.Gini)
		fcus = append(fcus, float64(st.TotalFcu))
		densities = append(densities, st.FcuPer100k)
	}

	view := InequalityView{
		States:          states,
		CorrGiniFcu:     stats.CorrValues(ginis, fcus),
		CorrGiniDensity: stats.CorrValues(ginis, densities),
	}
	if len(ginis) > 0 {
		view.AvgGini = sum / float64(len(ginis))
	}

	if math.IsNaN(view.CorrGiniFcu) {
		view.CorrGiniFcu = 0
	}
	if math.IsNaN(view.CorrGiniDensity) {
		view.CorrGiniDensity = 0
	}
	return view, nil
}

// exploreIndices matches raw rows against state names and a
// case-insensitive substring over municipality and community names.
func (s *Store) exploreIndices(states []string, query string) []int32 {
	f := s.favelas

	stateSet := map[string]struct{}{}
	for _, st := range states {
		stateSet[st] = struct{}{}
	}
	query = strings.ToLower(strings.TrimSpace(query))

	ufCol := f.Column(colNomeUF)
	munCol := f.Column(colNomeMun)
	fcuCol := f.Column(colNomeFcu)

	matched := make([]int32, 0, f.NumRows())

	for row := 0; row < f.NumRows(); row++ {
		if len(stateSet) > 0 {
			if ufCol == nil || ufCol.IsNull(row) {
				continue
			}
			if _, ok := stateSet[ufCol.FormatValue(row)]; !ok {
				continue
			}
		}

		if query != "" {
			hit := false
			if munCol != nil && !munCol.IsNull(row) &&
				strings.Contains(strings.ToLower(munCol.FormatValue(row)), query) {
				hit = true
			}
			if !hit && fcuCol != nil && !fcuCol.IsNull(row) &&
				strings.Contains(strings.ToLower(fcuCol.FormatValue(row)), query) {
				hit = true
			}
			if !hit {
				continue
			}
		}

		matched = append(matched, int32(row))
	}

	return matched
}

// Explore returns up to limit matching rows as column-name maps plus
// the total match count.
func (s *Store) Explore(states []string, query string, limit int) (matched int, rows []map[string]string) {
	f := s.favelas
	indices := s.exploreIndices(states, query)

	for _, row := range indices {
		if limit <= 0 || len(rows) < limit {
			record := make(map[string]string, f.NumCols())
			for _, c := range f.Columns() {
				record[c.Name] = c.FormatValue(int(row))
			}
			rows = append(rows, record)
		}
	}

	return len(indices), rows
}

// ExploreFrame is the full filtered table, used for CSV downloads.
func (s *Store) ExploreFrame(states []string, query string) *frame.Frame {
	return s.favelas.Take(s.exploreIndices(states, query))
}
