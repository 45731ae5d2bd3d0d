// Package dashboard serves the cleaned census outputs over HTTP:
// aggregated views, narrative statistics and a filterable explorer.
// Strictly read-only, nothing is ever written back to the data files.
package dashboard

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/gmlima/censodata/colf"
	"github.com/gmlima/censodata/frame"
)

type StorePaths struct {
	Favelas    string
	Gini       string
	Population string
}

// Store holds the three cleaned frames and memoizes the aggregated
// views. singleflight keeps concurrent first requests from computing
// the same aggregation twice.
type Store struct {
	favelas    *frame.Frame
	gini       *frame.Frame
	population *frame.Frame

	flight singleflight.Group

	mu    sync.RWMutex
	cache map[string]any
}

// Open loads the three colf files concurrently and fails on the first
// missing or corrupt one.
func Open(ctx context.Context, paths StorePaths) (*Store, error) {
	s := &Store{cache: map[string]any{}}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		s.favelas, err = colf.ReadFile(paths.Favelas)
		return err
	})
	g.Go(func() (err error) {
		s.gini, err = colf.ReadFile(paths.Gini)
		return err
	})
	g.Go(func() (err error) {
		s.population, err = colf.ReadFile(paths.Population)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStore wraps already-loaded frames, used by tests.
func NewStore(favelas, gini, population *frame.Frame) *Store {
	return &Store{
		favelas:    favelas,
		gini:       gini,
		population: population,
		cache:      map[string]any{},
	}
}

func (s *Store) Favelas() *frame.Frame {
	return s.favelas
}

func (s *Store) cached(key string, compute func() (any, error)) (any, error) {
	s.mu.RLock()
	if v, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return v, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.flight.Do(key, func() (any, error) {
		v, err := compute()
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[key] = v
		s.mu.Unlock()
		return v, nil
	})
	return v, err
}
