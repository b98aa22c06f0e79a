package dataset

import (
	"log"
	"sync"
	"time"

	"accident-analytics-api/config"
	"accident-analytics-api/metrics"
	"accident-analytics-api/models"
)

// LoadFunc produces a canonical table. Tests inject fixture loaders.
type LoadFunc func() ([]models.AccidentRecord, error)

// Store is a read-through cache over the full pipeline: the first Load
// reads, joins and derives the two source files; every later call
// returns the same slice. The table is never mutated after
// construction, so callers may share it freely.
type Store struct {
	mu     sync.Mutex
	load   LoadFunc
	table  []models.AccidentRecord
	loaded bool
}

// NewStore builds a store over the configured CSV pair.
func NewStore(cfg config.DataConfig) *Store {
	return NewStoreWithLoader(func() ([]models.AccidentRecord, error) {
		return Load(cfg.AccidentsPath, cfg.BikersPath)
	})
}

// NewStoreWithLoader builds a store around an arbitrary loader.
func NewStoreWithLoader(load LoadFunc) *Store {
	return &Store{load: load}
}

// Load returns the canonical table, loading it on first use. A failed
// load is not cached; the next call retries.
func (s *Store) Load() ([]models.AccidentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.table, nil
	}

	start := time.Now()
	table, err := s.load()
	if err != nil {
		return nil, err
	}
	metrics.DatasetLoadDuration.Observe(time.Since(start).Seconds())
	metrics.DatasetRows.Set(float64(len(table)))
	log.Printf("canonical table loaded: %d rows (%.2fs)", len(table), time.Since(start).Seconds())

	s.table = table
	s.loaded = true
	return s.table, nil
}

// Load runs the full pipeline once: read both sources, inner-join on
// the accident id, derive the calendar fields.
func Load(accidentsPath, bikersPath string) ([]models.AccidentRecord, error) {
	accidents, err := LoadAccidents(accidentsPath)
	if err != nil {
		return nil, err
	}
	bikers, err := LoadBikers(bikersPath)
	if err != nil {
		return nil, err
	}
	recs := InnerJoin(accidents, bikers)
	DeriveFields(recs)
	return recs, nil
}
