package funfact

import (
	"context"
	"sort"
	"sync"

	"github.com/ethanbaker/states-api/pkg/funfact"
)

// InMemoryStore provides an in-memory implementation of StoreInterface for testing
// and for running without a database
type InMemoryStore struct {
	records map[string]*funfact.Record
	mutex   sync.RWMutex
}

// NewInMemoryStore creates a new in-memory fun fact store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[string]*funfact.Record),
		mutex:   sync.RWMutex{},
	}
}

// GetRecord retrieves a copy of the record for a state code
func (s *InMemoryStore) GetRecord(ctx context.Context, code string) (*funfact.Record, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, exists := s.records[funfact.NormalizeCode(code)]
	if !exists {
		return nil, funfact.ErrRecordNotFound
	}

	return record.Clone(), nil
}

// ListRecords returns copies of all records ordered by state code
func (s *InMemoryStore) ListRecords(ctx context.Context) ([]*funfact.Record, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	records := make([]*funfact.Record, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record.Clone())
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].StateCode < records[j].StateCode
	})

	return records, nil
}

// Mutate applies fn while holding the write lock
func (s *InMemoryStore) Mutate(ctx context.Context, code string, fn funfact.MutateFunc) (*funfact.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	code = funfact.NormalizeCode(code)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Hand fn a copy so a failed mutation leaves the stored record untouched
	facts, err := fn(s.records[code].Clone())
	if err != nil {
		return nil, err
	}

	record := &funfact.Record{StateCode: code, Funfacts: make([]string, len(facts))}
	copy(record.Funfacts, facts)
	s.records[code] = record

	return record.Clone(), nil
}

// Ping always succeeds for the in-memory store
func (s *InMemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store
func (s *InMemoryStore) Close() error {
	return nil
}
