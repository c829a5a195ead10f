package funfact

import (
	"context"
	"errors"
	"strings"
)

// ErrRecordNotFound is returned by stores when no record exists for a state code
var ErrRecordNotFound = errors.New("fun fact record not found")

// Record holds the ordered fun facts submitted for a single state
type Record struct {
	StateCode string   `json:"stateCode"`
	Funfacts  []string `json:"funfacts"`
}

// Clone returns a deep copy of the record
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	return &Record{
		StateCode: r.StateCode,
		Funfacts:  copyFacts(r.Funfacts),
	}
}

// MutateFunc receives the current record (nil when none exists) and returns
// the fact list to persist. Returning an error aborts the mutation
type MutateFunc func(existing *Record) ([]string, error)

// StoreInterface defines the persistence operations for fun fact records
type StoreInterface interface {
	// GetRecord returns the record for a code or ErrRecordNotFound
	GetRecord(ctx context.Context, code string) (*Record, error)

	// ListRecords returns every stored record
	ListRecords(ctx context.Context) ([]*Record, error)

	// Mutate loads, modifies and saves a record as one atomic step, creating it when absent
	Mutate(ctx context.Context, code string, fn MutateFunc) (*Record, error)

	// Ping checks that the store is reachable
	Ping(ctx context.Context) error

	Close() error
}

// NormalizeCode converts a state code to its stored form (trimmed, uppercase)
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func copyFacts(facts []string) []string {
	out := make([]string, len(facts))
	copy(out, facts)
	return out
}
