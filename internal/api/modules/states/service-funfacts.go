package states

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ethanbaker/states-api/pkg/funfact"
	"github.com/ethanbaker/states-api/pkg/sdk"
)

// AddFunFacts merges the submitted facts into the state's record, creating it
// when absent. Facts already on the record are not added twice
func (s *StatesService) AddFunFacts(ctx context.Context, code string, req *sdk.AddFunFactsRequest) (*funfact.Record, error) {
	entry, ok := s.catalog.Lookup(code)
	if !ok {
		return nil, notFound(msgInvalidCode)
	}

	facts, err := decodeFunFacts(req.Funfacts)
	if err != nil {
		return nil, err
	}

	record, err := s.store.Mutate(ctx, entry.Code, func(existing *funfact.Record) ([]string, error) {
		if existing == nil {
			return funfact.Merge(nil, facts), nil
		}
		return funfact.Merge(existing.Funfacts, facts), nil
	})
	if err != nil {
		return nil, storeError(err)
	}

	return record, nil
}

// UpdateFunFact replaces the fact at the request's 1-based index
func (s *StatesService) UpdateFunFact(ctx context.Context, code string, req *sdk.UpdateFunFactRequest) (*funfact.Record, error) {
	entry, err := s.lookup(code)
	if err != nil {
		return nil, err
	}

	if req.Index == nil {
		return nil, badRequest(msgIndexRequired)
	}
	if strings.TrimSpace(req.Funfact) == "" {
		return nil, badRequest(msgFunfactRequired)
	}

	position := *req.Index
	record, err := s.store.Mutate(ctx, entry.Code, func(existing *funfact.Record) ([]string, error) {
		if existing == nil || len(existing.Funfacts) == 0 {
			return nil, noFunFacts(entry.Name)
		}

		facts, err := funfact.Replace(existing.Funfacts, position, req.Funfact)
		if err != nil {
			return nil, badIndex(entry.Name)
		}
		return facts, nil
	})
	if err != nil {
		return nil, storeError(err)
	}

	return record, nil
}

// DeleteFunFact removes the fact at the request's 1-based index
func (s *StatesService) DeleteFunFact(ctx context.Context, code string, req *sdk.DeleteFunFactRequest) (*funfact.Record, error) {
	entry, err := s.lookup(code)
	if err != nil {
		return nil, err
	}

	if req.Index == nil {
		return nil, badRequest(msgIndexRequired)
	}

	position := *req.Index
	record, err := s.store.Mutate(ctx, entry.Code, func(existing *funfact.Record) ([]string, error) {
		if existing == nil || len(existing.Funfacts) == 0 {
			return nil, noFunFacts(entry.Name)
		}

		facts, err := funfact.Remove(existing.Funfacts, position)
		if err != nil {
			return nil, badIndex(entry.Name)
		}
		return facts, nil
	})
	if err != nil {
		return nil, storeError(err)
	}

	return record, nil
}

// decodeFunFacts validates the raw 'funfacts' field of an add request
func decodeFunFacts(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, badRequest(msgFunfactsRequired)
	}
	if trimmed[0] != '[' {
		return nil, badRequest(msgFunfactsNotArray)
	}

	var facts []string
	if err := json.Unmarshal(trimmed, &facts); err != nil {
		return nil, badRequest(msgFunfactsNotString)
	}

	if len(facts) == 0 {
		return nil, badRequest(msgFunfactsEmpty)
	}
	for _, fact := range facts {
		if strings.TrimSpace(fact) == "" {
			return nil, badRequest(msgFunfactsBlank)
		}
	}

	return facts, nil
}

// storeError passes validation errors raised inside a mutation through and
// treats everything else as a store failure
func storeError(err error) error {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}
	return internalError(err)
}
