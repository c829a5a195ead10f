package states

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/ethanbaker/states-api/pkg/catalog"
	"github.com/ethanbaker/states-api/pkg/funfact"
	"github.com/ethanbaker/states-api/pkg/sdk"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// StatesService merges catalog data with stored fun facts and applies edits
type StatesService struct {
	catalog *catalog.Catalog
	store   funfact.StoreInterface
	printer *message.Printer
	pick    func(n int) int
}

// NewStatesService creates a service over the given catalog and store
func NewStatesService(cat *catalog.Catalog, store funfact.StoreInterface) *StatesService {
	return &StatesService{
		catalog: cat,
		store:   store,
		printer: message.NewPrinter(language.AmericanEnglish),
		pick:    rand.IntN,
	}
}

// WithPicker replaces the function used to choose a random fact index in [0, n)
func (s *StatesService) WithPicker(pick func(n int) int) *StatesService {
	s.pick = pick
	return s
}

// Ping checks the underlying store
func (s *StatesService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Close releases the underlying store
func (s *StatesService) Close() error {
	return s.store.Close()
}

/** ---- QUERIES ---- */

// ListStates returns the filtered catalog with fun facts merged into each entry
func (s *StatesService) ListStates(ctx context.Context, contig string) ([]sdk.State, error) {
	records, err := s.store.ListRecords(ctx)
	if err != nil {
		return nil, internalError(err)
	}

	facts := make(map[string][]string, len(records))
	for _, record := range records {
		facts[record.StateCode] = record.Funfacts
	}

	entries := s.catalog.List(catalog.ParseContigFilter(contig))
	states := make([]sdk.State, len(entries))
	for i, entry := range entries {
		states[i] = merge(entry, facts[entry.Code])
	}

	return states, nil
}

// GetState returns a single state with its fun facts
func (s *StatesService) GetState(ctx context.Context, code string) (*sdk.State, error) {
	entry, err := s.lookup(code)
	if err != nil {
		return nil, err
	}

	facts, err := s.loadFacts(ctx, entry.Code)
	if err != nil {
		return nil, err
	}

	state := merge(entry, facts)
	return &state, nil
}

// GetRandomFunFact returns one of the state's fun facts chosen uniformly at random
func (s *StatesService) GetRandomFunFact(ctx context.Context, code string) (*sdk.FunFactResponse, error) {
	entry, err := s.lookup(code)
	if err != nil {
		return nil, err
	}

	facts, err := s.loadFacts(ctx, entry.Code)
	if err != nil {
		return nil, err
	}

	if len(facts) == 0 {
		return nil, noFunFacts(entry.Name)
	}

	return &sdk.FunFactResponse{Funfact: facts[s.pick(len(facts))]}, nil
}

// GetCapital returns the state's capital city
func (s *StatesService) GetCapital(code string) (*sdk.CapitalResponse, error) {
	entry, err := s.lookup(code)
	if err != nil {
		return nil, err
	}
	return &sdk.CapitalResponse{State: entry.Name, Capital: entry.CapitalCity}, nil
}

// GetNickname returns the state's nickname
func (s *StatesService) GetNickname(code string) (*sdk.NicknameResponse, error) {
	entry, err := s.lookup(code)
	if err != nil {
		return nil, err
	}
	return &sdk.NicknameResponse{State: entry.Name, Nickname: entry.Nickname}, nil
}

// GetPopulation returns the state's population formatted with thousands separators
func (s *StatesService) GetPopulation(code string) (*sdk.PopulationResponse, error) {
	entry, err := s.lookup(code)
	if err != nil {
		return nil, err
	}
	return &sdk.PopulationResponse{State: entry.Name, Population: s.printer.Sprintf("%d", entry.Population)}, nil
}

// GetAdmission returns the state's admission date
func (s *StatesService) GetAdmission(code string) (*sdk.AdmissionResponse, error) {
	entry, err := s.lookup(code)
	if err != nil {
		return nil, err
	}
	return &sdk.AdmissionResponse{State: entry.Name, Admitted: entry.AdmissionDate}, nil
}

/** ---- HELPERS ---- */

// lookup resolves a code against the catalog, failing with a 400
func (s *StatesService) lookup(code string) (catalog.State, error) {
	entry, ok := s.catalog.Lookup(code)
	if !ok {
		return catalog.State{}, badRequest(msgInvalidCode)
	}
	return entry, nil
}

// loadFacts returns the stored facts for a code, or nil when no record exists
func (s *StatesService) loadFacts(ctx context.Context, code string) ([]string, error) {
	record, err := s.store.GetRecord(ctx, code)
	if err != nil {
		if errors.Is(err, funfact.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internalError(err)
	}
	return record.Funfacts, nil
}

// merge attaches facts to a catalog entry. Empty lists are left off the response
func merge(entry catalog.State, facts []string) sdk.State {
	state := sdk.State{State: entry}
	if len(facts) > 0 {
		state.Funfacts = facts
	}
	return state
}
