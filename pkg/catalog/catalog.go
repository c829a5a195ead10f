package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/states.json
var defaultStates []byte

// nonContiguous holds the codes excluded by the contiguous filter
var nonContiguous = map[string]bool{
	"AK": true,
	"HI": true,
}

// State represents a single reference entry in the catalog
type State struct {
	Name            string `json:"state" yaml:"state"`
	Slug            string `json:"slug" yaml:"slug"`
	Code            string `json:"code" yaml:"code"`
	Nickname        string `json:"nickname" yaml:"nickname"`
	CapitalCity     string `json:"capital_city" yaml:"capital_city"`
	Population      int    `json:"population" yaml:"population"`
	AdmissionDate   string `json:"admission_date" yaml:"admission_date"`
	AdmissionNumber int    `json:"admission_number" yaml:"admission_number"`
}

// ContigFilter selects which states List returns
type ContigFilter int

const (
	ContigAll     ContigFilter = iota // No filtering
	ContigOnly                        // Lower 48 states only
	NonContigOnly                     // Only the non-contiguous states
)

// ParseContigFilter maps the raw 'contig' query flag to a filter. Anything other
// than "true" or "false" means no filter
func ParseContigFilter(raw string) ContigFilter {
	switch raw {
	case "true":
		return ContigOnly
	case "false":
		return NonContigOnly
	default:
		return ContigAll
	}
}

// Catalog is an immutable lookup table of states. It is safe for concurrent use
type Catalog struct {
	states []State
	index  map[string]int
}

// New builds a catalog from the given entries, preserving their order
func New(states []State) (*Catalog, error) {
	c := &Catalog{
		states: make([]State, 0, len(states)),
		index:  make(map[string]int, len(states)),
	}

	for i, s := range states {
		code := normalize(s.Code)
		if !isStateCode(code) {
			return nil, fmt.Errorf("entry %d has invalid state code '%s'", i, s.Code)
		}
		if s.Name == "" {
			return nil, fmt.Errorf("entry %d (%s) is missing a state name", i, code)
		}
		if _, exists := c.index[code]; exists {
			return nil, fmt.Errorf("duplicate state code '%s'", code)
		}

		s.Code = code
		c.index[code] = len(c.states)
		c.states = append(c.states, s)
	}

	return c, nil
}

// Default returns the catalog built from the embedded state data
func Default() (*Catalog, error) {
	return Parse(defaultStates, "json")
}

// Load reads a catalog from a JSON or YAML file. An empty path loads the embedded default
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return Parse(data, format)
}

// Parse decodes catalog entries in the given format ("json", "yaml" or "yml")
func Parse(data []byte, format string) (*Catalog, error) {
	var states []State

	switch format {
	case "json":
		if err := json.Unmarshal(data, &states); err != nil {
			return nil, fmt.Errorf("failed to parse catalog json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &states); err != nil {
			return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format '%s'", format)
	}

	if len(states) == 0 {
		return nil, fmt.Errorf("catalog contains no states")
	}

	return New(states)
}

// Lookup finds a state by its two letter code, ignoring case
func (c *Catalog) Lookup(code string) (State, bool) {
	i, ok := c.index[normalize(code)]
	if !ok {
		return State{}, false
	}
	return c.states[i], true
}

// IsValid reports whether the code belongs to a catalog entry
func (c *Catalog) IsValid(code string) bool {
	_, ok := c.Lookup(code)
	return ok
}

// List returns a copy of the entries matching the filter, in catalog order
func (c *Catalog) List(filter ContigFilter) []State {
	states := make([]State, 0, len(c.states))
	for _, s := range c.states {
		switch filter {
		case ContigOnly:
			if nonContiguous[s.Code] {
				continue
			}
		case NonContigOnly:
			if !nonContiguous[s.Code] {
				continue
			}
		}
		states = append(states, s)
	}
	return states
}

// Len returns the number of states in the catalog
func (c *Catalog) Len() int {
	return len(c.states)
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// isStateCode checks for exactly two ASCII letters
func isStateCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
