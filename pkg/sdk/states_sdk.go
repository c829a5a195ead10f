package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ethanbaker/states-api/pkg/funfact"
)

// ListStates returns every state. A non-nil contig restricts the result to the
// contiguous (true) or non-contiguous (false) states
func (c *Client) ListStates(ctx context.Context, contig *bool) ([]State, error) {
	path := "/states"
	if contig != nil {
		path += "?contig=" + strconv.FormatBool(*contig)
	}

	var out []State
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetState returns a single state with its fun facts
func (c *Client) GetState(ctx context.Context, code string) (*State, error) {
	var out State
	if err := c.doJSON(ctx, http.MethodGet, statePath(code, ""), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetRandomFunFact returns one fun fact picked at random
func (c *Client) GetRandomFunFact(ctx context.Context, code string) (string, error) {
	var out FunFactResponse
	if err := c.doJSON(ctx, http.MethodGet, statePath(code, "funfact"), nil, &out); err != nil {
		return "", err
	}

	return out.Funfact, nil
}

// GetCapital returns the state's capital city
func (c *Client) GetCapital(ctx context.Context, code string) (*CapitalResponse, error) {
	var out CapitalResponse
	if err := c.doJSON(ctx, http.MethodGet, statePath(code, "capital"), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetNickname returns the state's nickname
func (c *Client) GetNickname(ctx context.Context, code string) (*NicknameResponse, error) {
	var out NicknameResponse
	if err := c.doJSON(ctx, http.MethodGet, statePath(code, "nickname"), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetPopulation returns the state's formatted population
func (c *Client) GetPopulation(ctx context.Context, code string) (*PopulationResponse, error) {
	var out PopulationResponse
	if err := c.doJSON(ctx, http.MethodGet, statePath(code, "population"), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetAdmission returns the state's admission date
func (c *Client) GetAdmission(ctx context.Context, code string) (*AdmissionResponse, error) {
	var out AdmissionResponse
	if err := c.doJSON(ctx, http.MethodGet, statePath(code, "admission"), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// AddFunFacts appends facts to the state's record, creating it if needed
func (c *Client) AddFunFacts(ctx context.Context, code string, facts ...string) (*funfact.Record, error) {
	req, err := NewAddFunFactsRequest(facts...)
	if err != nil {
		return nil, err
	}

	var out funfact.Record
	if err := c.doJSON(ctx, http.MethodPost, statePath(code, "funfact"), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateFunFact replaces the fact at the 1-based index
func (c *Client) UpdateFunFact(ctx context.Context, code string, index int, fact string) (*funfact.Record, error) {
	req := &UpdateFunFactRequest{Index: &index, Funfact: fact}

	var out funfact.Record
	if err := c.doJSON(ctx, http.MethodPatch, statePath(code, "funfact"), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteFunFact removes the fact at the 1-based index
func (c *Client) DeleteFunFact(ctx context.Context, code string, index int) (*funfact.Record, error) {
	req := &DeleteFunFactRequest{Index: &index}

	var out funfact.Record
	if err := c.doJSON(ctx, http.MethodDelete, statePath(code, "funfact"), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func statePath(code, resource string) string {
	path := fmt.Sprintf("/states/%s", url.PathEscape(code))
	if resource != "" {
		path += "/" + resource
	}
	return path
}
