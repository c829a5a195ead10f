package sdk

import (
	"encoding/json"

	"github.com/ethanbaker/api/pkg/api_types"
	"github.com/ethanbaker/states-api/pkg/catalog"
)

// ApiResponse represents the standard envelope used for error responses
type ApiResponse[T any] struct {
	Status  api_types.StatusType `json:"status"`          // Status message
	Code    int                  `json:"code"`            // Status code
	Message string               `json:"message"`         // Human-readable message
	Data    T                    `json:"data,omitempty"`  // Optional data field
	Error   any                  `json:"error,omitempty"` // Optional error details
}

// AsGinResponse converts the ApiResponse to a format suitable for Gin framework
func (r ApiResponse[T]) AsGinResponse() (int, any) {
	return r.Code, r
}

// NewSuccessResponse builds a success envelope carrying data
func NewSuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Status:  api_types.StatusSuccess,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse builds an error envelope with the given status code
func NewErrorResponse(code int, message string, err any) ApiResponse[any] {
	return ApiResponse[any]{
		Status:  api_types.StatusError,
		Code:    code,
		Message: message,
		Error:   err,
	}
}

/** Responses */

// State is a catalog entry merged with any stored fun facts
type State struct {
	catalog.State
	Funfacts []string `json:"funfacts,omitempty"`
}

// FunFactResponse holds a single randomly selected fun fact
type FunFactResponse struct {
	Funfact string `json:"funfact"`
}

// CapitalResponse is returned by the capital endpoint
type CapitalResponse struct {
	State   string `json:"state"`
	Capital string `json:"capital"`
}

// NicknameResponse is returned by the nickname endpoint
type NicknameResponse struct {
	State    string `json:"state"`
	Nickname string `json:"nickname"`
}

// PopulationResponse is returned by the population endpoint. Population is
// formatted with thousands separators
type PopulationResponse struct {
	State      string `json:"state"`
	Population string `json:"population"`
}

// AdmissionResponse is returned by the admission endpoint
type AdmissionResponse struct {
	State    string `json:"state"`
	Admitted string `json:"admitted"`
}

/** Requests */

// AddFunFactsRequest represents the request body for adding fun facts. Funfacts
// is kept raw so a missing field can be told apart from one of the wrong type
type AddFunFactsRequest struct {
	Funfacts json.RawMessage `json:"funfacts"`
}

// NewAddFunFactsRequest builds an add request from a list of facts
func NewAddFunFactsRequest(facts ...string) (*AddFunFactsRequest, error) {
	if facts == nil {
		facts = []string{}
	}

	raw, err := json.Marshal(facts)
	if err != nil {
		return nil, err
	}
	return &AddFunFactsRequest{Funfacts: raw}, nil
}

// UpdateFunFactRequest represents the request body for replacing a fun fact.
// Index is 1-based
type UpdateFunFactRequest struct {
	Index   *int   `json:"index"`
	Funfact string `json:"funfact"`
}

// DeleteFunFactRequest represents the request body for removing a fun fact.
// Index is 1-based
type DeleteFunFactRequest struct {
	Index *int `json:"index"`
}
