package states

import (
	"fmt"
	"net/http"
)

// Client facing messages
const (
	msgInvalidCode       = "Invalid state abbreviation parameter"
	msgFunfactsRequired  = "State fun facts value required"
	msgFunfactsNotArray  = "State fun facts value must be an array"
	msgFunfactsNotString = "State fun facts value must be an array of strings"
	msgFunfactsEmpty     = "State fun facts value must contain at least one fun fact"
	msgFunfactsBlank     = "State fun facts value must not contain empty fun facts"
	msgIndexRequired     = "State fun fact index value required"
	msgFunfactRequired   = "State fun fact value required"
	msgBadBody           = "Could not parse request body"
	msgInternal          = "Internal server error"
)

// StatusError is a service error that carries the HTTP status it maps to
type StatusError struct {
	Code    int
	Message string
	Err     error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func badRequest(message string) *StatusError {
	return &StatusError{Code: http.StatusBadRequest, Message: message}
}

func notFound(message string) *StatusError {
	return &StatusError{Code: http.StatusNotFound, Message: message}
}

func internalError(err error) *StatusError {
	return &StatusError{Code: http.StatusInternalServerError, Message: msgInternal, Err: err}
}

func noFunFacts(name string) *StatusError {
	return notFound(fmt.Sprintf("No Fun Facts found for %s", name))
}

func badIndex(name string) *StatusError {
	return badRequest(fmt.Sprintf("No Fun Fact found at that index for %s", name))
}
