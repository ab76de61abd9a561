// Package service holds use-case orchestration between the HTTP handlers and the pagination core.
// Kept intentionally lean: input validation, defaults and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/pagination-service/internal/control"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// NewInvalidInput is newInvalidInput for transport-level parse failures.
func NewInvalidInput(fe ...FieldError) error { return newInvalidInput(fe) }

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var v interface{ Fields() []FieldError }
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// Request is the raw position of a list screen. Zero PerPage and empty
// ItemName fall back to configured defaults.
type Request struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalItems int    `json:"total"`
	ItemName   string `json:"item"`
}

// ActivateRequest identifies a click on the item at Index of the control described by Request.
type ActivateRequest struct {
	Request
	Index int `json:"index"`
}

// PageChange is the outcome of an activation. Changed is false for inert items.
type PageChange struct {
	Changed bool `json:"changed"`
	Page    int  `json:"page,omitempty"`
}

// PaginationService defines pagination-control use cases.
type PaginationService interface {
	Describe(ctx context.Context, req Request) (control.Control, error)
	Activate(ctx context.Context, req ActivateRequest) (PageChange, error)
}
