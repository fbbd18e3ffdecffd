// Package service holds the use cases behind the HTTP handlers.
// Kept intentionally lean: validation, page size normalization and paginator reuse.
package service

import (
	"context"
	"errors"

	"github.com/pathfound/projectzero/internal/pagination"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrCatalogEmpty is reported by readiness checks when there is nothing to list.
var ErrCatalogEmpty = errors.New("demo catalog is empty")

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

// NewInvalidInputError builds an aggregated validation error, or nil when fe is empty.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// PageRequest is a client's page selection. I keep Number raw (page or cursor value)
// so the paginator owns the lenient parsing. Size 0 selects the configured default.
type PageRequest struct {
	Strategy pagination.Strategy
	Number   string
	Size     int
}

// Salutations maps a language code to a greeting, in catalog order.
type Salutations = *orderedmap.OrderedMap[string, string]

// GreetingService defines the demo use cases.
type GreetingService interface {
	Greet(ctx context.Context, name string) (string, error)
	ListNames(ctx context.Context, req PageRequest) (pagination.PagedResult[[]string], error)
	ListSalutations(ctx context.Context, name string, req PageRequest) (pagination.PagedResult[Salutations], error)
	Ping(ctx context.Context) error
}
