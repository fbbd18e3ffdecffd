package pagination

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrPageOutOfRange marks a requested page number outside the valid range of a strategy.
	ErrPageOutOfRange = errors.New("page out of range")
	// ErrInvalidArgument marks misuse of the paginator itself, such as a non-positive page size.
	ErrInvalidArgument = errors.New("invalid argument")
)

// BoundKind names which end of the valid page range was violated.
type BoundKind string

const (
	// BoundMin is the strategy's start counter.
	BoundMin BoundKind = "min"
	// BoundMax is the last valid page number.
	BoundMax BoundKind = "max"
)

// PageOutOfRangeError carries the full context of a rejected page number.
type PageOutOfRangeError struct {
	Strategy        Strategy
	Value           int
	TotalItemsCount int
	Limit           int
	BoundKind       BoundKind
	Bound           int
}

func (e *PageOutOfRangeError) Error() string {
	alias := e.Strategy.Alias()
	return fmt.Sprintf(
		"[pagingStrategy = %s] - Requested %s value: %d is out of range!... (When totalItemsCount = %d and requested limit = %d, then %s allowable %s value = %d)",
		e.Strategy, alias, e.Value, e.TotalItemsCount, e.Limit, e.BoundKind, alias, e.Bound,
	)
}

func (e *PageOutOfRangeError) Is(target error) bool { return target == ErrPageOutOfRange }

func invalidSize(size int) error {
	err := errors.Newf("page size must be a positive integer, got %d", size)
	err = errors.WithHint(err, "size must be at least 1")
	return errors.Mark(err, ErrInvalidArgument)
}

func invalidStrategy(s Strategy) error {
	err := errors.Newf("unexpected paging strategy value: %d", int(s))
	err = errors.WithHint(err, "use the page or cursor strategy")
	return errors.Mark(err, ErrInvalidArgument)
}
