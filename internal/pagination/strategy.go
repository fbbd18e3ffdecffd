package pagination

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Strategy selects how a caller-visible page number maps onto the internal page index.
type Strategy int

const (
	// Default numbers pages from 1 and is exposed as "page".
	Default Strategy = iota
	// Cursor numbers pages from 0 and is exposed as "cursor".
	Cursor
)

type strategyInfo struct {
	name         string
	description  string
	startCounter int
	alias        string
	// bounds returns the largest valid page number and the internal index for pageNumber.
	bounds func(pageCount, pageNumber int) (maxPageNumber, pageIndex int)
}

var strategies = map[Strategy]strategyInfo{
	Default: {
		name:         "DEFAULT",
		description:  "one-based start counter",
		startCounter: 1,
		alias:        "page",
		bounds: func(pageCount, pageNumber int) (int, int) {
			return pageCount, pageNumber - 1
		},
	},
	Cursor: {
		name:         "CURSOR",
		description:  "zero-based start counter",
		startCounter: 0,
		alias:        "cursor",
		bounds: func(pageCount, pageNumber int) (int, int) {
			return pageCount - 1, pageNumber
		},
	},
}

// ParseStrategy resolves a strategy from its name or alias, ignoring case.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "page":
		return Default, nil
	case "cursor":
		return Cursor, nil
	default:
		return 0, errors.Mark(errors.Newf("unknown paging strategy %q", s), ErrInvalidArgument)
	}
}

func (s Strategy) info() (strategyInfo, bool) {
	i, ok := strategies[s]
	return i, ok
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool {
	_, ok := s.info()
	return ok
}

// String returns the upper-case strategy name, e.g. "DEFAULT".
func (s Strategy) String() string {
	if i, ok := s.info(); ok {
		return i.name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Description explains the numbering convention, e.g. "one-based start counter".
func (s Strategy) Description() string { return strategies[s].description }

// StartCounter is the smallest valid page number under s.
func (s Strategy) StartCounter() int { return strategies[s].startCounter }

// Alias is the name callers use for the page number, "page" or "cursor".
func (s Strategy) Alias() string { return strategies[s].alias }
