// Package pagination splits finite in-memory collections into fixed-size pages
// and resolves page numbers under the one-based page or zero-based cursor conventions.
//
// A Paginator is immutable once built: it may be shared between goroutines
// without locking, and every page it hands out is a private copy.
package pagination

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Paginator holds the pages of a collection. T is the page content type,
// a slice for sequences or an ordered map for keyed collections.
// Build one with Paginate, PaginateMap or PaginateSortedMap; the zero value
// behaves as an empty paginator.
type Paginator[T any] struct {
	limit           int
	pages           []T
	totalItemsCount int

	empty func() T
	clone func(T) T
	count func(T) int
}

// Paginate partitions items into consecutive pages of at most size elements, keeping order.
func Paginate[V any](items []V, size int) (*Paginator[[]V], error) {
	if size <= 0 {
		return nil, invalidSize(size)
	}
	return &Paginator[[]V]{
		limit:           size,
		pages:           lo.Chunk(slices.Clone(items), size),
		totalItemsCount: len(items),
		empty:           func() []V { return []V{} },
		clone:           func(page []V) []V { return slices.Clone(page) },
		count:           func(page []V) int { return len(page) },
	}, nil
}

// PaginateMap partitions the entries of an ordered map into pages of at most size entries.
// The iteration order of items is canonical; each page is a new ordered map.
func PaginateMap[K comparable, V any](items *orderedmap.OrderedMap[K, V], size int) (*Paginator[*orderedmap.OrderedMap[K, V]], error) {
	if size <= 0 {
		return nil, invalidSize(size)
	}

	var entries []*orderedmap.Pair[K, V]
	if items != nil {
		for pair := items.Oldest(); pair != nil; pair = pair.Next() {
			entries = append(entries, pair)
		}
	}

	pages := lo.Map(lo.Chunk(entries, size), func(chunk []*orderedmap.Pair[K, V], _ int) *orderedmap.OrderedMap[K, V] {
		page := orderedmap.New[K, V](len(chunk))
		for _, pair := range chunk {
			page.Set(pair.Key, pair.Value)
		}
		return page
	})

	return &Paginator[*orderedmap.OrderedMap[K, V]]{
		limit:           size,
		pages:           pages,
		totalItemsCount: len(entries),
		empty:           func() *orderedmap.OrderedMap[K, V] { return orderedmap.New[K, V]() },
		clone:           cloneMap[K, V],
		count:           func(page *orderedmap.OrderedMap[K, V]) int { return page.Len() },
	}, nil
}

// PaginateSortedMap paginates a builtin map. Builtin maps have no stable order,
// so entries are first copied into an ordered map by ascending key.
func PaginateSortedMap[K cmp.Ordered, V any](items map[K]V, size int) (*Paginator[*orderedmap.OrderedMap[K, V]], error) {
	keys := lo.Keys(items)
	slices.Sort(keys)

	ordered := orderedmap.New[K, V](len(keys))
	for _, k := range keys {
		ordered.Set(k, items[k])
	}
	return PaginateMap(ordered, size)
}

func cloneMap[K comparable, V any](m *orderedmap.OrderedMap[K, V]) *orderedmap.OrderedMap[K, V] {
	out := orderedmap.New[K, V](m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}
	return out
}

// Limit is the page size the paginator was built with.
func (p *Paginator[T]) Limit() int { return p.limit }

// TotalItemsCount is the number of items in the original collection, not the number of pages.
func (p *Paginator[T]) TotalItemsCount() int { return p.totalItemsCount }

// PageCount is the number of pages, ceil(TotalItemsCount / Limit).
func (p *Paginator[T]) PageCount() int { return len(p.pages) }

// Pages returns copies of all pages in order.
func (p *Paginator[T]) Pages() []T {
	return lo.Map(p.pages, func(page T, _ int) T { return p.clone(page) })
}

// GetPage returns the page identified by pageNumber under strategy.
//
// A paginator without pages returns empty items and EmptyMetadata() for any page number.
// Otherwise a page number outside the strategy's range fails with a *PageOutOfRangeError.
func (p *Paginator[T]) GetPage(strategy Strategy, pageNumber int) (PagedResult[T], error) {
	if len(p.pages) == 0 {
		var items T
		if p.empty != nil {
			items = p.empty()
		}
		return PagedResult[T]{Items: items, Metadata: EmptyMetadata()}, nil
	}

	info, ok := strategy.info()
	if !ok {
		return PagedResult[T]{}, invalidStrategy(strategy)
	}
	maxPageNumber, pageIndex := info.bounds(len(p.pages), pageNumber)

	if pageNumber < info.startCounter {
		return PagedResult[T]{}, p.outOfRange(strategy, pageNumber, BoundMin, info.startCounter)
	}
	if pageNumber > maxPageNumber {
		return PagedResult[T]{}, p.outOfRange(strategy, pageNumber, BoundMax, maxPageNumber)
	}

	var nextPage *int
	if next := pageNumber + 1; next <= maxPageNumber {
		nextPage = &next
	}

	items := p.clone(p.pages[pageIndex])
	return PagedResult[T]{
		Items: items,
		Metadata: Metadata{
			Size:            p.count(items),
			CurrentPage:     pageNumber,
			NextPage:        nextPage,
			TotalItemsCount: p.totalItemsCount,
		},
	}, nil
}

// GetPageString is GetPage for page numbers taken from user input.
// Anything that is not a plain non-negative integer selects the strategy's first page.
func (p *Paginator[T]) GetPageString(strategy Strategy, pageNumber string) (PagedResult[T], error) {
	return p.GetPage(strategy, resolvePageNumber(pageNumber, strategy))
}

func resolvePageNumber(pageNumber string, strategy Strategy) int {
	if pageNumber != "" && strings.Trim(pageNumber, "0123456789") == "" {
		if n, err := strconv.Atoi(pageNumber); err == nil {
			return n
		}
	}
	return strategy.StartCounter()
}

func (p *Paginator[T]) outOfRange(strategy Strategy, value int, kind BoundKind, bound int) error {
	return &PageOutOfRangeError{
		Strategy:        strategy,
		Value:           value,
		TotalItemsCount: p.totalItemsCount,
		Limit:           p.limit,
		BoundKind:       kind,
		Bound:           bound,
	}
}
