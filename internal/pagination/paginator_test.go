package pagination_test

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/pathfound/projectzero/internal/pagination"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func keysOf(m *orderedmap.OrderedMap[string, int]) []string {
	var keys []string
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func TestPaginate_PartitionsInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 9, 10, 11} {
		for _, size := range []int{1, 2, 3, 10, 20} {
			t.Run(fmt.Sprintf("n=%d/size=%d", n, size), func(t *testing.T) {
				items := seq(n)
				p, err := pagination.Paginate(items, size)
				require.NoError(t, err)

				pages := p.Pages()
				assert.Equal(t, (n+size-1)/size, len(pages))
				assert.Equal(t, n, p.TotalItemsCount())
				assert.Equal(t, size, p.Limit())

				var joined []int
				for i, page := range pages {
					if i < len(pages)-1 {
						assert.Len(t, page, size)
					}
					joined = append(joined, page...)
				}
				if n > 0 {
					last := n % size
					if last == 0 {
						last = size
					}
					assert.Len(t, pages[len(pages)-1], last)
				}
				assert.Equal(t, 0, slices.Compare(items, joined))
			})
		}
	}
}

func TestPaginate_RejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := pagination.Paginate([]int{1, 2}, size)
		require.Error(t, err)
		assert.True(t, errors.Is(err, pagination.ErrInvalidArgument))
		assert.False(t, errors.Is(err, pagination.ErrPageOutOfRange))

		_, err = pagination.PaginateMap(orderedmap.New[string, int](), size)
		assert.True(t, errors.Is(err, pagination.ErrInvalidArgument))

		_, err = pagination.PaginateSortedMap(map[string]int{"a": 1}, size)
		assert.True(t, errors.Is(err, pagination.ErrInvalidArgument))
	}
}

func TestGetPage_DefaultExample(t *testing.T) {
	p, err := pagination.Paginate([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)

	res, err := p.GetPage(pagination.Default, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Items)
	assert.Equal(t, 1, res.Metadata.CurrentPage)
	require.NotNil(t, res.Metadata.NextPage)
	assert.Equal(t, 2, *res.Metadata.NextPage)
	assert.Equal(t, 2, res.Metadata.Size)
	assert.Equal(t, 5, res.Metadata.TotalItemsCount)

	res, err = p.GetPage(pagination.Default, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, res.Items)
	assert.Equal(t, 3, res.Metadata.CurrentPage)
	assert.Nil(t, res.Metadata.NextPage)
	assert.False(t, res.Metadata.HasNext())
	assert.Equal(t, 1, res.Metadata.Size)
	assert.Equal(t, 5, res.Metadata.TotalItemsCount)

	_, err = p.GetPage(pagination.Default, 4)
	assert.ErrorIs(t, err, pagination.ErrPageOutOfRange)

	_, err = p.GetPage(pagination.Default, 0)
	assert.ErrorIs(t, err, pagination.ErrPageOutOfRange)
}

func TestGetPage_Bounds(t *testing.T) {
	cases := []struct {
		name     string
		strategy pagination.Strategy
		page     func(pages int) int
		wantErr  bool
		wantNext func(pages int) *int
	}{
		{"default first", pagination.Default, func(int) int { return 1 }, false, func(m int) *int {
			if m > 1 {
				n := 2
				return &n
			}
			return nil
		}},
		{"default zero", pagination.Default, func(int) int { return 0 }, true, nil},
		{"default last", pagination.Default, func(m int) int { return m }, false, func(int) *int { return nil }},
		{"default past last", pagination.Default, func(m int) int { return m + 1 }, true, nil},
		{"cursor first", pagination.Cursor, func(int) int { return 0 }, false, func(m int) *int {
			if m > 1 {
				n := 1
				return &n
			}
			return nil
		}},
		{"cursor last", pagination.Cursor, func(m int) int { return m - 1 }, false, func(int) *int { return nil }},
		{"cursor past last", pagination.Cursor, func(m int) int { return m }, true, nil},
		{"cursor negative", pagination.Cursor, func(int) int { return -1 }, true, nil},
	}

	for _, n := range []int{1, 4, 7} {
		p, err := pagination.Paginate(seq(n), 3)
		require.NoError(t, err)
		m := p.PageCount()

		for _, tc := range cases {
			t.Run(fmt.Sprintf("%s/n=%d", tc.name, n), func(t *testing.T) {
				page := tc.page(m)
				res, err := p.GetPage(tc.strategy, page)
				if tc.wantErr {
					assert.ErrorIs(t, err, pagination.ErrPageOutOfRange)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, page, res.Metadata.CurrentPage)
				assert.Equal(t, tc.wantNext(m), res.Metadata.NextPage)
				assert.Equal(t, n, res.Metadata.TotalItemsCount)
			})
		}
	}
}

func TestGetPage_OutOfRangeDetails(t *testing.T) {
	p, err := pagination.Paginate([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)

	_, err = p.GetPage(pagination.Default, 4)
	var oor *pagination.PageOutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, pagination.Default, oor.Strategy)
	assert.Equal(t, 4, oor.Value)
	assert.Equal(t, 5, oor.TotalItemsCount)
	assert.Equal(t, 2, oor.Limit)
	assert.Equal(t, pagination.BoundMax, oor.BoundKind)
	assert.Equal(t, 3, oor.Bound)
	assert.Equal(t,
		"[pagingStrategy = DEFAULT] - Requested page value: 4 is out of range!... (When totalItemsCount = 5 and requested limit = 2, then max allowable page value = 3)",
		err.Error())

	_, err = p.GetPage(pagination.Cursor, -1)
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, pagination.BoundMin, oor.BoundKind)
	assert.Equal(t, 0, oor.Bound)
	msg := err.Error()
	for _, want := range []string{"CURSOR", "cursor", "-1", "totalItemsCount = 5", "limit = 2", "min allowable cursor value = 0"} {
		assert.Contains(t, msg, want)
	}
}

func TestGetPage_EmptyCollection(t *testing.T) {
	p, err := pagination.Paginate([]string{}, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, p.PageCount())

	for _, strategy := range []pagination.Strategy{pagination.Default, pagination.Cursor} {
		for _, page := range []int{-5, 0, 1, 100} {
			res, err := p.GetPage(strategy, page)
			require.NoError(t, err)
			assert.NotNil(t, res.Items)
			assert.Empty(t, res.Items)
			assert.Equal(t, pagination.EmptyMetadata(), res.Metadata)
		}
	}

	mp, err := pagination.PaginateMap[string, int](nil, 2)
	require.NoError(t, err)
	res, err := mp.GetPageString(pagination.Default, "7")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Items.Len())
	assert.Equal(t, pagination.EmptyMetadata(), res.Metadata)
}

func TestGetPageString_LenientParse(t *testing.T) {
	p, err := pagination.Paginate(seq(5), 2)
	require.NoError(t, err)

	cases := []struct {
		in       string
		strategy pagination.Strategy
		want     int
	}{
		{"2", pagination.Default, 2},
		{"abc", pagination.Default, 1},
		{"", pagination.Default, 1},
		{"-1", pagination.Default, 1},
		{" 2", pagination.Default, 1},
		{"1.5", pagination.Default, 1},
		{"99999999999999999999999", pagination.Default, 1},
		{"abc", pagination.Cursor, 0},
		{"2", pagination.Cursor, 2},
	}
	for _, tc := range cases {
		t.Run(tc.strategy.String()+"/"+tc.in, func(t *testing.T) {
			res, err := p.GetPageString(tc.strategy, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Metadata.CurrentPage)
		})
	}

	_, err = p.GetPageString(pagination.Default, "4")
	assert.ErrorIs(t, err, pagination.ErrPageOutOfRange)
}

func TestGetPage_UnknownStrategy(t *testing.T) {
	p, err := pagination.Paginate(seq(3), 2)
	require.NoError(t, err)

	_, err = p.GetPage(pagination.Strategy(42), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pagination.ErrInvalidArgument))
}

func TestPaginateMap_PreservesOrder(t *testing.T) {
	items := orderedmap.New[string, int]()
	items.Set("c", 3)
	items.Set("a", 1)
	items.Set("b", 2)

	p, err := pagination.PaginateMap(items, 2)
	require.NoError(t, err)
	require.Equal(t, 2, p.PageCount())
	assert.Equal(t, 3, p.TotalItemsCount())

	res, err := p.GetPage(pagination.Default, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, keysOf(res.Items))
	assert.Equal(t, 2, res.Metadata.Size)

	res, err = p.GetPage(pagination.Cursor, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keysOf(res.Items))
	v, ok := res.Items.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Nil(t, res.Metadata.NextPage)
}

func TestPaginateSortedMap_UsesKeyOrder(t *testing.T) {
	p, err := pagination.PaginateSortedMap(map[string]int{"c": 3, "a": 1, "b": 2}, 2)
	require.NoError(t, err)

	pages := p.Pages()
	require.Len(t, pages, 2)
	assert.Equal(t, []string{"a", "b"}, keysOf(pages[0]))
	assert.Equal(t, []string{"c"}, keysOf(pages[1]))
}

func TestPaginateMap_JSONKeepsOrder(t *testing.T) {
	items := orderedmap.New[string, int]()
	items.Set("z", 26)
	items.Set("a", 1)

	p, err := pagination.PaginateMap(items, 5)
	require.NoError(t, err)
	res, err := p.GetPage(pagination.Default, 1)
	require.NoError(t, err)

	b, err := res.Items.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":26,"a":1}`, string(b))
}

func TestPaginator_IsolatedFromCallers(t *testing.T) {
	items := []int{1, 2, 3}
	p, err := pagination.Paginate(items, 2)
	require.NoError(t, err)

	items[0] = 100
	res, err := p.GetPage(pagination.Default, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Items)

	res.Items[0] = 200
	again, err := p.GetPage(pagination.Default, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, again.Items)

	m := orderedmap.New[string, int]()
	m.Set("a", 1)
	mp, err := pagination.PaginateMap(m, 1)
	require.NoError(t, err)
	page, err := mp.GetPage(pagination.Default, 1)
	require.NoError(t, err)
	page.Items.Set("b", 2)
	page, err = mp.GetPage(pagination.Default, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Items.Len())
}

func TestPaginator_ConcurrentReads(t *testing.T) {
	p, err := pagination.Paginate(seq(100), 7)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for g := 0; g < 64; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			page := g%p.PageCount() + 1
			res, err := p.GetPage(pagination.Default, page)
			if err != nil {
				errs <- err
				return
			}
			if res.Items[0] != (page-1)*7+1 {
				errs <- fmt.Errorf("page %d starts with %d", page, res.Items[0])
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestStrategy(t *testing.T) {
	assert.Equal(t, "DEFAULT", pagination.Default.String())
	assert.Equal(t, "page", pagination.Default.Alias())
	assert.Equal(t, 1, pagination.Default.StartCounter())
	assert.Equal(t, "one-based start counter", pagination.Default.Description())

	assert.Equal(t, "CURSOR", pagination.Cursor.String())
	assert.Equal(t, "cursor", pagination.Cursor.Alias())
	assert.Equal(t, 0, pagination.Cursor.StartCounter())
	assert.Equal(t, "zero-based start counter", pagination.Cursor.Description())

	assert.False(t, pagination.Strategy(9).Valid())
	assert.True(t, strings.HasPrefix(pagination.Strategy(9).String(), "Strategy("))

	for in, want := range map[string]pagination.Strategy{"default": pagination.Default, "PAGE": pagination.Default, " Cursor ": pagination.Cursor} {
		got, err := pagination.ParseStrategy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := pagination.ParseStrategy("offset")
	assert.True(t, errors.Is(err, pagination.ErrInvalidArgument))
}

func TestEmptyMetadata_CannotBeShared(t *testing.T) {
	m := pagination.EmptyMetadata()
	m.TotalItemsCount = 99

	p, err := pagination.Paginate([]int{}, 2)
	require.NoError(t, err)
	res, err := p.GetPage(pagination.Default, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Metadata.TotalItemsCount)
	assert.Equal(t, pagination.Metadata{}, pagination.EmptyMetadata())

	res.Metadata.CurrentPage = 7
	again, err := p.GetPage(pagination.Default, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Metadata.CurrentPage)
}

func TestPaginator_ZeroValueIsEmpty(t *testing.T) {
	var p pagination.Paginator[[]int]

	res, err := p.GetPage(pagination.Default, 1)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, pagination.EmptyMetadata(), res.Metadata)

	res, err = p.GetPageString(pagination.Cursor, "abc")
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, p.PageCount())
	assert.Empty(t, p.Pages())
}
