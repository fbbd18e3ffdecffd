package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pathfound/projectzero/internal/model"
	"github.com/pathfound/projectzero/internal/pagination"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	prefixNames       = "names:v1:"
	prefixSalutations = "salutations:v1:"
)

// Options configures the greeting service.
type Options struct {
	Names       []string
	DefaultSize int
	MaxSize     int
	// CacheTTL bounds how long a built paginator is reused; zero means 5 minutes.
	CacheTTL time.Duration
}

// greetingService greets callers and serves the demo listings.
// Paginators are immutable, so built ones are shared across requests through the cache.
type greetingService struct {
	opts  Options
	cache *gocache.Cache
	log   zerolog.Logger
}

func NewGreetingService(opts Options, logger zerolog.Logger) GreetingService {
	if opts.DefaultSize <= 0 {
		opts.DefaultSize = defaultPageSize
	}
	if opts.MaxSize < opts.DefaultSize {
		opts.MaxSize = max(maxPageSize, opts.DefaultSize)
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	opts.Names = append([]string(nil), opts.Names...)

	l := logger.With().Str("module", "service").Str("component", "greeting").Logger()
	return &greetingService{
		opts:  opts,
		cache: gocache.New(opts.CacheTTL, 2*opts.CacheTTL),
		log:   l,
	}
}

func (s *greetingService) Greet(_ context.Context, name string) (string, error) {
	if err := NewInvalidInputError(validateName(name)); err != nil {
		s.log.Debug().Str("name_raw", name).Msg("greeting validation failed")
		return "", err
	}
	return "Hello " + name, nil
}

func (s *greetingService) ListNames(_ context.Context, req PageRequest) (pagination.PagedResult[[]string], error) {
	size := normalizeSize(req.Size, s.opts.DefaultSize, s.opts.MaxSize)
	p, err := cachedPaginator(s, fmt.Sprintf("%s%d", prefixNames, size), func() (*pagination.Paginator[[]string], error) {
		return pagination.Paginate(s.opts.Names, size)
	})
	if err != nil {
		return pagination.PagedResult[[]string]{}, err
	}
	return fetchPage(s.log, p, req)
}

func (s *greetingService) ListSalutations(_ context.Context, name string, req PageRequest) (pagination.PagedResult[Salutations], error) {
	if err := NewInvalidInputError(validateName(name)); err != nil {
		return pagination.PagedResult[Salutations]{}, err
	}

	// the catalog paginator is shared by all names; the name is applied to the page copy
	size := normalizeSize(req.Size, s.opts.DefaultSize, s.opts.MaxSize)
	p, err := cachedPaginator(s, fmt.Sprintf("%s%d", prefixSalutations, size), func() (*pagination.Paginator[Salutations], error) {
		words := orderedmap.New[string, string](len(model.Salutations))
		for _, sal := range model.Salutations {
			words.Set(sal.Language, sal.Word)
		}
		return pagination.PaginateMap(words, size)
	})
	if err != nil {
		return pagination.PagedResult[Salutations]{}, err
	}

	res, err := fetchPage(s.log, p, req)
	if err != nil {
		return res, err
	}
	for pair := res.Items.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value += " " + name
	}
	return res, nil
}

// Ping reports whether the service has a catalog to serve.
func (s *greetingService) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(s.opts.Names) == 0 {
		return ErrCatalogEmpty
	}
	return nil
}

// cachedPaginator returns the paginator stored under key, building and storing it on a miss.
// Build failures are not cached.
func cachedPaginator[T any](s *greetingService, key string, build func() (*pagination.Paginator[T], error)) (*pagination.Paginator[T], error) {
	if v, ok := s.cache.Get(key); ok {
		if p, ok := v.(*pagination.Paginator[T]); ok {
			return p, nil
		}
	}
	p, err := build()
	if err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("paginator build rejected")
		return nil, err
	}
	s.cache.Set(key, p, gocache.DefaultExpiration)
	return p, nil
}

func fetchPage[T any](log zerolog.Logger, p *pagination.Paginator[T], req PageRequest) (pagination.PagedResult[T], error) {
	res, err := p.GetPageString(req.Strategy, req.Number)
	if err != nil {
		if errors.Is(err, pagination.ErrPageOutOfRange) {
			log.Debug().Err(err).Str("strategy", req.Strategy.String()).Str("number", req.Number).Msg("page out of range")
		} else {
			log.Error().Err(err).Msg("get page failed")
		}
		return res, err
	}
	return res, nil
}
