package tcgapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/tcg-tracker/internal/config"
	"github.com/Kamar-Folarin/tcg-tracker/internal/metrics"
)

const defaultSearchPageSize = 20

// SearchParams are the live search inputs; Q takes precedence over the
// structured fields
type SearchParams struct {
	Q        string
	Name     string
	Set      string
	Number   string
	Rarity   string
	Page     int
	PageSize int
}

// BuildQuery turns search params into an API query. For a bare free-text
// term it returns an exact name query plus a wildcard fallback.
func BuildQuery(p SearchParams) (query, fallback string) {
	if q := strings.TrimSpace(p.Q); q != "" {
		if strings.ContainsAny(q, `:"`) {
			return q, ""
		}
		name := capitalize(q)
		return fmt.Sprintf(`name:"%s"`, name), fmt.Sprintf("name:%s*", name)
	}

	var parts []string
	if p.Name != "" {
		parts = append(parts, fmt.Sprintf("name:%s*", capitalize(p.Name)))
	}
	if p.Set != "" {
		parts = append(parts, fmt.Sprintf(`set.name:"%s"`, p.Set))
	}
	if p.Number != "" {
		parts = append(parts, "number:"+p.Number)
	}
	if p.Rarity != "" {
		parts = append(parts, fmt.Sprintf(`rarity:"%s"`, p.Rarity))
	}
	return strings.Join(parts, " "), ""
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

type cardSearcher interface {
	SearchCards(ctx context.Context, params url.Values) (*SearchResult, error)
	SearchURL(params url.Values) string
}

type cachedResult struct {
	result   *SearchResult
	storedAt time.Time
}

// Searcher proxies live searches to the catalog API behind an LRU cache
// whose entries expire after a fixed TTL
type Searcher struct {
	api    cardSearcher
	cache  *lru.Cache
	ttl    time.Duration
	now    func() time.Time
	logger *logrus.Logger
}

// NewSearcher creates a Searcher
func NewSearcher(api cardSearcher, cfg *config.SearchConfig, logger *logrus.Logger) (*Searcher, error) {
	if cfg == nil {
		cfg = config.DefaultSearchConfig()
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = config.DefaultSearchConfig().CacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create search cache: %w", err)
	}
	return &Searcher{
		api:    api,
		cache:  cache,
		ttl:    cfg.CacheTTL,
		now:    time.Now,
		logger: logger,
	}, nil
}

func (s *Searcher) params(query string, p SearchParams) url.Values {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if p.Page > 0 {
		params.Set("page", strconv.Itoa(p.Page))
	}
	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = defaultSearchPageSize
	}
	if pageSize > config.MaxPageSize {
		pageSize = config.MaxPageSize
	}
	params.Set("pageSize", strconv.Itoa(pageSize))
	return params
}

func (s *Searcher) cached(key string) (*SearchResult, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		metrics.ObserveSearchCache(false)
		return nil, false
	}
	entry := v.(cachedResult)
	if s.now().Sub(entry.storedAt) >= s.ttl {
		s.cache.Remove(key)
		metrics.ObserveSearchCache(false)
		return nil, false
	}
	metrics.ObserveSearchCache(true)
	return entry.result, true
}

func (s *Searcher) fetch(ctx context.Context, params url.Values) (*SearchResult, error) {
	key := s.api.SearchURL(params)
	if result, ok := s.cached(key); ok {
		return result, nil
	}

	result, err := s.api.SearchCards(ctx, params)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, cachedResult{result: result, storedAt: s.now()})
	return result, nil
}

// Search runs a live search, falling back to a wildcard name query when an
// exact free-text match finds nothing
func (s *Searcher) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	query, fallback := BuildQuery(p)
	logger := s.logger.WithFields(logrus.Fields{
		"query": query,
		"page":  p.Page,
	})

	result, err := s.fetch(ctx, s.params(query, p))
	if err != nil {
		logger.WithError(err).Error("Live search failed")
		return nil, err
	}

	if len(result.Data) == 0 && fallback != "" {
		logger.WithField("fallback", fallback).Debug("No exact matches, trying wildcard query")
		wide, err := s.fetch(ctx, s.params(fallback, p))
		if err != nil {
			logger.WithError(err).Warn("Wildcard search failed")
			return result, nil
		}
		return wide, nil
	}

	return result, nil
}
