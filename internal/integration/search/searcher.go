package search

import (
	"context"
	"strings"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"

	"github.com/glucoin/glucoin-ai/internal/config"
	"github.com/glucoin/glucoin-ai/internal/entity"
	pkghttp "github.com/glucoin/glucoin-ai/pkg/http"
)

// Searcher fans a query out to all configured engines, merges and
// ranks the hits, and optionally enriches them with page text.
// Results are cached per query for the configured TTL.
type Searcher struct {
	config    config.SearchConfig
	engines   []Engine
	connector *pkghttp.Connector
	cache     *gocache.Cache
	logger    *zap.Logger
}

func NewSearcher(
	cfg config.SearchConfig,
	engines []Engine,
	connector *pkghttp.Connector,
	logger *zap.Logger,
) *Searcher {
	return &Searcher{
		config:    cfg,
		engines:   engines,
		connector: connector,
		cache:     gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		logger:    logger,
	}
}

// Search runs the query against every engine. The diabetes context is
// always prepended so generic queries stay on topic. It fails only
// when all engines fail. Page text is downloaded only when the caller
// asks for it; the raw search endpoint returns snippets alone.
func (s *Searcher) Search(ctx context.Context, query string, fetchContent bool) ([]entity.SearchResult, error) {
	scopedQuery := query
	if !strings.Contains(strings.ToLower(query), "diabetes") {
		scopedQuery = "diabetes " + query
	}

	if cached, found := s.cache.Get(scopedQuery); found {
		ctxzap.Info(ctx, "search cache hit", zap.String("query", scopedQuery))
		return s.enrich(ctx, cached.([]entity.SearchResult), fetchContent), nil
	}

	ctxzap.Info(ctx, "searching web", zap.String("query", scopedQuery))

	type engineOutcome struct {
		name    string
		results []entity.SearchResult
		err     error
	}

	outcomes := make([]engineOutcome, len(s.engines))
	var wg sync.WaitGroup
	for i, engine := range s.engines {
		wg.Add(1)
		go func(i int, engine Engine) {
			defer wg.Done()
			results, err := engine.Search(ctx, scopedQuery, s.config.MaxResults)
			outcomes[i] = engineOutcome{name: engine.Name(), results: results, err: err}
		}(i, engine)
	}
	wg.Wait()

	var merged []entity.SearchResult
	failures := 0
	for _, outcome := range outcomes {
		if outcome.err != nil {
			failures++
			ctxzap.Warn(ctx, "search engine failed",
				zap.String("engine", outcome.name),
				zap.Error(outcome.err),
			)
			continue
		}
		merged = append(merged, outcome.results...)
	}

	if failures == len(s.engines) {
		return nil, entity.ErrSearchUnavailable
	}

	results := rankResults(dedupeResults(merged), s.config.MaxResults)

	s.cache.SetDefault(scopedQuery, results)

	ctxzap.Info(ctx, "search done",
		zap.String("query", scopedQuery),
		zap.Int("result_count", len(results)),
	)

	return s.enrich(ctx, results, fetchContent), nil
}

// dedupeResults keeps the first occurrence of each URL. Order matters:
// engines with richer metadata are registered first.
func dedupeResults(results []entity.SearchResult) []entity.SearchResult {
	seen := make(map[string]bool, len(results))
	deduped := results[:0]
	for _, r := range results {
		if r.URL == "" || seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		deduped = append(deduped, r)
	}
	return deduped
}

// rankResults moves trusted medical sources to the front, preserving
// relative order within each group, and truncates to max.
func rankResults(results []entity.SearchResult, max int) []entity.SearchResult {
	ranked := make([]entity.SearchResult, 0, len(results))
	var untrusted []entity.SearchResult
	for _, r := range results {
		if IsTrustedSource(r.URL) {
			ranked = append(ranked, r)
		} else {
			untrusted = append(untrusted, r)
		}
	}
	ranked = append(ranked, untrusted...)

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

// enrich returns a copy with downloaded page text. The cache only ever
// holds snippet-only results, so both modes share cache entries.
func (s *Searcher) enrich(ctx context.Context, results []entity.SearchResult, fetchContent bool) []entity.SearchResult {
	if !fetchContent || !s.config.FetchContent || len(results) == 0 {
		return results
	}

	enriched := make([]entity.SearchResult, len(results))
	copy(enriched, results)

	var wg sync.WaitGroup
	for i := range enriched {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			enriched[i].Content = FetchPageContent(ctx, s.connector, enriched[i].URL)
		}(i)
	}
	wg.Wait()
	return enriched
}
