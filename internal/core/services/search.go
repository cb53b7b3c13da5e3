package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/apikit/internal/core/domain"
	"github.com/custodia-labs/apikit/internal/core/ports/driving"
	"github.com/custodia-labs/apikit/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// ctxCheckInterval is how many items are ranked between context checks.
const ctxCheckInterval = 256

// SearchService ranks requests, collections and workspaces for a query.
type SearchService struct {
	ranker driving.Ranker
}

// NewSearchService creates a new search service.
// A nil ranker falls back to FuzzyRanker.
func NewSearchService(ranker driving.Ranker) *SearchService {
	if ranker == nil {
		ranker = NewFuzzyRanker()
	}
	return &SearchService{ranker: ranker}
}

// Search ranks items against query, best match first.
func (s *SearchService) Search(
	ctx context.Context, query string, items []domain.Item, opts domain.SearchOptions,
) ([]domain.RankedItem, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	// Return empty for empty query
	if strings.TrimSpace(query) == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.RankedItem{}, nil
	}

	logger.Debug("Items: %d, split=%t, loose=%t, limit=%d",
		len(items), opts.SplitOnSpace, opts.Loose, opts.Limit)

	kinds := make(map[domain.ItemKind]bool, len(opts.Kinds))
	for _, k := range opts.Kinds {
		kinds[k] = true
	}

	results := make([]domain.RankedItem, 0)
	for i := range items {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				logger.Warn("Search cancelled: %v", err)
				return nil, fmt.Errorf("search: %w", err)
			}
		}

		item := items[i]
		if len(kinds) > 0 && !kinds[item.Kind] {
			continue
		}

		match, ok := s.ranker.MatchAll(query, item.SearchTexts(), opts.MatchOptions)
		if !ok {
			continue
		}
		results = append(results, domain.RankedItem{Item: item, Match: match})
	}

	logger.Debug("Matched %d of %d items", len(results), len(items))

	// Sort by score descending, then by name for deterministic ordering
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Match.Score != results[j].Match.Score {
			return results[i].Match.Score > results[j].Match.Score
		}
		return results[i].Item.Name < results[j].Item.Name
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	logger.Info("Final results: %d", len(results))

	return results, nil
}
