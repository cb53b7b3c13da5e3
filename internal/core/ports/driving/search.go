package driving

import (
	"context"

	"github.com/custodia-labs/apikit/internal/core/domain"
)

// Ranker scores a query against candidate texts.
type Ranker interface {
	// MatchAll matches query against every text and aggregates the results.
	// The boolean is false when nothing usable matched.
	MatchAll(query string, texts []string, opts domain.MatchOptions) (domain.MatchResult, bool)

	// Match is MatchAll over a single text.
	Match(query, text string, opts domain.MatchOptions) (domain.MatchResult, bool)
}

// SearchService provides item search to external actors.
type SearchService interface {
	// Search ranks items against query, best match first.
	Search(ctx context.Context, query string, items []domain.Item, opts domain.SearchOptions) ([]domain.RankedItem, error)
}
