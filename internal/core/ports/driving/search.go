package driving

import (
	"context"

	"github.com/docuchat/docuchat/internal/core/domain"
)

// SearchService answers similarity queries over the ingested corpus.
type SearchService interface {
	// Search embeds the query and returns up to limit results ordered
	// by descending score, with highlight snippets for matched terms.
	// An empty query returns no results.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)

	// SearchByEmbedding searches with a precomputed query vector.
	// Highlights are not computed.
	SearchByEmbedding(ctx context.Context, vector []float32, limit int) ([]domain.SearchResult, error)
}
