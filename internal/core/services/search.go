package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/docuchat/docuchat/internal/core/domain"
	"github.com/docuchat/docuchat/internal/core/ports/driven"
	"github.com/docuchat/docuchat/internal/core/ports/driving"
	"github.com/docuchat/docuchat/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// DefaultSearchLimit is used when the caller passes a non-positive limit.
const DefaultSearchLimit = 10

// maxHighlights caps the snippets attached to one result.
const maxHighlights = 3

// SearchService answers similarity queries over the ingested corpus,
// delegating scoring to the vector store and enriching text-query
// results with highlight snippets.
type SearchService struct {
	store driven.VectorStore
}

// NewSearchService creates a new search service.
func NewSearchService(store driven.VectorStore) *SearchService {
	return &SearchService{store: store}
}

// Search embeds the query and returns ranked results with highlights.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	logger.Debug("Limit: %d", limit)

	results, err := s.store.Search(ctx, query, limit)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}

	for i := range results {
		results[i].Highlights = generateHighlights(results[i].Content, query)
	}

	logger.Info("Final results: %d", len(results))
	return results, nil
}

// SearchByEmbedding searches with a precomputed query vector.
// Highlights need query terms and are not computed.
func (s *SearchService) SearchByEmbedding(
	ctx context.Context, vector []float32, limit int,
) ([]domain.SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	results, err := s.store.SearchByEmbedding(ctx, vector, limit)
	if err != nil {
		return nil, fmt.Errorf("search by embedding: %w", err)
	}
	return results, nil
}

// generateHighlights creates text snippets containing matched terms.
func generateHighlights(content, query string) []string {
	queryTerms := strings.Fields(strings.ToLower(query))
	if len(queryTerms) == 0 {
		return nil
	}

	var highlights []string
	for _, sentence := range splitSentences(content) {
		sentenceLower := strings.ToLower(sentence)
		for _, term := range queryTerms {
			if strings.Contains(sentenceLower, term) {
				highlight := sentence
				if len(highlight) > 200 {
					highlight = highlight[:200] + "..."
				}
				highlights = append(highlights, highlight)
				break
			}
		}
		if len(highlights) >= maxHighlights {
			break
		}
	}

	return highlights
}

// splitSentences splits content into sentences by common terminators.
func splitSentences(content string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range content {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
