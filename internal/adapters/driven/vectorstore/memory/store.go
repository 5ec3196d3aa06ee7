// Package memory provides an in-memory vector store using brute-force
// cosine similarity. It is the default backend and the reference
// implementation of the store contract.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/docuchat/docuchat/internal/core/domain"
	"github.com/docuchat/docuchat/internal/core/ports/driven"
	"github.com/docuchat/docuchat/internal/logger"
	"github.com/docuchat/docuchat/internal/vector"
)

// Ensure Store implements the interfaces.
var (
	_ driven.VectorStore   = (*Store)(nil)
	_ driven.DocumentStore = (*Store)(nil)
)

// Config holds configuration for the in-memory store.
type Config struct {
	// Collection is the logical namespace for documents.
	Collection string

	// Dimension is the expected embedding vector length.
	Dimension int
}

// entry pairs a stored document with its embedding.
type entry struct {
	doc domain.Document
	vec []float32
}

// Store keeps (document, vector) pairs guarded by a single RWMutex:
// writes are serialised, reads proceed concurrently. Insertion order is
// tracked for tie-breaking; re-storing an existing ID replaces the
// entry in place and keeps its original position.
type Store struct {
	mu       sync.RWMutex
	embedder driven.EmbeddingService

	collection string
	dimension  int
	entries    map[string]*entry
	order      []string
}

// NewStore creates an in-memory vector store. The configured dimension
// must match the embedder's output length; the mismatch is rejected at
// startup rather than on every call.
func NewStore(embedder driven.EmbeddingService, cfg Config) (*Store, error) {
	if cfg.Dimension <= 0 {
		return nil, fmt.Errorf("dimension %d: %w", cfg.Dimension, domain.ErrInvalidInput)
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedding service is required: %w", domain.ErrInvalidInput)
	}
	if embedder.Dimensions() != cfg.Dimension {
		return nil, fmt.Errorf("store dimension %d != embedding dimension %d: %w",
			cfg.Dimension, embedder.Dimensions(), domain.ErrDimensionMismatch)
	}

	return &Store{
		embedder:   embedder,
		collection: cfg.Collection,
		dimension:  cfg.Dimension,
		entries:    make(map[string]*entry),
	}, nil
}

// Store upserts the document and its vector, keyed by document ID.
func (s *Store) Store(ctx context.Context, doc *domain.Document, vec []float32) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("document with ID is required: %w", domain.ErrInvalidInput)
	}
	if len(vec) != s.dimension {
		return fmt.Errorf("store %q: vector length %d, configured dimension %d: %w",
			doc.ID, len(vec), s.dimension, domain.ErrDimensionMismatch)
	}

	stored := doc.Clone()
	vecCopy := make([]float32, len(vec))
	copy(vecCopy, vec)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[doc.ID]; !exists {
		s.order = append(s.order, doc.ID)
	}
	s.entries[doc.ID] = &entry{doc: stored, vec: vecCopy}

	logger.Debug("Stored document %q in collection %q (%d total)", doc.ID, s.collection, len(s.order))
	return nil
}

// Search embeds the query text and delegates to SearchByEmbedding.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit %d: must be at least 1: %w", limit, domain.ErrInvalidInput)
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return s.SearchByEmbedding(ctx, queryVec, limit)
}

// SearchByEmbedding scores every stored document against the query
// vector and returns the top results, most similar first.
func (s *Store) SearchByEmbedding(ctx context.Context, queryVec []float32, limit int) ([]domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, fmt.Errorf("limit %d: must be at least 1: %w", limit, domain.ErrInvalidInput)
	}
	if len(queryVec) != s.dimension {
		return nil, fmt.Errorf("query vector length %d, configured dimension %d: %w",
			len(queryVec), s.dimension, domain.ErrDimensionMismatch)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]domain.SearchResult, 0, len(s.order))
	for _, id := range s.order {
		e := s.entries[id]
		score, err := vector.Cosine(queryVec, e.vec)
		if err != nil {
			return nil, fmt.Errorf("score %q: %w", id, err)
		}
		results = append(results, domain.SearchResult{
			DocumentID: e.doc.ID,
			Title:      e.doc.Title,
			Content:    e.doc.Content,
			Score:      score,
		})
	}

	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Delete removes the document. Deleting an absent ID is not an error.
func (s *Store) Delete(ctx context.Context, documentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[documentID]; !exists {
		return nil
	}
	delete(s.entries, documentID)
	for i, id := range s.order {
		if id == documentID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Exists reports whether the document is currently stored.
func (s *Store) Exists(ctx context.Context, documentID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.entries[documentID]
	return exists, nil
}

// GetDocument retrieves a document by ID.
func (s *Store) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[id]
	if !exists {
		return nil, fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
	}
	doc := e.doc.Clone()
	return &doc, nil
}

// ListDocuments returns all documents in insertion order.
func (s *Store) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]domain.Document, 0, len(s.order))
	for _, id := range s.order {
		docs = append(docs, s.entries[id].doc.Clone())
	}
	return docs, nil
}

// ListByContentType returns documents matching the content type.
func (s *Store) ListByContentType(_ context.Context, contentType string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []domain.Document
	for _, id := range s.order {
		if s.entries[id].doc.ContentType == contentType {
			docs = append(docs, s.entries[id].doc.Clone())
		}
	}
	return docs, nil
}

// Close releases resources.
func (s *Store) Close() error {
	return nil
}

// Collection returns the logical namespace name.
func (s *Store) Collection() string {
	return s.collection
}
