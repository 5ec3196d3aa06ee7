package driven

import (
	"context"

	"github.com/docuchat/docuchat/internal/core/domain"
)

// VectorStore persists (document, vector) pairs within a named
// collection and answers similarity queries.
//
// Store is an upsert by document ID: re-storing an existing ID fully
// replaces the prior content, metadata and vector without appending a
// duplicate entry. Writes to the same ID are serialised; reads may
// proceed concurrently with unrelated writes. A successful Store is
// visible to Search/Exists calls issued after it returns.
type VectorStore interface {
	// Store upserts the document and its vector. A vector whose length
	// differs from the configured dimension fails with
	// domain.ErrDimensionMismatch and persists nothing.
	Store(ctx context.Context, doc *domain.Document, vector []float32) error

	// Search embeds the query text and performs SearchByEmbedding.
	// A limit below 1 fails with domain.ErrInvalidInput.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)

	// SearchByEmbedding returns up to limit results ordered by
	// descending score, ties broken by store insertion order. A corpus
	// smaller than limit yields all eligible documents, never padding.
	SearchByEmbedding(ctx context.Context, vector []float32, limit int) ([]domain.SearchResult, error)

	// Delete removes the document. Idempotent: deleting an absent ID is
	// not an error.
	Delete(ctx context.Context, documentID string) error

	// Exists reports whether the document is currently stored.
	Exists(ctx context.Context, documentID string) (bool, error)

	// Close releases resources.
	Close() error
}

// DocumentStore provides direct document retrieval from a store.
// Kept separate from VectorStore so retrieval-only consumers do not
// depend on similarity search.
type DocumentStore interface {
	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all documents in insertion order.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// ListByContentType returns documents matching the content type,
	// in insertion order.
	ListByContentType(ctx context.Context, contentType string) ([]domain.Document, error)
}
