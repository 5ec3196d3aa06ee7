package driving

import (
	"context"

	"github.com/docuchat/docuchat/internal/core/domain"
)

// DocumentService manages stored documents.
type DocumentService interface {
	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// List returns all stored documents in insertion order.
	List(ctx context.Context) ([]domain.Document, error)

	// ListByContentType returns documents matching the content type.
	ListByContentType(ctx context.Context, contentType string) ([]domain.Document, error)

	// Delete removes a document by ID. Idempotent.
	Delete(ctx context.Context, documentID string) error

	// Exists reports whether the document is stored.
	Exists(ctx context.Context, documentID string) (bool, error)
}
