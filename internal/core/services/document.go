package services

import (
	"context"
	"fmt"

	"github.com/docuchat/docuchat/internal/core/domain"
	"github.com/docuchat/docuchat/internal/core/ports/driven"
	"github.com/docuchat/docuchat/internal/core/ports/driving"
	"github.com/docuchat/docuchat/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages stored documents. Retrieval goes through the
// document store; deletion and existence checks go through the vector
// store so the corpus and the index stay in step.
type DocumentService struct {
	docStore driven.DocumentStore
	vecStore driven.VectorStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore, vecStore driven.VectorStore) *DocumentService {
	return &DocumentService{
		docStore: docStore,
		vecStore: vecStore,
	}
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.docStore.GetDocument(ctx, documentID)
}

// List returns all stored documents in insertion order.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docStore.ListDocuments(ctx)
}

// ListByContentType returns documents matching the content type.
func (s *DocumentService) ListByContentType(ctx context.Context, contentType string) ([]domain.Document, error) {
	return s.docStore.ListByContentType(ctx, contentType)
}

// Delete removes a document by ID. Idempotent.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	if err := s.vecStore.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("delete document %q: %w", documentID, err)
	}
	logger.Debug("Deleted document %q", documentID)
	return nil
}

// Exists reports whether the document is stored.
func (s *DocumentService) Exists(ctx context.Context, documentID string) (bool, error) {
	return s.vecStore.Exists(ctx, documentID)
}
