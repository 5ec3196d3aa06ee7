package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/docuchat/docuchat/internal/core/domain"
	"github.com/docuchat/docuchat/internal/core/ports/driven"
	"github.com/docuchat/docuchat/internal/core/ports/driving"
	"github.com/docuchat/docuchat/internal/extractors"
	"github.com/docuchat/docuchat/internal/logger"
)

// Ensure IngestionService implements the interface.
var _ driving.IngestService = (*IngestionService)(nil)

// IngestionService runs the ingestion pipeline: extraction dispatch,
// embedding, then vector storage. A failure at any stage is terminal
// for that document and nothing is persisted.
type IngestionService struct {
	registry *extractors.Registry
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewIngestionService creates a new ingestion service.
func NewIngestionService(
	registry *extractors.Registry,
	embedder driven.EmbeddingService,
	store driven.VectorStore,
) *IngestionService {
	return &IngestionService{
		registry: registry,
		embedder: embedder,
		store:    store,
	}
}

// IngestReader ingests a single raw byte stream. The extractor registry
// owns the stream and closes it on every exit path.
func (s *IngestionService) IngestReader(
	ctx context.Context, r io.ReadCloser, fileName, contentType string,
) (*domain.Document, error) {
	logger.Section("Document Ingestion")
	logger.Debug("Ingesting %q (%s)", fileName, contentType)

	doc, err := s.registry.ProcessDocument(ctx, r, fileName, contentType)
	if err != nil {
		return nil, err
	}
	logger.Debug("Extracted document %s: title=%q, %d characters", doc.ID, doc.Title, len(doc.Content))

	vec, err := s.embedder.Embed(ctx, doc.Content)
	if err != nil {
		return nil, fmt.Errorf("embed document from %q: %w", fileName, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ingest %q: %w", fileName, err)
	}

	if err := s.store.Store(ctx, doc, vec); err != nil {
		return nil, fmt.Errorf("store document from %q: %w", fileName, err)
	}

	logger.Info("Ingested %q as document %s", fileName, doc.ID)
	return doc, nil
}

// IngestFile ingests a file from disk. An empty contentType is inferred
// from the file extension.
func (s *IngestionService) IngestFile(ctx context.Context, path, contentType string) (*domain.Document, error) {
	if contentType == "" {
		contentType = ContentTypeFromPath(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}

	return s.IngestReader(ctx, f, filepath.Base(path), contentType)
}

// IngestBatch ingests independent documents. A failed item is reported
// in its result and never aborts the remaining items.
func (s *IngestionService) IngestBatch(ctx context.Context, items []driving.BatchItem) []driving.BatchResult {
	results := make([]driving.BatchResult, len(items))
	for i, item := range items {
		doc, err := s.IngestReader(ctx, item.Reader, item.FileName, item.ContentType)
		results[i] = driving.BatchResult{
			FileName: item.FileName,
			Document: doc,
			Err:      err,
		}
	}
	return results
}

// IsSupported reports whether some registered extractor handles the
// content type.
func (s *IngestionService) IsSupported(contentType string) bool {
	return s.registry.IsSupported(contentType)
}

// ContentTypeFromPath infers a MIME type from the file extension.
// Unknown extensions yield the empty string; any charset parameter the
// platform MIME table attaches is stripped.
func ContentTypeFromPath(path string) string {
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if mediaType, _, found := strings.Cut(contentType, ";"); found {
		return strings.TrimSpace(mediaType)
	}
	return contentType
}
