package driving

import (
	"context"
	"io"

	"github.com/docuchat/docuchat/internal/core/domain"
)

// BatchItem is one document in a batch ingestion request.
type BatchItem struct {
	// Reader supplies the raw bytes. Ownership passes to the service,
	// which guarantees closure.
	Reader io.ReadCloser

	// FileName is the origin identifier attached to errors and metadata.
	FileName string

	// ContentType is the declared (trusted) content type.
	ContentType string
}

// BatchResult is the per-item outcome of a batch ingestion.
// Failed items never abort the rest of the batch and are never skipped
// silently: each failure is reported with the offending item's identity.
type BatchResult struct {
	// FileName identifies the item.
	FileName string

	// Document is the ingested record, nil when Err is set.
	Document *domain.Document

	// Err is the terminal failure for this item, nil on success.
	Err error
}

// IngestService runs the ingestion pipeline:
// extraction dispatch, embedding, then vector storage.
type IngestService interface {
	// IngestReader ingests a single raw byte stream. The stream is
	// closed on every exit path. Cancelling ctx yields a terminal
	// failure and no partial document is stored.
	IngestReader(ctx context.Context, r io.ReadCloser, fileName, contentType string) (*domain.Document, error)

	// IngestFile ingests a file from disk. An empty contentType is
	// inferred from the file extension.
	IngestFile(ctx context.Context, path, contentType string) (*domain.Document, error)

	// IngestBatch ingests independent documents, one result per item,
	// in input order.
	IngestBatch(ctx context.Context, items []BatchItem) []BatchResult

	// IsSupported reports whether some registered extractor handles the
	// content type, using the same predicate as ingestion.
	IsSupported(contentType string) bool
}
