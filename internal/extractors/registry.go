package extractors

import (
	"context"
	"fmt"
	"io"

	"github.com/docuchat/docuchat/internal/core/domain"
	"github.com/docuchat/docuchat/internal/core/ports/driven"
	"github.com/docuchat/docuchat/internal/logger"
)

// Registry holds the ordered set of registered extractors.
//
// Selection is first-match-wins in registration order: when several
// extractors could claim a type, the more specific one must be
// registered earlier. The list is read-only after initialisation, so
// dispatch needs no synchronisation.
type Registry struct {
	extractors []driven.Extractor
}

// NewRegistry creates a registry with the given extractors, in order.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	return &Registry{extractors: extractors}
}

// Register appends an extractor to the end of the dispatch order.
func (r *Registry) Register(e driven.Extractor) {
	r.extractors = append(r.extractors, e)
}

// ProcessDocument selects the first extractor supporting contentType and
// delegates. When no extractor matches it closes the stream and fails
// with domain.ErrUnsupportedContentType; no partial extraction happens.
func (r *Registry) ProcessDocument(
	ctx context.Context, stream io.ReadCloser, fileName, contentType string,
) (*domain.Document, error) {
	for _, e := range r.extractors {
		if !e.Supports(contentType) {
			continue
		}
		logger.Debug("Dispatching %q (%s) to %T", fileName, contentType, e)
		return e.Process(ctx, stream, fileName, contentType)
	}

	// The stream is owned by the pipeline; release it before failing.
	if stream != nil {
		stream.Close()
	}
	return nil, fmt.Errorf("process %q: %q: %w", fileName, contentType, domain.ErrUnsupportedContentType)
}

// IsSupported reports whether some registered extractor handles the
// content type. It uses the same predicate as ProcessDocument.
func (r *Registry) IsSupported(contentType string) bool {
	for _, e := range r.extractors {
		if e.Supports(contentType) {
			return true
		}
	}
	return false
}
