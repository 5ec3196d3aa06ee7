package driven

import (
	"context"
	"io"

	"github.com/docuchat/docuchat/internal/core/domain"
)

// Extractor converts a raw byte stream of a declared content type into a
// normalised Document. Each variant handles a specific family of MIME
// types (plain/structured text, PDF, ...).
//
// Process owns the stream: it consumes it fully and closes it on every
// exit path, including extraction failure. Supports must be a pure,
// fast predicate since the dispatcher calls it on every document.
type Extractor interface {
	// Supports reports whether this extractor handles the content type.
	Supports(contentType string) bool

	// Process consumes the stream and returns a populated Document with
	// a freshly generated ID. Malformed or unreadable input fails with
	// domain.ErrExtraction; it never returns a partial document.
	Process(ctx context.Context, r io.ReadCloser, fileName, contentType string) (*domain.Document, error)
}
