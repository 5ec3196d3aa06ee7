package domain

import "time"

// Document is the normalised unit of ingested content.
// It is the canonical representation produced by an extractor.
type Document struct {
	// ID is the unique identifier, assigned at creation and immutable.
	ID string

	// Title is a short human-readable label derived from the content.
	Title string

	// Content is the full extracted text (UTF-8).
	// Never empty after successful extraction except for the documented
	// empty-input case, which carries the sentinel title.
	Content string

	// ContentType is the MIME-like classifier used for extractor dispatch.
	// Set once at ingestion.
	ContentType string

	// Source is the origin identifier (file name, URL, etc).
	Source string

	// Metadata contains extractor-specific key-value facts.
	Metadata map[string]MetaValue

	// CreatedAt is when the document was first ingested. Immutable.
	CreatedAt time.Time

	// UpdatedAt is bumped on any field mutation (re-extraction).
	UpdatedAt time.Time
}

// Clone returns a deep copy of the document.
// Stores keep clones so callers cannot mutate indexed state.
func (d *Document) Clone() Document {
	clone := *d
	if d.Metadata != nil {
		clone.Metadata = make(map[string]MetaValue, len(d.Metadata))
		for k, v := range d.Metadata {
			clone.Metadata[k] = v
		}
	}
	return clone
}
