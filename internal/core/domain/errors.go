package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedContentType indicates no registered extractor matches
	// the declared content type. Terminal; the dispatcher never guesses
	// or falls back to a default extractor.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrExtraction indicates malformed or unreadable input.
	// Terminal for that document; other documents in a batch proceed.
	ErrExtraction = errors.New("extraction failed")

	// ErrEmbedding indicates the embedding model rejected or failed on
	// the input text.
	ErrEmbedding = errors.New("embedding failed")

	// ErrDimensionMismatch indicates a vector length disagrees with the
	// configured dimension. Always a precondition violation, never
	// transient; vectors are never truncated or padded silently.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrStoreUnavailable indicates the vector store collaborator could
	// not be reached. Transient; callers may retry with backoff. The
	// core does not retry internally.
	ErrStoreUnavailable = errors.New("vector store unavailable")
)
