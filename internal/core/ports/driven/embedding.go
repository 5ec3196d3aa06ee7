package driven

import "context"

// EmbeddingService generates fixed-dimension vector embeddings from text.
// The embedding model itself is a black box behind this port.
//
// Implementations must be deterministic for a fixed model configuration:
// the same text always yields the same vector. Empty input embeds as the
// zero vector; that policy is fixed, not implementation-defined.
//
// Implementations may include:
//   - Ollama (nomic-embed-text, all-minilm)
//   - Local deterministic feature hashing (offline/testing)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts. Vectors are
	// returned in input order, one per text, and are numerically
	// equivalent to individual Embed calls. Batching is a performance
	// concern only.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Similarity computes the similarity between two vectors. It is
	// symmetric; cosine similarity is the reference semantics. Vectors
	// of differing length fail with domain.ErrDimensionMismatch.
	Similarity(a, b []float32) (float64, error)

	// Dimensions returns the embedding vector size (e.g. 384, 768).
	// This must match the vector store's configured dimension.
	Dimensions() int

	// ModelName returns the identifier of the embedding model.
	ModelName() string

	// Close releases resources.
	Close() error
}
