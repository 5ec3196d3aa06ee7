// Package hash provides a deterministic local embedding service based
// on token feature hashing. It needs no external model server, which
// makes it the default for offline use and tests.
package hash

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	"github.com/docuchat/docuchat/internal/core/ports/driven"
	"github.com/docuchat/docuchat/internal/vector"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// DefaultDimensions is the default embedding vector size.
const DefaultDimensions = 384

// EmbeddingService embeds text by hashing tokens into a fixed number of
// buckets and L2-normalising the result. The same text always produces
// the same vector; empty input produces the zero vector.
type EmbeddingService struct {
	dimensions int
}

// NewEmbeddingService creates a feature-hashing embedding service.
// A non-positive dimensions falls back to DefaultDimensions.
func NewEmbeddingService(dimensions int) *EmbeddingService {
	if dimensions <= 0 {
		dimensions = DefaultDimensions
	}
	return &EmbeddingService{dimensions: dimensions}
}

// Embed generates a vector embedding for the given text.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}

	vec := make([]float32, s.dimensions)
	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		sum := h.Sum32()

		// Low bits pick the bucket, the top bit picks the sign so that
		// colliding tokens do not systematically reinforce each other.
		bucket := int(sum % uint32(s.dimensions))
		if sum&0x80000000 != 0 {
			vec[bucket]--
		} else {
			vec[bucket]++
		}
	}

	normalise(vec)
	return vec, nil
}

// EmbedBatch generates embeddings for multiple texts in input order.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embedding, err := s.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embed text %d: %w", i, err)
		}
		embeddings[i] = embedding
	}
	return embeddings, nil
}

// Similarity computes the cosine similarity between two vectors.
func (s *EmbeddingService) Similarity(a, b []float32) (float64, error) {
	return vector.Cosine(a, b)
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.dimensions
}

// ModelName returns the identifier of the embedding model.
func (s *EmbeddingService) ModelName() string {
	return fmt.Sprintf("feature-hash-%d", s.dimensions)
}

// Close releases resources.
func (s *EmbeddingService) Close() error {
	return nil
}

// tokenize lowercases the text and splits it on anything that is not a
// letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// normalise scales the vector to unit L2 length in place.
// The zero vector is left untouched.
func normalise(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
}
