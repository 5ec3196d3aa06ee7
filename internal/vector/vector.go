// Package vector provides similarity math and the BLOB encoding shared
// by embedding adapters and vector stores.
package vector

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/docuchat/docuchat/internal/core/domain"
)

// Cosine computes the cosine similarity between two vectors. Vectors of
// differing length fail with domain.ErrDimensionMismatch. A zero
// magnitude on either side yields similarity 0 so that empty documents
// rank last instead of erroring.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("cosine similarity: %d vs %d: %w", len(a), len(b), domain.ErrDimensionMismatch)
	}
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(na2) * math.Sqrt(nb2)), nil
}

// Encode encodes a vector as a little-endian sequence of IEEE 754
// float32 values, suitable for storage as a SQLite BLOB. The length is
// derived from the BLOB size on decode, so no prefix is written.
func Encode(vec []float32) []byte {
	if len(vec) == 0 {
		return nil
	}
	b := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b
}

// Decode decodes a BLOB produced by Encode.
func Decode(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("embedding blob length %d is not a multiple of 4: %w", len(b), domain.ErrInvalidInput)
	}
	vec := make([]float32, len(b)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return vec, nil
}
