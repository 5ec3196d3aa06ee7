package services

import (
	"context"

	"github.com/docuchat/docuchat/internal/core/domain"
	"github.com/docuchat/docuchat/internal/core/ports/driven"
	"github.com/docuchat/docuchat/internal/vector"
)

// --- Mock implementations ---

// mockEmbeddingService implements driven.EmbeddingService for testing.
type mockEmbeddingService struct {
	embedding []float32
	embedErr  error
	dims      int
	calls     int
}

var _ driven.EmbeddingService = (*mockEmbeddingService)(nil)

func (m *mockEmbeddingService) Embed(_ context.Context, _ string) ([]float32, error) {
	m.calls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.embedding, nil
}

func (m *mockEmbeddingService) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = m.embedding
	}
	return result, nil
}

func (m *mockEmbeddingService) Similarity(a, b []float32) (float64, error) {
	return vector.Cosine(a, b)
}

func (m *mockEmbeddingService) Dimensions() int {
	if m.dims > 0 {
		return m.dims
	}
	return len(m.embedding)
}

func (m *mockEmbeddingService) ModelName() string {
	return "mock-embed"
}

func (m *mockEmbeddingService) Close() error {
	return nil
}

// mockVectorStore implements driven.VectorStore for testing.
type mockVectorStore struct {
	stored    map[string]*domain.Document
	vectors   map[string][]float32
	results   []domain.SearchResult
	storeErr  error
	searchErr error
	deleteErr error

	lastQuery  string
	lastVector []float32
	lastLimit  int
}

var _ driven.VectorStore = (*mockVectorStore)(nil)

func newMockVectorStore() *mockVectorStore {
	return &mockVectorStore{
		stored:  make(map[string]*domain.Document),
		vectors: make(map[string][]float32),
	}
}

func (m *mockVectorStore) Store(_ context.Context, doc *domain.Document, vec []float32) error {
	if m.storeErr != nil {
		return m.storeErr
	}
	m.stored[doc.ID] = doc
	m.vectors[doc.ID] = vec
	return nil
}

func (m *mockVectorStore) Search(_ context.Context, query string, limit int) ([]domain.SearchResult, error) {
	m.lastQuery = query
	m.lastLimit = limit
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if limit < len(m.results) {
		return m.results[:limit], nil
	}
	return m.results, nil
}

func (m *mockVectorStore) SearchByEmbedding(_ context.Context, vec []float32, limit int) ([]domain.SearchResult, error) {
	m.lastVector = vec
	m.lastLimit = limit
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if limit < len(m.results) {
		return m.results[:limit], nil
	}
	return m.results, nil
}

func (m *mockVectorStore) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.stored, id)
	delete(m.vectors, id)
	return nil
}

func (m *mockVectorStore) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.stored[id]
	return ok, nil
}

func (m *mockVectorStore) Close() error {
	return nil
}

// mockDocumentStore implements driven.DocumentStore for testing.
type mockDocumentStore struct {
	docs   map[string]*domain.Document
	getErr error
}

var _ driven.DocumentStore = (*mockDocumentStore)(nil)

func (m *mockDocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	doc, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (m *mockDocumentStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var docs []domain.Document
	for _, doc := range m.docs {
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (m *mockDocumentStore) ListByContentType(_ context.Context, contentType string) ([]domain.Document, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var docs []domain.Document
	for _, doc := range m.docs {
		if doc.ContentType == contentType {
			docs = append(docs, *doc)
		}
	}
	return docs, nil
}
