package mcp

import (
	"context"
	"io"

	"github.com/docuchat/docuchat/internal/core/domain"
	"github.com/docuchat/docuchat/internal/core/ports/driving"
)

// mockSearchService implements driving.SearchService for testing.
type mockSearchService struct {
	results   []domain.SearchResult
	err       error
	lastLimit int
}

var _ driving.SearchService = (*mockSearchService)(nil)

func (m *mockSearchService) Search(_ context.Context, _ string, limit int) ([]domain.SearchResult, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockSearchService) SearchByEmbedding(_ context.Context, _ []float32, limit int) ([]domain.SearchResult, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

// mockIngestService implements driving.IngestService for testing.
type mockIngestService struct {
	doc      *domain.Document
	err      error
	lastPath string
}

var _ driving.IngestService = (*mockIngestService)(nil)

func (m *mockIngestService) IngestReader(_ context.Context, r io.ReadCloser, _, _ string) (*domain.Document, error) {
	r.Close()
	return m.doc, m.err
}

func (m *mockIngestService) IngestFile(_ context.Context, path, _ string) (*domain.Document, error) {
	m.lastPath = path
	return m.doc, m.err
}

func (m *mockIngestService) IngestBatch(_ context.Context, items []driving.BatchItem) []driving.BatchResult {
	results := make([]driving.BatchResult, len(items))
	for i, item := range items {
		item.Reader.Close()
		results[i] = driving.BatchResult{FileName: item.FileName, Document: m.doc, Err: m.err}
	}
	return results
}

func (m *mockIngestService) IsSupported(_ string) bool {
	return true
}

// mockDocumentService implements driving.DocumentService for testing.
type mockDocumentService struct {
	doc *domain.Document
	err error
}

var _ driving.DocumentService = (*mockDocumentService)(nil)

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.doc, m.err
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.doc == nil {
		return nil, nil
	}
	return []domain.Document{*m.doc}, nil
}

func (m *mockDocumentService) ListByContentType(_ context.Context, _ string) ([]domain.Document, error) {
	return m.List(context.Background())
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockDocumentService) Exists(_ context.Context, _ string) (bool, error) {
	return m.doc != nil, m.err
}
