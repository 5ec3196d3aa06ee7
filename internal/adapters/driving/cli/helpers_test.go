package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docuchat/docuchat/internal/adapters/driven/embedding/hash"
	"github.com/docuchat/docuchat/internal/adapters/driven/vectorstore/memory"
	"github.com/docuchat/docuchat/internal/core/services"
	"github.com/docuchat/docuchat/internal/extractors"
	"github.com/docuchat/docuchat/internal/extractors/pdf"
	"github.com/docuchat/docuchat/internal/extractors/text"
)

const testDimension = 64

// setupTestServices wires the package-level services to an in-memory
// stack and returns a cleanup restoring the previous wiring.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	testEmbedder := hash.NewEmbeddingService(testDimension)
	store, err := memory.NewStore(testEmbedder, memory.Config{
		Collection: "documents",
		Dimension:  testDimension,
	})
	require.NoError(t, err)

	registry := extractors.NewRegistry(pdf.New(), text.New())

	oldIngest := ingestService
	oldSearch := searchService
	oldDocument := documentService

	ingestService = services.NewIngestionService(registry, testEmbedder, store)
	searchService = services.NewSearchService(store)
	documentService = services.NewDocumentService(store, store)

	return func() {
		ingestService = oldIngest
		searchService = oldSearch
		documentService = oldDocument
	}
}

// seedDocument ingests content through the wired ingest service.
func seedDocument(t *testing.T, content string) string {
	t.Helper()

	doc, err := ingestService.IngestReader(context.Background(),
		readCloser(content), "seed.txt", "text/plain")
	require.NoError(t, err)
	return doc.ID
}
