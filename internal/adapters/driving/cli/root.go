// Package cli provides the cobra command tree and wires the service
// graph from the loaded configuration.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docuchat/docuchat/internal/adapters/driven/embedding/hash"
	"github.com/docuchat/docuchat/internal/adapters/driven/embedding/ollama"
	"github.com/docuchat/docuchat/internal/adapters/driven/vectorstore/memory"
	"github.com/docuchat/docuchat/internal/adapters/driven/vectorstore/sqlite"
	"github.com/docuchat/docuchat/internal/config"
	"github.com/docuchat/docuchat/internal/core/ports/driven"
	"github.com/docuchat/docuchat/internal/core/ports/driving"
	"github.com/docuchat/docuchat/internal/core/services"
	"github.com/docuchat/docuchat/internal/extractors"
	"github.com/docuchat/docuchat/internal/extractors/pdf"
	"github.com/docuchat/docuchat/internal/extractors/text"
	"github.com/docuchat/docuchat/internal/logger"
)

// version is set from main at startup.
var version = "dev"

// verbose enables debug logging on stderr.
var verbose bool

// Package-level services, wired by initServices and replaced by tests.
var (
	ingestService   driving.IngestService
	searchService   driving.SearchService
	documentService driving.DocumentService

	vectorStore driven.VectorStore
	embedder    driven.EmbeddingService
)

var rootCmd = &cobra.Command{
	Use:   "docuchat",
	Short: "Ingest documents and search them semantically",
	Long: `docuchat ingests text and PDF documents, embeds their content
and answers similarity queries over the stored corpus.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute wires the service graph and runs the CLI with the given
// build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	if err := initServices(); err != nil {
		return err
	}
	defer closeServices()
	return rootCmd.Execute()
}

// initServices builds the service graph from configuration. Already
// wired services (tests inject their own) are left untouched.
func initServices() error {
	if searchService != nil {
		return nil
	}

	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	embedder, err = buildEmbedder(cfg)
	if err != nil {
		return err
	}

	store, docStore, err := buildStore(cfg, embedder)
	if err != nil {
		return err
	}
	vectorStore = store

	registry := extractors.NewRegistry(pdf.New(), text.New())

	ingestService = services.NewIngestionService(registry, embedder, store)
	searchService = services.NewSearchService(store)
	documentService = services.NewDocumentService(docStore, store)
	return nil
}

// buildEmbedder constructs the configured embedding service.
func buildEmbedder(cfg config.Config) (driven.EmbeddingService, error) {
	switch cfg.Embedding.Provider {
	case "ollama":
		return ollama.NewEmbeddingService(ollama.Config{
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.VectorStore.Dimension,
		}), nil
	case "hash":
		return hash.NewEmbeddingService(cfg.VectorStore.Dimension), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Embedding.Provider)
	}
}

// buildStore constructs the configured vector store backend. The store
// rejects an embedder whose dimension differs from the configuration,
// so a misconfiguration fails here rather than mid-ingestion.
func buildStore(cfg config.Config, embedder driven.EmbeddingService) (driven.VectorStore, driven.DocumentStore, error) {
	switch cfg.VectorStore.Backend {
	case "sqlite":
		store, err := sqlite.NewStore(embedder, sqlite.Config{
			DataDir:    cfg.VectorStore.DataDir,
			Collection: cfg.VectorStore.Collection,
			Dimension:  cfg.VectorStore.Dimension,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case "memory":
		store, err := memory.NewStore(embedder, memory.Config{
			Collection: cfg.VectorStore.Collection,
			Dimension:  cfg.VectorStore.Dimension,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown vector store backend %q", cfg.VectorStore.Backend)
	}
}

// closeServices releases store and embedder resources.
func closeServices() {
	if vectorStore != nil {
		if err := vectorStore.Close(); err != nil {
			logger.Warn("Closing vector store: %v", err)
		}
	}
	if embedder != nil {
		if err := embedder.Close(); err != nil {
			logger.Warn("Closing embedding service: %v", err)
		}
	}
}
