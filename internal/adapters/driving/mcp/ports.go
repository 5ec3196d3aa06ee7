package mcp

import (
	"github.com/docuchat/docuchat/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces the MCP server exposes.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search answers similarity queries.
	Search driving.SearchService

	// Ingest feeds documents into the pipeline.
	Ingest driving.IngestService

	// Document manages stored documents.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Ingest and Document are optional; their tools are skipped when nil.
	return nil
}
