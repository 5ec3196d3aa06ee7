// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants search the ingested corpus and feed new
// documents into the pipeline.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
