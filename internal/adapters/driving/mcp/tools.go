package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to find documents"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	DocumentID string   `json:"document_id"`
	Title      string   `json:"title"`
	Score      float64  `json:"score"`
	Highlights []string `json:"highlights,omitempty"`
	Content    string   `json:"content,omitempty"`
}

// IngestInput is the input schema for the ingest tool.
type IngestInput struct {
	Path        string `json:"path" jsonschema:"path of the file to ingest"`
	ContentType string `json:"content_type,omitempty" jsonschema:"declared MIME type, inferred from the extension when omitted"`
}

// IngestOutput is the output schema for the ingest tool.
type IngestOutput struct {
	DocumentID  string `json:"document_id"`
	Title       string `json:"title"`
	ContentType string `json:"content_type"`
}

// GetDocumentInput is the input schema for the get_document tool.
type GetDocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"ID of the document to retrieve"`
}

// GetDocumentOutput is the output schema for the get_document tool.
type GetDocumentOutput struct {
	DocumentID  string            `json:"document_id"`
	Title       string            `json:"title"`
	ContentType string            `json:"content_type"`
	Content     string            `json:"content"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search ingested documents by semantic similarity",
	}, s.handleSearch)

	if s.ports.Ingest != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "ingest_file",
			Description: "Ingest a file into the document corpus",
		}, s.handleIngest)
	}

	if s.ports.Document != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_document",
			Description: "Retrieve a stored document by ID",
		}, s.handleGetDocument)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	results, err := s.ports.Search.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			DocumentID: results[i].DocumentID,
			Title:      results[i].Title,
			Score:      results[i].Score,
			Highlights: results[i].Highlights,
			Content:    results[i].Content,
		}
	}

	return nil, output, nil
}

// handleIngest handles the ingest_file tool invocation.
func (s *Server) handleIngest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IngestInput,
) (*mcp.CallToolResult, IngestOutput, error) {
	doc, err := s.ports.Ingest.IngestFile(ctx, input.Path, input.ContentType)
	if err != nil {
		return nil, IngestOutput{}, err
	}

	return nil, IngestOutput{
		DocumentID:  doc.ID,
		Title:       doc.Title,
		ContentType: doc.ContentType,
	}, nil
}

// handleGetDocument handles the get_document tool invocation.
func (s *Server) handleGetDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDocumentInput,
) (*mcp.CallToolResult, GetDocumentOutput, error) {
	doc, err := s.ports.Document.Get(ctx, input.DocumentID)
	if err != nil {
		return nil, GetDocumentOutput{}, err
	}

	metadata := make(map[string]string, len(doc.Metadata))
	for key, value := range doc.Metadata {
		metadata[key] = value.Display()
	}

	return nil, GetDocumentOutput{
		DocumentID:  doc.ID,
		Title:       doc.Title,
		ContentType: doc.ContentType,
		Content:     doc.Content,
		Metadata:    metadata,
	}, nil
}
