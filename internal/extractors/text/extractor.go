// Package text extracts plain and structured text documents.
package text

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/docuchat/docuchat/internal/core/domain"
	"github.com/docuchat/docuchat/internal/core/ports/driven"
	"github.com/docuchat/docuchat/internal/extractors"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain and structured text documents.
type Extractor struct{}

// New creates a new text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Supports reports true for any text/* type plus the structured text
// formats JSON and XML.
func (e *Extractor) Supports(contentType string) bool {
	return strings.HasPrefix(contentType, "text/") ||
		contentType == "application/json" ||
		contentType == "application/xml"
}

// Process decodes the stream as UTF-8 text and returns a populated
// document. Invalid byte sequences fail with domain.ErrExtraction
// rather than being replaced silently.
func (e *Extractor) Process(
	ctx context.Context, stream io.ReadCloser, fileName, contentType string,
) (*domain.Document, error) {
	defer stream.Close()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("process %q: %w", fileName, err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read %q: %v: %w", fileName, err, domain.ErrExtraction)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("decode %q: invalid UTF-8 sequence: %w", fileName, domain.ErrExtraction)
	}

	content := joinLines(string(data))

	now := time.Now()
	return &domain.Document{
		ID:          uuid.New().String(),
		Title:       extractors.ExtractTitle(content),
		Content:     content,
		ContentType: contentType,
		Source:      fileName,
		Metadata: map[string]domain.MetaValue{
			"fileName":       domain.String(fileName),
			"encoding":       domain.String("UTF-8"),
			"lineCount":      domain.Int(int64(len(strings.Split(content, "\n")))),
			"characterCount": domain.Int(int64(utf8.RuneCountInString(content))),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// joinLines normalises line terminators: the input is split on LF, CR
// or CRLF and rejoined with single newlines, dropping a trailing
// terminator.
func joinLines(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSuffix(s, "\n")
}
