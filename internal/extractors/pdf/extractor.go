// Package pdf extracts text and embedded metadata from PDF documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"github.com/docuchat/docuchat/internal/core/domain"
	"github.com/docuchat/docuchat/internal/core/ports/driven"
	"github.com/docuchat/docuchat/internal/extractors"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents via the ledongthuc/pdf parser.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Supports reports true for application/pdf only.
func (e *Extractor) Supports(contentType string) bool {
	return contentType == "application/pdf"
}

// Process parses the PDF and returns a populated document. Parse
// failures wrap the underlying cause in domain.ErrExtraction; a
// partially parsed document is never returned.
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

	content, metadata, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %v: %w", fileName, err, domain.ErrExtraction)
	}
	metadata["fileName"] = domain.String(fileName)

	now := time.Now()
	return &domain.Document{
		ID:          uuid.New().String(),
		Title:       extractors.ExtractTitle(content),
		Content:     content,
		ContentType: contentType,
		Source:      fileName,
		Metadata:    metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// parse extracts the full text and the document information dictionary.
// The pdf library panics on some malformed inputs, so the whole parse is
// guarded by a recover that converts panics into errors.
func parse(data []byte) (content string, metadata map[string]domain.MetaValue, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, err
	}

	var builder strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		fonts := make(map[string]*pdf.Font)
		text, err := page.GetPlainText(fonts)
		if err != nil {
			return "", nil, fmt.Errorf("page %d: %w", i, err)
		}

		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(text)
	}

	metadata = map[string]domain.MetaValue{
		"pageCount": domain.Int(int64(pages)),
	}
	collectInfo(reader, metadata)

	return builder.String(), metadata, nil
}

// collectInfo copies the embedded information dictionary (Title, Author,
// Producer, ...) into the metadata map.
func collectInfo(reader *pdf.Reader, metadata map[string]domain.MetaValue) {
	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return
	}

	for _, key := range info.Keys() {
		value := info.Key(key)
		switch value.Kind() {
		case pdf.String:
			metadata[key] = domain.String(value.RawString())
		case pdf.Name:
			metadata[key] = domain.String(value.Name())
		case pdf.Integer:
			metadata[key] = domain.Int(value.Int64())
		case pdf.Real:
			metadata[key] = domain.Float(value.Float64())
		case pdf.Bool:
			metadata[key] = domain.Bool(value.Bool())
		}
	}
}
