package pdf

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuchat/docuchat/internal/core/domain"
)

// closeRecorder tracks whether the stream was released.
type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.IsType(t, &Extractor{}, extractor)
}

func TestSupports(t *testing.T) {
	extractor := New()

	assert.True(t, extractor.Supports("application/pdf"))
	assert.False(t, extractor.Supports("text/plain"))
	assert.False(t, extractor.Supports("application/json"))
	assert.False(t, extractor.Supports(""))
}

func TestProcess_MalformedPDF(t *testing.T) {
	extractor := New()

	stream := &closeRecorder{Reader: strings.NewReader("this is not a pdf")}
	doc, err := extractor.Process(context.Background(), stream, "broken.pdf", "application/pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtraction)
	assert.Contains(t, err.Error(), "broken.pdf")
	assert.Nil(t, doc)
	assert.True(t, stream.closed, "stream must be released on parse failure")
}

func TestProcess_TruncatedHeader(t *testing.T) {
	extractor := New()

	stream := io.NopCloser(strings.NewReader("%PDF-1.4\ngarbage"))
	doc, err := extractor.Process(context.Background(), stream, "truncated.pdf", "application/pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtraction)
	assert.Nil(t, doc)
}

func TestProcess_CancelledContext(t *testing.T) {
	extractor := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stream := &closeRecorder{Reader: strings.NewReader("%PDF-1.4")}
	doc, err := extractor.Process(ctx, stream, "doc.pdf", "application/pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, doc)
	assert.True(t, stream.closed)
}
