package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaValue_Kinds(t *testing.T) {
	s := String("hello")
	assert.Equal(t, MetaString, s.Kind())
	v, ok := s.StringValue()
	require.True(t, ok)
	assert.Equal(t, "hello", v)

	i := Int(42)
	assert.Equal(t, MetaInt, i.Kind())
	n, ok := i.IntValue()
	require.True(t, ok)
	assert.Equal(t, int64(42), n)

	f := Float(1.5)
	assert.Equal(t, MetaFloat, f.Kind())
	fv, ok := f.FloatValue()
	require.True(t, ok)
	assert.InDelta(t, 1.5, fv, 1e-9)

	b := Bool(true)
	assert.Equal(t, MetaBool, b.Kind())
	bv, ok := b.BoolValue()
	require.True(t, ok)
	assert.True(t, bv)
}

func TestMetaValue_WrongKindAccess(t *testing.T) {
	s := String("hello")
	_, ok := s.IntValue()
	assert.False(t, ok)
	_, ok = s.BoolValue()
	assert.False(t, ok)
}

func TestMetaValue_Display(t *testing.T) {
	tests := []struct {
		name     string
		value    MetaValue
		expected string
	}{
		{name: "string", value: String("title"), expected: "title"},
		{name: "int", value: Int(7), expected: "7"},
		{name: "float", value: Float(2.25), expected: "2.25"},
		{name: "bool", value: Bool(false), expected: "false"},
		{name: "unset", value: MetaValue{}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Display())
		})
	}
}

func TestMetaValue_JSONRoundTrip(t *testing.T) {
	original := map[string]MetaValue{
		"fileName":       String("notes.txt"),
		"lineCount":      Int(12),
		"qualityScore":   Float(0.75),
		"hasAttachments": Bool(true),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded map[string]MetaValue
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original, decoded)
}

func TestMetaValue_UnmarshalRejectsComposite(t *testing.T) {
	var v MetaValue
	err := json.Unmarshal([]byte(`{"nested":true}`), &v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDocument_Clone(t *testing.T) {
	doc := Document{
		ID:          "doc-1",
		Title:       "Original",
		Content:     "body",
		ContentType: "text/plain",
		Source:      "notes.txt",
		Metadata:    map[string]MetaValue{"lineCount": Int(1)},
	}

	clone := doc.Clone()
	clone.Metadata["lineCount"] = Int(99)

	count, ok := doc.Metadata["lineCount"].IntValue()
	require.True(t, ok)
	assert.Equal(t, int64(1), count)
}
