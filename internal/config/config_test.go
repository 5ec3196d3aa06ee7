package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuchat/docuchat/internal/core/domain"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
[vector-store]
backend = "sqlite"
dimension = 768

[embedding]
provider = "ollama"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.VectorStore.Backend)
	assert.Equal(t, 768, cfg.VectorStore.Dimension)
	assert.Equal(t, "ollama", cfg.Embedding.Provider)

	// Unset fields fall back to defaults.
	assert.Equal(t, DefaultHost, cfg.VectorStore.Host)
	assert.Equal(t, DefaultPort, cfg.VectorStore.Port)
	assert.Equal(t, DefaultCollection, cfg.VectorStore.Collection)
	assert.Equal(t, DefaultModel, cfg.Embedding.Model)
	assert.Equal(t, DefaultBatchSize, cfg.Embedding.BatchSize)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid toml"), 0600))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoad_UnknownBackend(t *testing.T) {
	dir := t.TempDir()
	content := `
[vector-store]
backend = "cassandra"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoad_UnknownProvider(t *testing.T) {
	dir := t.TempDir()
	content := `
[embedding]
provider = "openai"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.VectorStore.Backend = "sqlite"
	cfg.VectorStore.Collection = "notes"
	cfg.Embedding.Provider = "ollama"
	cfg.Embedding.BaseURL = "http://ollama.internal:11434"

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	info, err := os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestValidate_InvalidDimension(t *testing.T) {
	cfg := Default()
	cfg.VectorStore.Dimension = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
