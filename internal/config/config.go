// Package config loads and persists the application configuration from
// a TOML file, by default ~/.docuchat/config.toml. A missing file
// yields the defaults; a malformed file is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/docuchat/docuchat/internal/core/domain"
)

// Default configuration values.
const (
	DefaultHost       = "localhost"
	DefaultPort       = 8000
	DefaultCollection = "documents"
	DefaultDimension  = 384
	DefaultBackend    = "memory"
	DefaultModel      = "all-minilm"
	DefaultBatchSize  = 32
	DefaultProvider   = "hash"
)

// Config is the full application configuration.
type Config struct {
	VectorStore VectorStoreConfig `toml:"vector-store"`
	Embedding   EmbeddingConfig   `toml:"embedding"`
}

// VectorStoreConfig configures the vector store backend.
type VectorStoreConfig struct {
	// Backend selects the store implementation: "memory" or "sqlite".
	Backend string `toml:"backend"`

	// Host and Port locate a remote store, when the backend uses one.
	Host string `toml:"host"`
	Port int    `toml:"port"`

	// Collection is the logical namespace for documents.
	Collection string `toml:"collection"`

	// Dimension is the embedding vector length the store accepts.
	Dimension int `toml:"dimension"`

	// DataDir holds the on-disk database for persistent backends.
	DataDir string `toml:"data-dir,omitempty"`
}

// EmbeddingConfig configures the embedding service.
type EmbeddingConfig struct {
	// Provider selects the implementation: "hash" or "ollama".
	Provider string `toml:"provider"`

	// Model is the embedding model name for remote providers.
	Model string `toml:"model"`

	// BaseURL overrides the provider endpoint.
	BaseURL string `toml:"base-url,omitempty"`

	// BatchSize bounds how many texts are embedded per batch call.
	BatchSize int `toml:"batch-size"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		VectorStore: VectorStoreConfig{
			Backend:    DefaultBackend,
			Host:       DefaultHost,
			Port:       DefaultPort,
			Collection: DefaultCollection,
			Dimension:  DefaultDimension,
		},
		Embedding: EmbeddingConfig{
			Provider:  DefaultProvider,
			Model:     DefaultModel,
			BatchSize: DefaultBatchSize,
		},
	}
}

// Dir returns the configuration directory, ~/.docuchat by default.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".docuchat"), nil
}

// Path returns the configuration file path inside dir. An empty dir
// resolves to the default directory.
func Path(dir string) (string, error) {
	if dir == "" {
		var err error
		dir, err = Dir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration from dir, falling back to defaults for
// a missing file and for any field left unset.
func Load(dir string) (Config, error) {
	cfg := Default()

	path, err := Path(dir)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save persists the configuration to dir with restricted permissions.
func Save(dir string, cfg Config) error {
	path, err := Path(dir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// applyDefaults fills fields a partial config file left unset.
func (c *Config) applyDefaults() {
	def := Default()
	if c.VectorStore.Backend == "" {
		c.VectorStore.Backend = def.VectorStore.Backend
	}
	if c.VectorStore.Host == "" {
		c.VectorStore.Host = def.VectorStore.Host
	}
	if c.VectorStore.Port == 0 {
		c.VectorStore.Port = def.VectorStore.Port
	}
	if c.VectorStore.Collection == "" {
		c.VectorStore.Collection = def.VectorStore.Collection
	}
	if c.VectorStore.Dimension == 0 {
		c.VectorStore.Dimension = def.VectorStore.Dimension
	}
	if c.Embedding.Provider == "" {
		c.Embedding.Provider = def.Embedding.Provider
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = def.Embedding.Model
	}
	if c.Embedding.BatchSize == 0 {
		c.Embedding.BatchSize = def.Embedding.BatchSize
	}
}

// Validate rejects configurations no component could run with.
func (c *Config) Validate() error {
	switch c.VectorStore.Backend {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("unknown vector store backend %q: %w", c.VectorStore.Backend, domain.ErrInvalidInput)
	}

	switch c.Embedding.Provider {
	case "hash", "ollama":
	default:
		return fmt.Errorf("unknown embedding provider %q: %w", c.Embedding.Provider, domain.ErrInvalidInput)
	}

	if c.VectorStore.Dimension <= 0 {
		return fmt.Errorf("dimension %d: %w", c.VectorStore.Dimension, domain.ErrInvalidInput)
	}
	if c.Embedding.BatchSize <= 0 {
		return fmt.Errorf("batch size %d: %w", c.Embedding.BatchSize, domain.ErrInvalidInput)
	}
	return nil
}
