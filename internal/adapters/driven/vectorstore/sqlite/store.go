package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/docuchat/docuchat/internal/adapters/driven/vectorstore/sqlite/migrations"
	"github.com/docuchat/docuchat/internal/core/domain"
	"github.com/docuchat/docuchat/internal/core/ports/driven"
	"github.com/docuchat/docuchat/internal/logger"
	"github.com/docuchat/docuchat/internal/vector"
)

// Ensure Store implements the interfaces.
var (
	_ driven.VectorStore   = (*Store)(nil)
	_ driven.DocumentStore = (*Store)(nil)
)

// DefaultCollection is used when no collection name is configured.
const DefaultCollection = "documents"

// Config holds configuration for the SQLite store.
type Config struct {
	// DataDir is the directory holding the database file.
	// If empty, defaults to ~/.docuchat/data.
	DataDir string

	// Collection is the logical namespace for documents.
	Collection string

	// Dimension is the expected embedding vector length.
	Dimension int
}

// Store is a SQLite-backed vector store. Documents and their embeddings
// share one table; similarity search is a brute-force scan in insertion
// order followed by a stable sort, so equal scores keep ingestion order.
type Store struct {
	db         *sql.DB
	path       string
	embedder   driven.EmbeddingService
	collection string
	dimension  int
}

// NewStore opens (or creates) the database and applies pending
// migrations. The configured dimension must match the embedder's output
// length; the mismatch is rejected at startup rather than on every call.
func NewStore(embedder driven.EmbeddingService, cfg Config) (*Store, error) {
	if cfg.Dimension <= 0 {
		return nil, fmt.Errorf("dimension %d: %w", cfg.Dimension, domain.ErrInvalidInput)
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedding service is required: %w", domain.ErrInvalidInput)
	}
	if embedder.Dimensions() != cfg.Dimension {
		return nil, fmt.Errorf("store dimension %d != embedding dimension %d: %w",
			cfg.Dimension, embedder.Dimensions(), domain.ErrDimensionMismatch)
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docuchat", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "documents.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %v: %w", err, domain.ErrStoreUnavailable)
	}

	s := &Store{
		db:         db,
		path:       dbPath,
		embedder:   embedder,
		collection: cfg.Collection,
		dimension:  cfg.Dimension,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger.Debug("Opened SQLite store at %s (collection %q, dimension %d)", dbPath, s.collection, s.dimension)
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Collection returns the logical namespace name.
func (s *Store) Collection() string {
	return s.collection
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Store upserts the document and its vector, keyed by document ID.
// Updating an existing row keeps its rowid, so insertion order survives
// re-ingestion.
func (s *Store) Store(ctx context.Context, doc *domain.Document, vec []float32) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("document with ID is required: %w", domain.ErrInvalidInput)
	}
	if len(vec) != s.dimension {
		return fmt.Errorf("store %q: vector length %d, configured dimension %d: %w",
			doc.ID, len(vec), s.dimension, domain.ErrDimensionMismatch)
	}

	metadataJSON, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("marshalling metadata: %w", err)
	}

	now := time.Now().UTC()
	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := doc.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, title, content, content_type, source, metadata, embedding, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(collection, id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			content_type = excluded.content_type,
			source = excluded.source,
			metadata = excluded.metadata,
			embedding = excluded.embedding,
			updated_at = excluded.updated_at
	`, s.collection, doc.ID, doc.Title, doc.Content, doc.ContentType, doc.Source,
		string(metadataJSON), vector.Encode(vec), createdAt, updatedAt)

	if err != nil {
		return fmt.Errorf("saving document %q: %v: %w", doc.ID, err, domain.ErrStoreUnavailable)
	}
	return nil
}

// Search embeds the query text and delegates to SearchByEmbedding.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit %d: must be at least 1: %w", limit, domain.ErrInvalidInput)
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return s.SearchByEmbedding(ctx, queryVec, limit)
}

// SearchByEmbedding scores every stored document against the query
// vector and returns the top results, most similar first.
func (s *Store) SearchByEmbedding(ctx context.Context, queryVec []float32, limit int) ([]domain.SearchResult, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit %d: must be at least 1: %w", limit, domain.ErrInvalidInput)
	}
	if len(queryVec) != s.dimension {
		return nil, fmt.Errorf("query vector length %d, configured dimension %d: %w",
			len(queryVec), s.dimension, domain.ErrDimensionMismatch)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content, embedding
		FROM documents WHERE collection = ?
		ORDER BY rowid
	`, s.collection)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %v: %w", err, domain.ErrStoreUnavailable)
	}
	defer rows.Close()

	var results []domain.SearchResult //nolint:prealloc // size unknown from query
	for rows.Next() {
		var result domain.SearchResult
		var embeddingBlob []byte
		if err := rows.Scan(&result.DocumentID, &result.Title, &result.Content, &embeddingBlob); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		docVec, err := vector.Decode(embeddingBlob)
		if err != nil {
			return nil, fmt.Errorf("decoding embedding for %q: %w", result.DocumentID, err)
		}
		score, err := vector.Cosine(queryVec, docVec)
		if err != nil {
			return nil, fmt.Errorf("score %q: %w", result.DocumentID, err)
		}
		result.Score = score
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %v: %w", err, domain.ErrStoreUnavailable)
	}

	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Delete removes the document. Deleting an absent ID is not an error.
func (s *Store) Delete(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND id = ?", s.collection, documentID)
	if err != nil {
		return fmt.Errorf("deleting document %q: %v: %w", documentID, err, domain.ErrStoreUnavailable)
	}
	return nil
}

// Exists reports whether the document is currently stored.
func (s *Store) Exists(ctx context.Context, documentID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE collection = ? AND id = ?",
		s.collection, documentID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking document %q: %v: %w", documentID, err, domain.ErrStoreUnavailable)
	}
	return count > 0, nil
}

// GetDocument retrieves a document by ID.
func (s *Store) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, content, content_type, source, metadata, created_at, updated_at
		FROM documents WHERE collection = ? AND id = ?
	`, s.collection, id)

	doc, err := scanDocument(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns all documents in insertion order.
func (s *Store) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	return s.listDocuments(ctx, `
		SELECT id, title, content, content_type, source, metadata, created_at, updated_at
		FROM documents WHERE collection = ?
		ORDER BY rowid
	`, s.collection)
}

// ListByContentType returns documents matching the content type.
func (s *Store) ListByContentType(ctx context.Context, contentType string) ([]domain.Document, error) {
	return s.listDocuments(ctx, `
		SELECT id, title, content, content_type, source, metadata, created_at, updated_at
		FROM documents WHERE collection = ? AND content_type = ?
		ORDER BY rowid
	`, s.collection, contentType)
}

func (s *Store) listDocuments(ctx context.Context, query string, args ...any) ([]domain.Document, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %v: %w", err, domain.ErrStoreUnavailable)
	}
	defer rows.Close()

	var docs []domain.Document //nolint:prealloc // size unknown from query
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %v: %w", err, domain.ErrStoreUnavailable)
	}
	return docs, nil
}

// scanDocument scans one document row via the given Scan function.
func scanDocument(scan func(dest ...any) error) (*domain.Document, error) {
	var doc domain.Document
	var metadataJSON string
	var createdAt, updatedAt sql.NullTime

	if err := scan(&doc.ID, &doc.Title, &doc.Content, &doc.ContentType, &doc.Source,
		&metadataJSON, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	if metadataJSON != "" && metadataJSON != "null" {
		if err := json.Unmarshal([]byte(metadataJSON), &doc.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshaling metadata: %w", err)
		}
	}
	if createdAt.Valid {
		doc.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		doc.UpdatedAt = updatedAt.Time
	}

	return &doc, nil
}
