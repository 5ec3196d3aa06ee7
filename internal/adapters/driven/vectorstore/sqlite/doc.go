// Package sqlite provides a persistent vector store backed by SQLite.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. Documents and their
// embedding vectors live in a single table keyed by (collection, id);
// embeddings are stored as little-endian float32 BLOBs.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory and applied at startup.
//
// # Data Location
//
// By default, the database is stored at ~/.docuchat/data/documents.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
