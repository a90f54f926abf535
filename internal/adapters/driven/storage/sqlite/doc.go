// Package sqlite provides a SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It is the alternative to the TOML session
// file, selected with session.backend = "sqlite":
//
//   - SessionStore: Session token persistence
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory (NNN_name.up.sql).
//
// # Data Location
//
// By default, the database is stored at ~/.aidoc/data/aidoc.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
