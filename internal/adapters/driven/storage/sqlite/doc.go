// Package sqlite provides a SQLite-based implementation of the lookup record ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. A single database connection serves both driven.RecordStore and
// driven.RecentStore.
//
// # Schema
//
// The schema is managed through versioned migrations in the migrations/ directory.
// Each migration is a pair of NNN_name.up.sql and NNN_name.down.sql files; applied
// versions are tracked in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.lookup/data/records.db
package sqlite
