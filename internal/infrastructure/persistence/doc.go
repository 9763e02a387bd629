// Package persistence provides the GORM-backed movie repository and the
// database connection factory for SQLite and PostgreSQL.
package persistence
