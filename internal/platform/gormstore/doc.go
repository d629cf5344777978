// Package gormstore provides gorm-backed implementations of the storage
// interfaces defined in the internal/store package. It owns the persistence
// models, the explicit mapping between those models and domain entities, the
// selection of the database backend (PostgreSQL or SQLite) and the translation
// of driver errors into store errors.
package gormstore
