// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/migrations"
)

// DB is a *sql.DB bound to a SQL dialect, its query builder and its error
// classifier.
type DB struct {
	*sql.DB
	dialect            string
	queries            noteQueries
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations of the DB dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// wrapError tags err as a storage failure of the given kind, marking it
// unavailable when the classifier deems it transient.
func (db *DB) wrapError(kind, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w: %w", ErrStorage, kind, err)
}
