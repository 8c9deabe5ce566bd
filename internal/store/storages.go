// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-board/internal/config"
	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/utils"
)

// Storages bundles the repository selected by configuration together with
// the resources that must be released on shutdown.
type Storages struct {
	NoteRepository NoteRepository

	closers []func(ctx context.Context) error
}

// NewStorages connects the backend named by cfg.Driver and prepares its
// schema: migrations for SQL backends, indexes for MongoDB.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		mongoDB, err := NewConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}

		repo := NewMongoNoteRepository(mongoDB.database.Collection(notesCollection), log)
		if err = repo.(*mongoNoteRepository).EnsureIndexes(ctx); err != nil {
			_ = mongoDB.Close(context.Background())
			return nil, err
		}

		return &Storages{
			NoteRepository: repo,
			closers:        []func(context.Context) error{mongoDB.Close},
		}, nil

	case config.DriverPostgres, config.DriverSQLite:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.DriverPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Str("driver", cfg.Driver).Msg("error applying migrations")
			_ = db.Close()
			return nil, fmt.Errorf("%w: %w", ErrStorage, err)
		}

		return &Storages{
			NoteRepository: NewSQLNoteRepository(db, utils.NewUUIDGenerator(), log),
			closers: []func(context.Context) error{
				func(context.Context) error { return db.Close() },
			},
		}, nil

	case config.DriverMemory:
		log.Warn().Str("func", "NewStorages").Msg("using in-memory storage, notes are lost on restart")
		return &Storages{
			NoteRepository: NewMemoryNoteRepository(utils.NewUUIDGenerator(), log),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Close releases every connection held by the storages.
func (s *Storages) Close(ctx context.Context) error {
	var errs error
	for _, closeFn := range s.closers {
		errs = errors.Join(errs, closeFn(ctx))
	}
	return errs
}
