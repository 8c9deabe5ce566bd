// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/utils"
	"github.com/MKhiriev/go-notes-board/models"
)

// sqlNoteRepository implements [NoteRepository] on top of PostgreSQL or
// SQLite. Note ids are UUIDv7 strings generated by the application.
type sqlNoteRepository struct {
	db     *DB
	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLNoteRepository constructs a [NoteRepository] backed by db.
func NewSQLNoteRepository(db *DB, ids utils.IDGenerator, log *logger.Logger) NoteRepository {
	log.Debug().Str("dialect", db.dialect).Msg("creating sql note repository")
	return &sqlNoteRepository{
		db:     db,
		ids:    ids,
		now:    sqlNow,
		logger: log,
	}
}

// sqlNow truncates to microseconds, the precision of postgres timestamps.
func sqlNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(&note.ID, &note.Content, &note.Author, &note.Likes, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return models.Note{}, err
	}

	note.CreatedAt = note.CreatedAt.UTC()
	note.UpdatedAt = note.UpdatedAt.UTC()
	return note, nil
}

func (r *sqlNoteRepository) Create(ctx context.Context, content, author string) (models.Note, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	note := models.Note{
		ID:        r.ids.Generate(),
		Content:   content,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query, args, err := r.db.queries.insertNote(note)
	if err != nil {
		log.Err(err).Str("func", "*sqlNoteRepository.Create").Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	created, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*sqlNoteRepository.Create").Msg("error inserting note")
		return models.Note{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *sqlNoteRepository) List(ctx context.Context, offset, limit int) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.listNotes(offset, limit)
	if err != nil {
		log.Err(err).Str("func", "*sqlNoteRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlNoteRepository.List").Msg("error querying notes")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, limit)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*sqlNoteRepository.List").Msg("error scanning note")
			return nil, r.db.wrapError(ErrScanningRows, scanErr)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlNoteRepository.List").Msg("error iterating notes")
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return notes, nil
}

func (r *sqlNoteRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.countNotes()
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*sqlNoteRepository.Count").Msg("error counting notes")
		return 0, r.db.wrapError(ErrExecutingQuery, err)
	}

	return total, nil
}

func (r *sqlNoteRepository) IncrementLikes(ctx context.Context, id string) (models.Note, error) {
	query, args, err := r.db.queries.incrementLikes(id, r.now())
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	return r.updateOne(ctx, "*sqlNoteRepository.IncrementLikes", query, args)
}

func (r *sqlNoteRepository) DecrementLikes(ctx context.Context, id string) (models.Note, error) {
	query, args, err := r.db.queries.decrementLikes(id, r.now())
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	return r.updateOne(ctx, "*sqlNoteRepository.DecrementLikes", query, args)
}

// updateOne runs a single-row UPDATE ... RETURNING statement.
func (r *sqlNoteRepository) updateOne(ctx context.Context, funcName, query string, args []any) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating likes")
		return models.Note{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return note, nil
}

func (r *sqlNoteRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.deleteNote(id)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlNoteRepository.Delete").Msg("error deleting note")
		return r.db.wrapError(ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapError(ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (r *sqlNoteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
