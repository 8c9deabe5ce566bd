// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/utils"
	"github.com/MKhiriev/go-notes-board/models"
)

// memoryNoteRepository keeps notes in process memory. It is meant for
// local runs and tests; nothing survives a restart.
type memoryNoteRepository struct {
	mu     sync.RWMutex
	notes  map[string]models.Note
	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewMemoryNoteRepository constructs an empty in-memory [NoteRepository].
func NewMemoryNoteRepository(ids utils.IDGenerator, log *logger.Logger) NoteRepository {
	log.Debug().Msg("creating in-memory note repository")
	return &memoryNoteRepository{
		notes:  make(map[string]models.Note),
		ids:    ids,
		now:    func() time.Time { return time.Now().UTC() },
		logger: log,
	}
}

func (r *memoryNoteRepository) Create(ctx context.Context, content, author string) (models.Note, error) {
	if err := ctx.Err(); err != nil {
		return models.Note{}, err
	}

	now := r.now()
	note := models.Note{
		ID:        r.ids.Generate(),
		Content:   content,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.notes[note.ID] = note
	r.mu.Unlock()

	return note, nil
}

func (r *memoryNoteRepository) List(ctx context.Context, offset, limit int) ([]models.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	all := make([]models.Note, 0, len(r.notes))
	for _, note := range r.notes {
		all = append(all, note)
	}
	r.mu.RUnlock()

	slices.SortFunc(all, func(a, b models.Note) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	offset = max(offset, 0)
	if offset >= len(all) {
		return []models.Note{}, nil
	}
	end := min(offset+limit, len(all))

	return slices.Clone(all[offset:end]), nil
}

func (r *memoryNoteRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.notes)), nil
}

func (r *memoryNoteRepository) IncrementLikes(ctx context.Context, id string) (models.Note, error) {
	return r.adjustLikes(ctx, id, 1)
}

func (r *memoryNoteRepository) DecrementLikes(ctx context.Context, id string) (models.Note, error) {
	return r.adjustLikes(ctx, id, -1)
}

func (r *memoryNoteRepository) adjustLikes(ctx context.Context, id string, delta int64) (models.Note, error) {
	if err := ctx.Err(); err != nil {
		return models.Note{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.notes[id]
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	note.Likes = max(note.Likes+delta, 0)
	note.UpdatedAt = r.now()
	r.notes[id] = note

	return note, nil
}

func (r *memoryNoteRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[id]; !ok {
		return ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}

func (r *memoryNoteRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
