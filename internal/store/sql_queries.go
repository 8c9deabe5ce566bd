// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-board/models"
)

const notesTable = "notes"

var noteColumns = []string{"id", "content", "author", "likes", "created_at", "updated_at"}

// returningNote is appended to statements that must hand back the row.
// Both postgres and sqlite (3.35+) support RETURNING.
var returningNote = "RETURNING " + strings.Join(noteColumns, ", ")

// decrementLikesExpr clamps at zero and is valid in both dialects.
const decrementLikesExpr = "CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END"

// noteQueries builds the notes statements for one placeholder format.
type noteQueries struct {
	builder sq.StatementBuilderType
}

func newNoteQueries(format sq.PlaceholderFormat) noteQueries {
	return noteQueries{builder: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q noteQueries) insertNote(note models.Note) (string, []any, error) {
	return q.builder.
		Insert(notesTable).
		Columns(noteColumns...).
		Values(note.ID, note.Content, note.Author, note.Likes, note.CreatedAt, note.UpdatedAt).
		Suffix(returningNote).
		ToSql()
}

func (q noteQueries) listNotes(offset, limit int) (string, []any, error) {
	return q.builder.
		Select(noteColumns...).
		From(notesTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(max(offset, 0))).
		ToSql()
}

func (q noteQueries) countNotes() (string, []any, error) {
	return q.builder.
		Select("COUNT(*)").
		From(notesTable).
		ToSql()
}

func (q noteQueries) incrementLikes(id string, now time.Time) (string, []any, error) {
	return q.adjustLikes(id, sq.Expr("likes + 1"), now)
}

func (q noteQueries) decrementLikes(id string, now time.Time) (string, []any, error) {
	return q.adjustLikes(id, sq.Expr(decrementLikesExpr), now)
}

func (q noteQueries) adjustLikes(id string, likes sq.Sqlizer, now time.Time) (string, []any, error) {
	return q.builder.
		Update(notesTable).
		Set("likes", likes).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix(returningNote).
		ToSql()
}

func (q noteQueries) deleteNote(id string) (string, []any, error) {
	return q.builder.
		Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
