// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/models"
)

const notesCollection = "notes"

// mongoNote is the stored document. Field names and the collection name
// match documents written by earlier Mongoose-based deployments.
type mongoNote struct {
	ID        primitive.ObjectID `bson:"_id"`
	Content   string             `bson:"content"`
	Author    string             `bson:"author"`
	Likes     int64              `bson:"likes"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (n mongoNote) toModel() models.Note {
	return models.Note{
		ID:        n.ID.Hex(),
		Content:   n.Content,
		Author:    n.Author,
		Likes:     n.Likes,
		CreatedAt: n.CreatedAt.UTC(),
		UpdatedAt: n.UpdatedAt.UTC(),
	}
}

// mongoNoteRepository implements [NoteRepository] on a MongoDB collection.
// Ids are ObjectID hex strings, malformed ids are reported as not found.
type mongoNoteRepository struct {
	coll   *mongo.Collection
	now    func() time.Time
	logger *logger.Logger
}

// NewMongoNoteRepository constructs a [NoteRepository] on coll.
func NewMongoNoteRepository(coll *mongo.Collection, log *logger.Logger) NoteRepository {
	log.Debug().Str("collection", coll.Name()).Msg("creating mongo note repository")
	return &mongoNoteRepository{
		coll:   coll,
		now:    mongoNow,
		logger: log,
	}
}

// mongoNow truncates to milliseconds, the precision of BSON dates.
func mongoNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// EnsureIndexes creates the index backing the feed order.
func (r *mongoNoteRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "createdAt", Value: -1},
			{Key: "_id", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: create indexes: %w", ErrStorage, err)
	}
	return nil
}

func (r *mongoNoteRepository) Create(ctx context.Context, content, author string) (models.Note, error) {
	now := r.now()
	doc := mongoNote{
		ID:        primitive.NewObjectID(),
		Content:   content,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoNoteRepository.Create").Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: insert note: %w", ErrStorage, err)
	}

	return doc.toModel(), nil
}

func (r *mongoNoteRepository) List(ctx context.Context, offset, limit int) ([]models.Note, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(max(offset, 0))).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoNoteRepository.List").Msg("error listing notes")
		return nil, fmt.Errorf("%w: list notes: %w", ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var docs []mongoNote
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode notes: %w", ErrStorage, err)
	}

	notes := make([]models.Note, 0, len(docs))
	for _, doc := range docs {
		notes = append(notes, doc.toModel())
	}
	return notes, nil
}

func (r *mongoNoteRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoNoteRepository.Count").Msg("error counting notes")
		return 0, fmt.Errorf("%w: count notes: %w", ErrStorage, err)
	}
	return total, nil
}

func (r *mongoNoteRepository) IncrementLikes(ctx context.Context, id string) (models.Note, error) {
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "likes", Value: 1}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: r.now()}}},
	}
	return r.findOneAndUpdate(ctx, "*mongoNoteRepository.IncrementLikes", id, update)
}

func (r *mongoNoteRepository) DecrementLikes(ctx context.Context, id string) (models.Note, error) {
	return r.findOneAndUpdate(ctx, "*mongoNoteRepository.DecrementLikes", id, decrementLikesPipeline(r.now()))
}

// decrementLikesPipeline is an update pipeline computing max(likes-1, 0)
// server side. A missing likes field yields 0.
func decrementLikesPipeline(now time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "likes", Value: bson.D{{Key: "$max", Value: bson.A{
				0,
				bson.D{{Key: "$subtract", Value: bson.A{"$likes", 1}}},
			}}}},
			{Key: "updatedAt", Value: now},
		}}},
	}
}

func (r *mongoNoteRepository) findOneAndUpdate(ctx context.Context, funcName, id string, update any) (models.Note, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Note{}, ErrNoteNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoNote
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error updating likes")
		return models.Note{}, fmt.Errorf("%w: update note %s: %w", ErrStorage, id, err)
	}

	return doc.toModel(), nil
}

func (r *mongoNoteRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNoteNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoNoteRepository.Delete").Msg("error deleting note")
		return fmt.Errorf("%w: delete note: %w", ErrStorage, err)
	}
	if result.DeletedCount == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (r *mongoNoteRepository) Ping(ctx context.Context) error {
	if err := r.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
