package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"notable/config"
	"notable/model"
)

type NoteRepo struct {
	MongoCollection *mongo.Collection
}

func NewNoteRepo(client *mongo.Client, cfg *config.Config) *NoteRepo {
	return &NoteRepo{
		MongoCollection: client.Database(cfg.MongoDB).Collection(cfg.NotesCollection),
	}
}

// ListNotes returns notes sorted by most recently updated. A non-nil
// owner restricts the list to that user's notes.
func (r *NoteRepo) ListNotes(ctx context.Context, owner *primitive.ObjectID) ([]*model.Note, error) {
	filter := bson.M{}
	if owner != nil {
		filter["user"] = *owner
	}

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepo) FindNoteByID(ctx context.Context, id primitive.ObjectID) (*model.Note, error) {
	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepo) InsertNote(ctx context.Context, note *model.Note) error {
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	if note.ID.IsZero() {
		note.ID = primitive.NewObjectID()
	}
	if note.Tags == nil {
		note.Tags = []primitive.ObjectID{}
	}

	_, err := r.MongoCollection.InsertOne(ctx, note)
	return err
}

func (r *NoteRepo) UpdateNote(ctx context.Context, note *model.Note) error {
	note.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"text":      note.Text,
			"tags":      note.Tags,
			"updatedAt": note.UpdatedAt,
		},
	}
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": note.ID}, update)
	return err
}

func (r *NoteRepo) DeleteNote(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
