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

type TagRepo struct {
	MongoCollection *mongo.Collection
}

func NewTagRepo(client *mongo.Client, cfg *config.Config) *TagRepo {
	return &TagRepo{
		MongoCollection: client.Database(cfg.MongoDB).Collection(cfg.TagsCollection),
	}
}

func (r *TagRepo) ListTags(ctx context.Context) ([]*model.Tag, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []*model.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagRepo) FindTagByID(ctx context.Context, id primitive.ObjectID) (*model.Tag, error) {
	var tag model.Tag
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// FindTagsByIDs resolves a list of tag ids to their documents. The result
// keeps the order the ids were given in; ids that do not resolve are
// dropped. One round trip regardless of list size.
func (r *TagRepo) FindTagsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	found := []model.Tag{}
	if err := cursor.All(ctx, &found); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]model.Tag, len(found))
	for _, tag := range found {
		byID[tag.ID] = tag
	}

	ordered := make([]model.Tag, 0, len(ids))
	for _, id := range ids {
		if tag, ok := byID[id]; ok {
			ordered = append(ordered, tag)
		}
	}
	return ordered, nil
}

func (r *TagRepo) InsertTag(ctx context.Context, tag *model.Tag) error {
	tag.CreatedAt = time.Now()
	tag.UpdatedAt = tag.CreatedAt
	if tag.ID.IsZero() {
		tag.ID = primitive.NewObjectID()
	}

	_, err := r.MongoCollection.InsertOne(ctx, tag)
	return err
}

func (r *TagRepo) UpdateTag(ctx context.Context, tag *model.Tag) error {
	tag.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":      tag.Name,
			"updatedAt": tag.UpdatedAt,
		},
	}
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": tag.ID}, update)
	return err
}

// DeleteTag removes a tag without touching notes that reference it.
// Dangling references are tolerated and dropped on populate.
func (r *TagRepo) DeleteTag(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
