package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"notable/config"
	"notable/model"
)

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func NewUserRepo(client *mongo.Client, cfg *config.Config) *UserRepo {
	return &UserRepo{
		MongoCollection: client.Database(cfg.MongoDB).Collection(cfg.UsersCollection),
	}
}

// EnsureIndexes creates the unique email index. Emails are stored
// lowercase, so uniqueness is case-insensitive.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.MongoCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepo) InsertUser(ctx context.Context, user *model.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err := r.MongoCollection.InsertOne(ctx, user)
	return err
}

func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	filter := bson.D{{Key: "email", Value: strings.ToLower(strings.TrimSpace(email))}}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID resolves a hex object id to a user. An id that does not
// parse counts as not found, not as an error.
func (r *UserRepo) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var user model.User
	err = r.MongoCollection.FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) ListUsers(ctx context.Context) ([]*model.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []*model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdatePassword stores a new digest together with the salt it was
// derived from. The two always change as a pair.
func (r *UserRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, salt, digest string) (int64, error) {
	update := bson.M{
		"$set": bson.M{
			"salt":      salt,
			"password":  digest,
			"updatedAt": time.Now(),
		},
	}
	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id primitive.ObjectID, firstName, lastName, displayName string) (int64, error) {
	update := bson.M{
		"$set": bson.M{
			"firstName":   firstName,
			"lastName":    lastName,
			"displayName": displayName,
			"updatedAt":   time.Now(),
		},
	}
	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
