package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"notable/model"
)

// Storage contracts the services depend on. The mongo repositories
// satisfy them; tests substitute in-memory fakes.

type UserStore interface {
	InsertUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, salt, digest string) (int64, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, firstName, lastName, displayName string) (int64, error)
}

type NoteStore interface {
	ListNotes(ctx context.Context, owner *primitive.ObjectID) ([]*model.Note, error)
	FindNoteByID(ctx context.Context, id primitive.ObjectID) (*model.Note, error)
	InsertNote(ctx context.Context, note *model.Note) error
	UpdateNote(ctx context.Context, note *model.Note) error
	DeleteNote(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type TagStore interface {
	ListTags(ctx context.Context) ([]*model.Tag, error)
	FindTagByID(ctx context.Context, id primitive.ObjectID) (*model.Tag, error)
	FindTagsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Tag, error)
	InsertTag(ctx context.Context, tag *model.Tag) error
	UpdateTag(ctx context.Context, tag *model.Tag) error
	DeleteTag(ctx context.Context, id primitive.ObjectID) (int64, error)
}
