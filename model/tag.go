package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag is a named label referenced by zero or more notes. Tags are shared;
// no user owns one. Deleting a tag does not touch the notes that still
// reference it.
type Tag struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
