package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Note struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Text      string               `bson:"text" json:"text"`
	User      primitive.ObjectID   `bson:"user" json:"user"`
	Tags      []primitive.ObjectID `bson:"tags" json:"tags"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// PopulatedNote is a Note with its tag references resolved to the full
// tag documents. Resolution keeps the stored tag order; ids that no
// longer resolve are simply omitted.
type PopulatedNote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Text      string             `bson:"text" json:"text"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Tags      []Tag              `bson:"tags" json:"tags"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
