package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a guestbook entry. CreatedAt is assigned by the server and
// is the sole ordering key of the public feed. Hearts has no mutating
// endpoint; it only ever holds its creation value.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Message   string             `bson:"message" json:"message"`
	Reviewer  string             `bson:"reviewer,omitempty" json:"reviewer,omitempty"`
	Hearts    int                `bson:"hearts" json:"hearts"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
