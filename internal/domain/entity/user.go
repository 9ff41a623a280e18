package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash; AccessToken is the opaque bearer
// credential issued once at creation and never rotated.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Password    string             `bson:"password" json:"-"`
	AccessToken string             `bson:"accessToken" json:"-"`
}
