package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserSchemaVersion is stamped on every user document at write time and
// checked at the store boundary on read.
const UserSchemaVersion = 1

// User represents a document in the users collection.
// Email is unique within the collection (enforced by an index created at startup).
type User struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	FirstName     string               `bson:"first_name"`
	LastName      string               `bson:"last_name"`
	Email         string               `bson:"email"`
	PasswordHash  string               `bson:"password_hash"`
	PicturePath   string               `bson:"picture_path"`
	Location      string               `bson:"location"`
	Occupation    string               `bson:"occupation"`
	Friends       []primitive.ObjectID `bson:"friends"`
	ViewedProfile int64                `bson:"viewed_profile"`
	Impressions   int64                `bson:"impressions"`
	SchemaVersion int                  `bson:"schema_version"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

// HasFriend reports whether friendID is in the friend set.
func (u *User) HasFriend(friendID primitive.ObjectID) bool {
	for _, id := range u.Friends {
		if id == friendID {
			return true
		}
	}
	return false
}
