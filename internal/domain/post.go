package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostSchemaVersion is stamped on every post document at write time and
// checked at the store boundary on read.
const PostSchemaVersion = 1

// Post represents a document in the posts collection.
// UserID is immutable after creation. The author display fields are
// denormalized from the user document at creation time and are not updated
// when the profile changes afterwards.
type Post struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          primitive.ObjectID `bson:"user_id"`
	FirstName       string             `bson:"first_name"`
	LastName        string             `bson:"last_name"`
	Location        string             `bson:"location"`
	Description     string             `bson:"description"`
	PicturePath     string             `bson:"picture_path"`
	UserPicturePath string             `bson:"user_picture_path"`
	// Likes maps a user id (hex) to whether that user currently likes the post.
	// Toggles are read-modify-write on the whole map, last write wins.
	Likes         map[string]bool `bson:"likes"`
	SchemaVersion int             `bson:"schema_version"`
	CreatedAt     time.Time       `bson:"created_at"`
	UpdatedAt     time.Time       `bson:"updated_at"`
}
