package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"socialink/internal/domain"
	socialink_errors "socialink/pkg/errors"
)

type MongoPostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) PostRepository {
	return &MongoPostRepository{coll: db.Collection("posts")}
}

func (r *MongoPostRepository) Create(ctx context.Context, p *domain.Post) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Likes == nil {
		p.Likes = map[string]bool{}
	}
	p.SchemaVersion = domain.PostSchemaVersion

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return socialink_errors.ErrConflict
		}
		return err
	}
	return nil
}

func (r *MongoPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Post, error) {
	var p domain.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Post{}, socialink_errors.ErrNotFound
		}
		return domain.Post{}, err
	}
	if err := validatePostSchema(&p); err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

func (r *MongoPostRepository) GetAll(ctx context.Context) ([]domain.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoPostRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// UpdateLikes replaces the whole likes map. Concurrent toggles on the same
// post race and the last write wins.
func (r *MongoPostRepository) UpdateLikes(ctx context.Context, id primitive.ObjectID, likes map[string]bool) (domain.Post, error) {
	if likes == nil {
		likes = map[string]bool{}
	}

	var p domain.Post
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"likes": likes, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Post{}, socialink_errors.ErrNotFound
		}
		return domain.Post{}, err
	}
	if err := validatePostSchema(&p); err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

func (r *MongoPostRepository) find(ctx context.Context, filter bson.M) ([]domain.Post, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []domain.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	for i := range posts {
		if err := validatePostSchema(&posts[i]); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

func validatePostSchema(p *domain.Post) error {
	if p.SchemaVersion != domain.PostSchemaVersion {
		return socialink_errors.ErrSchemaVersion
	}
	return nil
}
