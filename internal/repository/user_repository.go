package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"socialink/internal/domain"
	socialink_errors "socialink/pkg/errors"
)

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{coll: db.Collection("users")}
}

func (r *MongoUserRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	u.SchemaVersion = domain.UserSchemaVersion

	_, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return socialink_errors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	var u domain.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, socialink_errors.ErrNotFound
		}
		return domain.User{}, err
	}
	if err := validateUserSchema(&u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, socialink_errors.ErrNotFound
		}
		return domain.User{}, err
	}
	if err := validateUserSchema(&u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *MongoUserRepository) GetManyByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if err := validateUserSchema(&users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (r *MongoUserRepository) UpdateFriends(ctx context.Context, id primitive.ObjectID, friends []primitive.ObjectID) error {
	if friends == nil {
		friends = []primitive.ObjectID{}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"friends": friends, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return socialink_errors.ErrNotFound
	}
	return nil
}

func validateUserSchema(u *domain.User) error {
	if u.SchemaVersion != domain.UserSchemaVersion {
		return socialink_errors.ErrSchemaVersion
	}
	return nil
}
