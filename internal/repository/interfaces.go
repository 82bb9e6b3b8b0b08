package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialink/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetManyByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
	UpdateFriends(ctx context.Context, id primitive.ObjectID, friends []primitive.ObjectID) error
}

type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (domain.Post, error)
	GetAll(ctx context.Context) ([]domain.Post, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error)
	UpdateLikes(ctx context.Context, id primitive.ObjectID, likes map[string]bool) (domain.Post, error)
}
