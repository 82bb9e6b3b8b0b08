package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialink/internal/domain"
)

// mockUserRepo is a function-field mock of repository.UserRepository.
type mockUserRepo struct {
	CreateFunc        func(ctx context.Context, u *domain.User) error
	GetByIDFunc       func(ctx context.Context, id primitive.ObjectID) (domain.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (domain.User, error)
	GetManyByIDsFunc  func(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
	UpdateFriendsFunc func(ctx context.Context, id primitive.ObjectID, friends []primitive.ObjectID) error
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return domain.User{}, errors.New("not implemented")
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return domain.User{}, errors.New("not implemented")
}

func (m *mockUserRepo) GetManyByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	if m.GetManyByIDsFunc != nil {
		return m.GetManyByIDsFunc(ctx, ids)
	}
	return []domain.User{}, nil
}

func (m *mockUserRepo) UpdateFriends(ctx context.Context, id primitive.ObjectID, friends []primitive.ObjectID) error {
	if m.UpdateFriendsFunc != nil {
		return m.UpdateFriendsFunc(ctx, id, friends)
	}
	return nil
}

// mockPostRepo is a function-field mock of repository.PostRepository.
type mockPostRepo struct {
	CreateFunc      func(ctx context.Context, p *domain.Post) error
	GetByIDFunc     func(ctx context.Context, id primitive.ObjectID) (domain.Post, error)
	GetAllFunc      func(ctx context.Context) ([]domain.Post, error)
	GetByUserFunc   func(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error)
	UpdateLikesFunc func(ctx context.Context, id primitive.ObjectID, likes map[string]bool) (domain.Post, error)
}

func (m *mockPostRepo) Create(ctx context.Context, p *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Post, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return domain.Post{}, errors.New("not implemented")
}

func (m *mockPostRepo) GetAll(ctx context.Context) ([]domain.Post, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []domain.Post{}, nil
}

func (m *mockPostRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	if m.GetByUserFunc != nil {
		return m.GetByUserFunc(ctx, userID)
	}
	return []domain.Post{}, nil
}

func (m *mockPostRepo) UpdateLikes(ctx context.Context, id primitive.ObjectID, likes map[string]bool) (domain.Post, error) {
	if m.UpdateLikesFunc != nil {
		return m.UpdateLikesFunc(ctx, id, likes)
	}
	return domain.Post{}, errors.New("not implemented")
}
