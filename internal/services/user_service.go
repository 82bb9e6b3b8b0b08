package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialink/internal/domain"
	"socialink/internal/repository"
	socialink_errors "socialink/pkg/errors"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, userID primitive.ObjectID) (domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// GetFriends resolves the user's friend id list to full user documents.
// Ids that no longer resolve are dropped silently.
func (s *UserService) GetFriends(ctx context.Context, userID primitive.ObjectID) ([]domain.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetManyByIDs(ctx, u.Friends)
}

// ToggleFriend flips the friendship between two users. The relationship is
// symmetric: both friend lists are updated together. Returns the acting
// user's resolved friend list after the change.
func (s *UserService) ToggleFriend(ctx context.Context, userID, friendID primitive.ObjectID) ([]domain.User, error) {
	if userID == friendID {
		return nil, socialink_errors.ErrInvalidInput
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	friend, err := s.repo.GetByID(ctx, friendID)
	if err != nil {
		return nil, err
	}

	if u.HasFriend(friendID) {
		u.Friends = removeID(u.Friends, friendID)
		friend.Friends = removeID(friend.Friends, userID)
	} else {
		u.Friends = append(u.Friends, friendID)
		friend.Friends = append(friend.Friends, userID)
	}

	if err := s.repo.UpdateFriends(ctx, u.ID, u.Friends); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFriends(ctx, friend.ID, friend.Friends); err != nil {
		return nil, err
	}

	return s.repo.GetManyByIDs(ctx, u.Friends)
}

func removeID(ids []primitive.ObjectID, target primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
