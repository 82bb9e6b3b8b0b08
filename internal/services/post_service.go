package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialink/internal/domain"
	"socialink/internal/repository"
	socialink_errors "socialink/pkg/errors"
)

type PostService struct {
	repo     repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(repo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{repo: repo, userRepo: userRepo}
}

type CreatePostInput struct {
	UserID      primitive.ObjectID
	Description string
	PicturePath string
}

// Create looks up the posting user, denormalizes its display fields into the
// new post and persists it. Returns the full post feed after the write, newest
// first. The copied author fields are frozen at creation time.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) ([]domain.Post, error) {
	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := &domain.Post{
		UserID:          author.ID,
		FirstName:       author.FirstName,
		LastName:        author.LastName,
		Location:        author.Location,
		Description:     in.Description,
		PicturePath:     in.PicturePath,
		UserPicturePath: author.PicturePath,
		Likes:           map[string]bool{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("%w: %s", socialink_errors.ErrConflict, err)
	}

	return s.repo.GetAll(ctx)
}

func (s *PostService) Feed(ctx context.Context) ([]domain.Post, error) {
	return s.repo.GetAll(ctx)
}

func (s *PostService) ByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	return s.repo.GetByUser(ctx, userID)
}

// ToggleLike flips the caller's membership in the post's like map and writes
// the whole map back. Two overlapping toggles on the same post race, the last
// write wins.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (domain.Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return domain.Post{}, err
	}

	key := userID.Hex()
	if post.Likes == nil {
		post.Likes = map[string]bool{}
	}
	if post.Likes[key] {
		delete(post.Likes, key)
	} else {
		post.Likes[key] = true
	}

	return s.repo.UpdateLikes(ctx, postID, post.Likes)
}
