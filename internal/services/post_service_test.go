package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialink/internal/domain"
	socialink_errors "socialink/pkg/errors"
)

func TestPostService_Create(t *testing.T) {
	author := domain.User{
		ID:          primitive.NewObjectID(),
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Location:    "London",
		PicturePath: "ada.jpg",
	}

	t.Run("denormalizes the author's fields at creation time", func(t *testing.T) {
		var stored *domain.Post
		userRepo := &mockUserRepo{
			GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
				return author, nil
			},
		}
		postRepo := &mockPostRepo{
			CreateFunc: func(ctx context.Context, p *domain.Post) error {
				stored = p
				return nil
			},
			GetAllFunc: func(ctx context.Context) ([]domain.Post, error) {
				return []domain.Post{*stored}, nil
			},
		}
		svc := NewPostService(postRepo, userRepo)

		posts, err := svc.Create(context.Background(), CreatePostInput{
			UserID:      author.ID,
			Description: "first post",
			PicturePath: "pic.jpg",
		})
		require.NoError(t, err)
		require.NotNil(t, stored)
		require.Len(t, posts, 1)

		assert.Equal(t, author.ID, stored.UserID)
		assert.Equal(t, "Ada", stored.FirstName)
		assert.Equal(t, "Lovelace", stored.LastName)
		assert.Equal(t, "London", stored.Location)
		assert.Equal(t, "ada.jpg", stored.UserPicturePath)
		assert.Equal(t, "pic.jpg", stored.PicturePath)
		assert.Empty(t, stored.Likes)
	})

	t.Run("unknown author reports not found", func(t *testing.T) {
		userRepo := &mockUserRepo{
			GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
				return domain.User{}, socialink_errors.ErrNotFound
			},
		}
		svc := NewPostService(&mockPostRepo{}, userRepo)

		_, err := svc.Create(context.Background(), CreatePostInput{UserID: primitive.NewObjectID()})
		assert.ErrorIs(t, err, socialink_errors.ErrNotFound)
	})

	t.Run("store failure surfaces as conflict", func(t *testing.T) {
		userRepo := &mockUserRepo{
			GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
				return author, nil
			},
		}
		postRepo := &mockPostRepo{
			CreateFunc: func(ctx context.Context, p *domain.Post) error {
				return assert.AnError
			},
		}
		svc := NewPostService(postRepo, userRepo)

		_, err := svc.Create(context.Background(), CreatePostInput{UserID: author.ID})
		assert.ErrorIs(t, err, socialink_errors.ErrConflict)
		assert.Contains(t, err.Error(), assert.AnError.Error())
	})
}

func TestPostService_ToggleLike(t *testing.T) {
	userID := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	// in-memory post backing both reads and like writes
	current := domain.Post{ID: postID, UserID: primitive.NewObjectID(), Likes: map[string]bool{}}
	postRepo := &mockPostRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (domain.Post, error) {
			if id != postID {
				return domain.Post{}, socialink_errors.ErrNotFound
			}
			return current, nil
		},
		UpdateLikesFunc: func(ctx context.Context, id primitive.ObjectID, likes map[string]bool) (domain.Post, error) {
			current.Likes = likes
			return current, nil
		},
	}
	svc := NewPostService(postRepo, &mockUserRepo{})

	first, err := svc.ToggleLike(context.Background(), postID, userID)
	require.NoError(t, err)
	assert.True(t, first.Likes[userID.Hex()])

	second, err := svc.ToggleLike(context.Background(), postID, userID)
	require.NoError(t, err)
	_, liked := second.Likes[userID.Hex()]
	assert.False(t, liked, "two toggles must restore the original state")

	_, err = svc.ToggleLike(context.Background(), primitive.NewObjectID(), userID)
	assert.ErrorIs(t, err, socialink_errors.ErrNotFound)
}
