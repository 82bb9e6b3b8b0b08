package httpdto

import (
	"time"

	"socialink/internal/domain"
)

// CreatePostRequest is bound from the multipart form posted to /posts.
type CreatePostRequest struct {
	Description string `form:"description" binding:"required"`
}

// PostDTO represents a post in API responses
type PostDTO struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Location        string          `json:"location,omitempty"`
	Description     string          `json:"description"`
	PicturePath     string          `json:"picturePath,omitempty"`
	UserPicturePath string          `json:"userPicturePath,omitempty"`
	Likes           map[string]bool `json:"likes"`
	CreatedAt       string          `json:"createdAt"`
}

// PostsResponse wraps a list of posts
type PostsResponse struct {
	Posts []PostDTO `json:"posts"`
}

func FromPost(p domain.Post) PostDTO {
	likes := p.Likes
	if likes == nil {
		likes = map[string]bool{}
	}
	return PostDTO{
		ID:              p.ID.Hex(),
		UserID:          p.UserID.Hex(),
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Location:        p.Location,
		Description:     p.Description,
		PicturePath:     p.PicturePath,
		UserPicturePath: p.UserPicturePath,
		Likes:           likes,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}

func FromPostSlice(posts []domain.Post) []PostDTO {
	out := make([]PostDTO, len(posts))
	for i, p := range posts {
		out[i] = FromPost(p)
	}
	return out
}
