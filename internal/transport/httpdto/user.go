package httpdto

import (
	"time"

	"socialink/internal/domain"
)

// UserDTO represents a user in API responses. The credential hash is never
// part of the payload.
type UserDTO struct {
	ID            string   `json:"id"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	PicturePath   string   `json:"picturePath,omitempty"`
	Location      string   `json:"location,omitempty"`
	Occupation    string   `json:"occupation,omitempty"`
	Friends       []string `json:"friends"`
	ViewedProfile int64    `json:"viewedProfile"`
	Impressions   int64    `json:"impressions"`
	CreatedAt     string   `json:"createdAt"`
}

// FriendDTO is the profile summary returned when resolving a friend list.
type FriendDTO struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PicturePath string `json:"picturePath,omitempty"`
	Location    string `json:"location,omitempty"`
	Occupation  string `json:"occupation,omitempty"`
}

// FriendsResponse is returned when listing a user's friends
type FriendsResponse struct {
	Friends []FriendDTO `json:"friends"`
}

func FromUser(u domain.User) UserDTO {
	friends := make([]string, len(u.Friends))
	for i, id := range u.Friends {
		friends[i] = id.Hex()
	}
	return UserDTO{
		ID:            u.ID.Hex(),
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		PicturePath:   u.PicturePath,
		Location:      u.Location,
		Occupation:    u.Occupation,
		Friends:       friends,
		ViewedProfile: u.ViewedProfile,
		Impressions:   u.Impressions,
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
	}
}

func FromFriend(u domain.User) FriendDTO {
	return FriendDTO{
		ID:          u.ID.Hex(),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PicturePath: u.PicturePath,
		Location:    u.Location,
		Occupation:  u.Occupation,
	}
}

func FromFriendSlice(users []domain.User) []FriendDTO {
	out := make([]FriendDTO, len(users))
	for i, u := range users {
		out[i] = FromFriend(u)
	}
	return out
}
