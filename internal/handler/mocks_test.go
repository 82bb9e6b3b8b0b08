package handler

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialink/internal/domain"
	socialink_errors "socialink/pkg/errors"
)

// memUserRepo is an in-memory repository.UserRepository for handler tests.
type memUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]domain.User
	calls int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[primitive.ObjectID]domain.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return socialink_errors.ErrAlreadyExists
		}
	}
	m.users[u.ID] = *u
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	u, ok := m.users[id]
	if !ok {
		return domain.User{}, socialink_errors.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, socialink_errors.ErrNotFound
}

func (m *memUserRepo) GetManyByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	out := []domain.User{}
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUserRepo) UpdateFriends(ctx context.Context, id primitive.ObjectID, friends []primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	u, ok := m.users[id]
	if !ok {
		return socialink_errors.ErrNotFound
	}
	u.Friends = friends
	m.users[id] = u
	return nil
}

func (m *memUserRepo) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// memPostRepo is an in-memory repository.PostRepository for handler tests.
type memPostRepo struct {
	mu    sync.Mutex
	posts []domain.Post
	calls int
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{}
}

func (m *memPostRepo) Create(ctx context.Context, p *domain.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Likes == nil {
		p.Likes = map[string]bool{}
	}
	m.posts = append([]domain.Post{*p}, m.posts...)
	return nil
}

func (m *memPostRepo) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Post{}, socialink_errors.ErrNotFound
}

func (m *memPostRepo) GetAll(ctx context.Context) ([]domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	out := make([]domain.Post, len(m.posts))
	copy(out, m.posts)
	return out, nil
}

func (m *memPostRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	out := []domain.Post{}
	for _, p := range m.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPostRepo) UpdateLikes(ctx context.Context, id primitive.ObjectID, likes map[string]bool) (domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	for i, p := range m.posts {
		if p.ID == id {
			m.posts[i].Likes = likes
			return m.posts[i], nil
		}
	}
	return domain.Post{}, socialink_errors.ErrNotFound
}

func (m *memPostRepo) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
