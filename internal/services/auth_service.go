package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"socialink/internal/config"
	"socialink/internal/domain"
	"socialink/internal/repository"
	socialink_errors "socialink/pkg/errors"
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.Auth.JWTSecret),
		tokenTTL:  time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
	}
}

type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PicturePath string
	Location    string
	Occupation  string
}

type LoginInput struct {
	Email    string
	Password string
}

type AccessClaims struct {
	UserID string `json:"sub"`
	jwt.RegisteredClaims
}

// Register hashes the credential, stores a fresh user document with an empty
// friend set and zeroed engagement counters, and returns it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return domain.User{}, socialink_errors.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now()
	newUser := &domain.User{
		ID:            primitive.NewObjectID(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash:  string(hash),
		PicturePath:   in.PicturePath,
		Location:      in.Location,
		Occupation:    in.Occupation,
		Friends:       []primitive.ObjectID{},
		ViewedProfile: 0,
		Impressions:   0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return domain.User{}, err
	}

	return *newUser, nil
}

// Login verifies the credential against the stored hash and issues a signed
// token embedding the user id. An unknown email is reported as not found,
// a hash mismatch as invalid credentials.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return "", domain.User{}, socialink_errors.ErrInvalidInput
	}

	u, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return "", domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return "", domain.User{}, socialink_errors.ErrInvalidCredentials
	}

	token, err := s.GenerateAccessToken(u.ID)
	if err != nil {
		return "", domain.User{}, err
	}

	return token, u, nil
}

// GenerateAccessToken signs an HS256 token carrying the user id as subject.
// Tokens are stateless; there is no server-side session record.
func (s *AuthService) GenerateAccessToken(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func (s *AuthService) ParseAccessToken(tokenStr string) (AccessClaims, error) {
	if tokenStr == "" {
		return AccessClaims{}, socialink_errors.ErrUnauthenticated
	}

	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return AccessClaims{}, socialink_errors.ErrForbidden
	}

	return *claims, nil
}

// HTTPStatus maps the sentinel error taxonomy onto response status codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, socialink_errors.ErrInvalidInput),
		errors.Is(err, socialink_errors.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, socialink_errors.ErrUnauthenticated),
		errors.Is(err, socialink_errors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, socialink_errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, socialink_errors.ErrAlreadyExists),
		errors.Is(err, socialink_errors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, socialink_errors.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, socialink_errors.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

type ctxKey string

var userIDKey ctxKey = "user_id"

func WithUserContext(ctx context.Context, userID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return primitive.NilObjectID, false
	}
	userID, ok := value.(primitive.ObjectID)
	return userID, ok
}
