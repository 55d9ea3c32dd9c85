package users

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sheikh-saqib/statement-ledger-service/internal/interfaces"
	"github.com/sheikh-saqib/statement-ledger-service/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Service handles registration, authentication and profile lookups for
// account holders. The ledger itself only consumes the user store; this
// service is the surface the HTTP layer talks to.
type Service struct {
	store     interfaces.UserStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(store interfaces.UserStore, jwtSecret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// AuthResult is what a successful login yields: the profile plus a
// signed bearer token whose subject is the user id.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates a new account holder with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return models.User{}, models.ErrInvalidUserData
	}

	// optimistic pre-check; the store's unique constraint catches races
	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return models.User{}, models.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SaveUser(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate checks the credentials and issues a session token. An
// unknown email and a wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, models.ErrIncorrectCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return AuthResult{}, models.ErrIncorrectCredentials
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: user, Token: token}, nil
}

// Profile returns the account holder's record.
func (s *Service) Profile(ctx context.Context, userID string) (models.User, error) {
	return s.store.GetUserByID(ctx, userID)
}
