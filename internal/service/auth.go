package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tallyhq/tally/internal/domain"
	"github.com/tallyhq/tally/internal/store"
	"github.com/tallyhq/tally/pkg/cryptox"
	"github.com/tallyhq/tally/pkg/slogx"
)

var (
	ErrInvalidInput    = errors.New("invalid_input")
	ErrUsernameTaken   = errors.New("username_taken")
	ErrUnknownUser     = errors.New("unknown_user")
	ErrInvalidPassword = errors.New("invalid_password")
	ErrInvalidToken    = errors.New("invalid_token")
)

// AuthService owns registration, login, and bearer-token authentication.
type AuthService struct {
	Store store.Store
}

// RegisterRequest captures the validated inputs for creating an account.
type RegisterRequest struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// Register creates a new account. Usernames are case-folded before storage so
// "Alice" and "alice" are the same account. The pre-check and insert run in
// one transaction; a concurrent duplicate that slips past the pre-check is
// still caught by the unique index and reported as ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (domain.User, error) {
	log := slogx.FromContext(ctx)

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		return domain.User{}, ErrInvalidInput
	}
	if req.Password != req.ConfirmPassword {
		return domain.User{}, ErrInvalidInput
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, err
	}

	var user domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByUsername(ctx, username); err == nil {
			return store.ErrAlreadyExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		user, err = tx.Users().CreateUser(ctx, username, hash)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	log.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login verifies the credentials and mints a fresh bearer token. Every
// successful login issues a new token; old tokens stay valid. Nothing is
// written on a failed attempt.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Token, error) {
	log := slogx.FromContext(ctx)

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return domain.Token{}, ErrInvalidInput
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Token{}, ErrUnknownUser
		}
		return domain.Token{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.Token{}, ErrInvalidPassword
		}
		return domain.Token{}, err
	}

	value, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Token{}, err
	}

	token, err := s.Store.Tokens().CreateToken(ctx, user.ID, value)
	if err != nil {
		return domain.Token{}, err
	}

	log.Info("user logged in", "user_id", user.ID)
	return token, nil
}

// Authenticate resolves a bearer token value to its owner. Unknown values
// return ErrInvalidToken; tokens never expire, so a hit is always valid.
func (s *AuthService) Authenticate(ctx context.Context, value string) (domain.User, error) {
	if value == "" {
		return domain.User{}, ErrInvalidToken
	}

	token, err := s.Store.Tokens().GetTokenByValue(ctx, value)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, token.UserID)
}
