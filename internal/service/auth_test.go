package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/service"
	"github.com/tallyhq/tally/internal/store"
	"github.com/tallyhq/tally/internal/store/drivers/sqlite"
	"github.com/tallyhq/tally/pkg/cryptox"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tally-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "tally.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestAuthServiceRegister(t *testing.T) {
	svc := &service.AuthService{Store: newTestStore(t)}
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user, err := svc.Register(ctx, service.RegisterRequest{
			Username:        "alice",
			Password:        "s3cret-pass",
			ConfirmPassword: "s3cret-pass",
		})
		require.NoError(t, err)
		require.NotZero(t, user.ID)
		require.Equal(t, "alice", user.Username)
		require.NotEqual(t, "s3cret-pass", user.PasswordHash)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, service.RegisterRequest{
			Username:        "alice",
			Password:        "another-pass",
			ConfirmPassword: "another-pass",
		})
		require.ErrorIs(t, err, service.ErrUsernameTaken)
	})

	t.Run("case-folded duplicate", func(t *testing.T) {
		_, err := svc.Register(ctx, service.RegisterRequest{
			Username:        "ALICE",
			Password:        "another-pass",
			ConfirmPassword: "another-pass",
		})
		require.ErrorIs(t, err, service.ErrUsernameTaken)
	})

	t.Run("password confirmation mismatch", func(t *testing.T) {
		_, err := svc.Register(ctx, service.RegisterRequest{
			Username:        "bob",
			Password:        "one",
			ConfirmPassword: "two",
		})
		require.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("empty fields", func(t *testing.T) {
		_, err := svc.Register(ctx, service.RegisterRequest{Username: "  ", Password: "x", ConfirmPassword: "x"})
		require.ErrorIs(t, err, service.ErrInvalidInput)

		_, err = svc.Register(ctx, service.RegisterRequest{Username: "carl"})
		require.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	s := newTestStore(t)
	svc := &service.AuthService{Store: s}
	ctx := context.Background()

	_, err := svc.Register(ctx, service.RegisterRequest{
		Username:        "dana",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("success mints a token", func(t *testing.T) {
		token, err := svc.Login(ctx, "dana", "correct-horse")
		require.NoError(t, err)
		require.Len(t, token.Value, 64)
	})

	t.Run("each login mints a fresh token", func(t *testing.T) {
		first, err := svc.Login(ctx, "dana", "correct-horse")
		require.NoError(t, err)
		second, err := svc.Login(ctx, "dana", "correct-horse")
		require.NoError(t, err)
		require.NotEqual(t, first.Value, second.Value)

		// The earlier token stays valid.
		user, err := svc.Authenticate(ctx, first.Value)
		require.NoError(t, err)
		require.Equal(t, "dana", user.Username)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "whatever")
		require.ErrorIs(t, err, service.ErrUnknownUser)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "dana", "wrong-horse")
		require.ErrorIs(t, err, service.ErrInvalidPassword)
	})

	t.Run("failed login writes nothing", func(t *testing.T) {
		user, err := s.Users().GetUserByUsername(ctx, "dana")
		require.NoError(t, err)

		before, err := s.Tokens().ListUserTokens(ctx, user.ID)
		require.NoError(t, err)

		_, err = svc.Login(ctx, "dana", "wrong-horse")
		require.ErrorIs(t, err, service.ErrInvalidPassword)

		after, err := s.Tokens().ListUserTokens(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, after, len(before))
	})
}

func TestAuthServiceAuthenticate(t *testing.T) {
	svc := &service.AuthService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Register(ctx, service.RegisterRequest{
		Username:        "evan",
		Password:        "pass-evan",
		ConfirmPassword: "pass-evan",
	})
	require.NoError(t, err)

	token, err := svc.Login(ctx, "evan", "pass-evan")
	require.NoError(t, err)

	t.Run("valid token resolves the owner", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, token.Value)
		require.NoError(t, err)
		require.Equal(t, "evan", user.Username)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "deadbeef")
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "")
		require.ErrorIs(t, err, service.ErrInvalidToken)
	})
}

// Register, log in, and use the token: the full first-session flow.
func TestRegisterLoginAuthenticateFlow(t *testing.T) {
	svc := &service.AuthService{Store: newTestStore(t)}
	ctx := context.Background()

	registered, err := svc.Register(ctx, service.RegisterRequest{
		Username:        "fiona",
		Password:        "initial-pass",
		ConfirmPassword: "initial-pass",
	})
	require.NoError(t, err)

	token, err := svc.Login(ctx, "Fiona", "initial-pass")
	require.NoError(t, err)
	require.Equal(t, registered.ID, token.UserID)

	user, err := svc.Authenticate(ctx, token.Value)
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
}
