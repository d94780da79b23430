package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/store"
	"github.com/tallyhq/tally/internal/store/drivers/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "tally.db")
	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestUsersRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("create and fetch", func(t *testing.T) {
		created, err := s.Users().CreateUser(ctx, "alice", "hash-a")
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		require.Equal(t, "alice", created.Username)
		require.False(t, created.CreatedAt.IsZero())

		byID, err := s.Users().GetUserByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.Username, byID.Username)
		require.Equal(t, created.PasswordHash, byID.PasswordHash)

		byName, err := s.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, created.ID, byName.ID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := s.Users().CreateUser(ctx, "bob", "hash-b")
		require.NoError(t, err)

		_, err = s.Users().CreateUser(ctx, "bob", "hash-b2")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.Users().GetUserByUsername(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Users().GetUserByID(ctx, 9999)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTokensRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.Users().CreateUser(ctx, "carol", "hash-c")
	require.NoError(t, err)

	t.Run("create and lookup by value", func(t *testing.T) {
		tok, err := s.Tokens().CreateToken(ctx, user.ID, "tok-1")
		require.NoError(t, err)
		require.NotZero(t, tok.ID)

		found, err := s.Tokens().GetTokenByValue(ctx, "tok-1")
		require.NoError(t, err)
		require.Equal(t, user.ID, found.UserID)
	})

	t.Run("duplicate value", func(t *testing.T) {
		_, err := s.Tokens().CreateToken(ctx, user.ID, "tok-dup")
		require.NoError(t, err)

		_, err = s.Tokens().CreateToken(ctx, user.ID, "tok-dup")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("unknown value", func(t *testing.T) {
		_, err := s.Tokens().GetTokenByValue(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list accumulates per user", func(t *testing.T) {
		other, err := s.Users().CreateUser(ctx, "dave", "hash-d")
		require.NoError(t, err)

		_, err = s.Tokens().CreateToken(ctx, other.ID, "tok-d1")
		require.NoError(t, err)
		_, err = s.Tokens().CreateToken(ctx, other.ID, "tok-d2")
		require.NoError(t, err)

		tokens, err := s.Tokens().ListUserTokens(ctx, other.ID)
		require.NoError(t, err)
		require.Len(t, tokens, 2)
	})
}

func TestTasksRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner, err := s.Users().CreateUser(ctx, "erin", "hash-e")
	require.NoError(t, err)
	stranger, err := s.Users().CreateUser(ctx, "frank", "hash-f")
	require.NoError(t, err)

	task, err := s.Tasks().CreateTask(ctx, owner.ID, "write report", "quarterly numbers")
	require.NoError(t, err)
	require.False(t, task.Done)

	t.Run("scoped to owner", func(t *testing.T) {
		got, err := s.Tasks().GetTask(ctx, owner.ID, task.ID)
		require.NoError(t, err)
		require.Equal(t, "write report", got.Title)

		_, err = s.Tasks().GetTask(ctx, stranger.ID, task.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		task.Done = true
		task.Title = "write report v2"
		updated, err := s.Tasks().UpdateTask(ctx, task)
		require.NoError(t, err)
		require.True(t, updated.Done)

		got, err := s.Tasks().GetTask(ctx, owner.ID, task.ID)
		require.NoError(t, err)
		require.True(t, got.Done)
		require.Equal(t, "write report v2", got.Title)
	})

	t.Run("update scoped to owner", func(t *testing.T) {
		hijack := task
		hijack.UserID = stranger.ID
		_, err := s.Tasks().UpdateTask(ctx, hijack)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list per user", func(t *testing.T) {
		_, err := s.Tasks().CreateTask(ctx, owner.ID, "second", "")
		require.NoError(t, err)

		mine, err := s.Tasks().ListUserTasks(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, mine, 2)

		theirs, err := s.Tasks().ListUserTasks(ctx, stranger.ID)
		require.NoError(t, err)
		require.Empty(t, theirs)
	})

	t.Run("delete", func(t *testing.T) {
		require.ErrorIs(t, s.Tasks().DeleteTask(ctx, stranger.ID, task.ID), store.ErrNotFound)
		require.NoError(t, s.Tasks().DeleteTask(ctx, owner.ID, task.ID))
		require.ErrorIs(t, s.Tasks().DeleteTask(ctx, owner.ID, task.ID), store.ErrNotFound)
	})
}

func TestCostsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cost, err := s.Costs().CreateCost(ctx, "hosting", 1999)
	require.NoError(t, err)
	require.NotZero(t, cost.ID)

	t.Run("get and list", func(t *testing.T) {
		got, err := s.Costs().GetCost(ctx, cost.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1999), got.Amount)

		all, err := s.Costs().ListCosts(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("update", func(t *testing.T) {
		cost.Amount = 2499
		updated, err := s.Costs().UpdateCost(ctx, cost)
		require.NoError(t, err)
		require.Equal(t, int64(2499), updated.Amount)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Costs().DeleteCost(ctx, cost.ID))
		_, err := s.Costs().GetCost(ctx, cost.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, s.Costs().DeleteCost(ctx, cost.ID), store.ErrNotFound)
	})
}

func TestTokenCascade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.Users().CreateUser(ctx, "gina", "hash-g")
	require.NoError(t, err)
	_, err = s.Tokens().CreateToken(ctx, user.ID, "tok-g")
	require.NoError(t, err)

	// Deleting the user rides the ON DELETE CASCADE on tokens.user_id.
	_, err = s.DB().ExecContext(ctx, `DELETE FROM users WHERE id = ?`, user.ID)
	require.NoError(t, err)

	_, err = s.Tokens().GetTokenByValue(ctx, "tok-g")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	boom := context.DeadlineExceeded
	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, createErr := tx.Users().CreateUser(ctx, "ghost", "hash")
		require.NoError(t, createErr)
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users().GetUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxCommit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, createErr := tx.Users().CreateUser(ctx, "kept", "hash")
		return createErr
	})
	require.NoError(t, err)

	user, err := s.Users().GetUserByUsername(ctx, "kept")
	require.NoError(t, err)
	require.Equal(t, "kept", user.Username)
}
