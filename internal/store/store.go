package store

import (
	"context"
	"errors"

	"github.com/tallyhq/tally/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. Sub-repositories keep concerns tidy and testable.
//
// The Tx/WithTx pair is the request-scoped resource contract: a handle is
// acquired for one logical operation and released on every exit path,
// including panics, via the driver's deferred rollback.
type Store interface {
	Users() Users
	Tokens() Tokens
	Tasks() Tasks
	Costs() Costs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped store. It embeds the same repos plus
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername looks up by the already-normalized (lowercased)
	// username. Absence is reported as ErrNotFound; the caller decides
	// policy.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user and returns it with the generated id.
	// A username collision surfaces as ErrAlreadyExists — the UNIQUE
	// constraint is the authoritative duplicate guard, not the caller's
	// pre-check.
	CreateUser(ctx context.Context, username, passwordHash string) (domain.User, error)
}

type Tokens interface {
	// CreateToken persists a freshly minted token bound to userID and
	// returns it with the generated id. Always a new row; existing tokens
	// are never updated.
	CreateToken(ctx context.Context, userID int64, value string) (domain.Token, error)

	// GetTokenByValue is the bearer-credential lookup.
	GetTokenByValue(ctx context.Context, value string) (domain.Token, error)

	// ListUserTokens returns all tokens issued to a user, oldest first.
	ListUserTokens(ctx context.Context, userID int64) ([]domain.Token, error)
}

type Tasks interface {
	// CreateTask inserts a new, not-done task owned by userID.
	CreateTask(ctx context.Context, userID int64, title, description string) (domain.Task, error)

	// GetTask fetches a task only when it belongs to userID; anything else
	// is ErrNotFound. Ownership never leaks through error codes.
	GetTask(ctx context.Context, userID, id int64) (domain.Task, error)

	ListUserTasks(ctx context.Context, userID int64) ([]domain.Task, error)

	// UpdateTask rewrites title/description/done for an owned task. The
	// task's UserID scopes the write the same way GetTask scopes the read.
	UpdateTask(ctx context.Context, t domain.Task) (domain.Task, error)

	DeleteTask(ctx context.Context, userID, id int64) error
}

type Costs interface {
	CreateCost(ctx context.Context, description string, amount int64) (domain.Cost, error)
	GetCost(ctx context.Context, id int64) (domain.Cost, error)
	ListCosts(ctx context.Context) ([]domain.Cost, error)
	UpdateCost(ctx context.Context, c domain.Cost) (domain.Cost, error)
	DeleteCost(ctx context.Context, id int64) error
}
