package sqlite

import (
	"context"
	"time"

	"github.com/tallyhq/tally/internal/domain"
)

type tokensRepo struct {
	q querier
}

const tokenColumns = `id, user_id, value, created_at`

func (r *tokensRepo) CreateToken(ctx context.Context, userID int64, value string) (domain.Token, error) {
	now := time.Now().UTC()

	res, err := r.q.ExecContext(ctx,
		`INSERT INTO tokens (user_id, value, created_at) VALUES (?, ?, ?)`,
		userID, value, now,
	)
	if err != nil {
		return domain.Token{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Token{}, err
	}

	return domain.Token{
		ID:        id,
		UserID:    userID,
		Value:     value,
		CreatedAt: now,
	}, nil
}

func (r *tokensRepo) GetTokenByValue(ctx context.Context, value string) (domain.Token, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+tokenColumns+` FROM tokens WHERE value = ?`, value)

	var t domain.Token
	if err := row.Scan(&t.ID, &t.UserID, &t.Value, &t.CreatedAt); err != nil {
		return domain.Token{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tokensRepo) ListUserTokens(ctx context.Context, userID int64) ([]domain.Token, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+tokenColumns+` FROM tokens WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []domain.Token
	for rows.Next() {
		var t domain.Token
		if err := rows.Scan(&t.ID, &t.UserID, &t.Value, &t.CreatedAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}
