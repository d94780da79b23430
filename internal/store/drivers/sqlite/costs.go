package sqlite

import (
	"context"
	"time"

	"github.com/tallyhq/tally/internal/domain"
	"github.com/tallyhq/tally/internal/store"
)

type costsRepo struct {
	q querier
}

const costColumns = `id, description, amount, created_at, updated_at`

func (r *costsRepo) CreateCost(ctx context.Context, description string, amount int64) (domain.Cost, error) {
	now := time.Now().UTC()

	res, err := r.q.ExecContext(ctx,
		`INSERT INTO costs (description, amount, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		description, amount, now, now,
	)
	if err != nil {
		return domain.Cost{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Cost{}, err
	}

	return domain.Cost{
		ID:          id,
		Description: description,
		Amount:      amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (r *costsRepo) GetCost(ctx context.Context, id int64) (domain.Cost, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+costColumns+` FROM costs WHERE id = ?`, id)
	return scanCost(row)
}

func (r *costsRepo) ListCosts(ctx context.Context) ([]domain.Cost, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+costColumns+` FROM costs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var costs []domain.Cost
	for rows.Next() {
		c, err := scanCost(rows)
		if err != nil {
			return nil, err
		}
		costs = append(costs, c)
	}
	return costs, rows.Err()
}

func (r *costsRepo) UpdateCost(ctx context.Context, cost domain.Cost) (domain.Cost, error) {
	cost.UpdatedAt = time.Now().UTC()

	res, err := r.q.ExecContext(ctx,
		`UPDATE costs SET description = ?, amount = ?, updated_at = ? WHERE id = ?`,
		cost.Description, cost.Amount, cost.UpdatedAt, cost.ID,
	)
	if err != nil {
		return domain.Cost{}, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.Cost{}, err
	}
	if n == 0 {
		return domain.Cost{}, store.ErrNotFound
	}
	return cost, nil
}

func (r *costsRepo) DeleteCost(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM costs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanCost(row rowScanner) (domain.Cost, error) {
	var c domain.Cost
	err := row.Scan(&c.ID, &c.Description, &c.Amount, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Cost{}, mapNotFound(err)
	}
	return c, nil
}
