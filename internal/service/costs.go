package service

import (
	"context"
	"strings"
	"unicode"

	"github.com/tallyhq/tally/internal/domain"
	"github.com/tallyhq/tally/internal/store"
)

const (
	maxCostDescriptionLength = 50
	maxCostAmount            = 1_000_000_000
)

// CostService owns the shared expense ledger. Amounts are integer cents;
// valid amounts sit strictly between zero and maxCostAmount.
type CostService struct {
	Store store.Store
}

type CostInput struct {
	Description string
	Amount      int64
}

func (in CostInput) validate() error {
	desc := strings.TrimSpace(in.Description)
	if desc == "" || len(desc) > maxCostDescriptionLength {
		return ErrInvalidInput
	}
	// Descriptions are human labels like "domain renewal"; digits and
	// punctuation are rejected.
	for _, r := range desc {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return ErrInvalidInput
		}
	}
	if in.Amount <= 0 || in.Amount >= maxCostAmount {
		return ErrInvalidInput
	}
	return nil
}

func (s *CostService) CreateCost(ctx context.Context, in CostInput) (domain.Cost, error) {
	if err := in.validate(); err != nil {
		return domain.Cost{}, err
	}
	return s.Store.Costs().CreateCost(ctx, strings.TrimSpace(in.Description), in.Amount)
}

func (s *CostService) GetCost(ctx context.Context, id int64) (domain.Cost, error) {
	return s.Store.Costs().GetCost(ctx, id)
}

func (s *CostService) ListCosts(ctx context.Context) ([]domain.Cost, error) {
	return s.Store.Costs().ListCosts(ctx)
}

func (s *CostService) UpdateCost(ctx context.Context, id int64, in CostInput) (domain.Cost, error) {
	if err := in.validate(); err != nil {
		return domain.Cost{}, err
	}

	cost, err := s.Store.Costs().GetCost(ctx, id)
	if err != nil {
		return domain.Cost{}, err
	}

	cost.Description = strings.TrimSpace(in.Description)
	cost.Amount = in.Amount
	return s.Store.Costs().UpdateCost(ctx, cost)
}

func (s *CostService) DeleteCost(ctx context.Context, id int64) error {
	return s.Store.Costs().DeleteCost(ctx, id)
}
