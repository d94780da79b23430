package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tallyhq/tally/internal/domain"
	"github.com/tallyhq/tally/internal/service"
	"github.com/tallyhq/tally/internal/store"
	"github.com/tallyhq/tally/pkg/httpx"
	"github.com/tallyhq/tally/pkg/slogx"
	"github.com/tallyhq/tally/pkg/tallysdk"
)

type CostsHandler struct {
	CostService *service.CostService
}

// HandleList godoc
//
//	@Summary		List Costs Endpoint
//	@Description	List the shared expense ledger
//	@Tags			Costs
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		tallysdk.Cost
//	@Failure		401	{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/costs [get].
func (h *CostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	costs, err := h.CostService.ListCosts(ctx)
	if err != nil {
		log.Error("failed to list costs", "err", err)
		httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]tallysdk.Cost, 0, len(costs))
	for _, c := range costs {
		out = append(out, costToWire(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Create Cost Endpoint
//	@Description	Append an entry to the expense ledger. Amount is integer cents.
//	@Tags			Costs
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		tallysdk.CostRequest	true	"description, amount"
//	@Success		201		{object}	tallysdk.Cost
//	@Failure		422		{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/costs [post].
func (h *CostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tallysdk.CostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	cost, err := h.CostService.CreateCost(ctx, service.CostInput{
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			httpx.WriteDetail(w, http.StatusUnprocessableEntity, "invalid cost data")
			return
		}
		log.Error("failed to create cost", "err", err)
		httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, costToWire(cost))
}

// HandleGet godoc
//
//	@Summary		Get Cost Endpoint
//	@Description	Fetch a ledger entry by id
//	@Tags			Costs
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Cost ID"
//	@Success		200	{object}	tallysdk.Cost
//	@Failure		404	{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/costs/{id} [get].
func (h *CostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteDetail(w, http.StatusNotFound, "cost not found")
		return
	}

	cost, err := h.CostService.GetCost(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteDetail(w, http.StatusNotFound, "cost not found")
			return
		}
		log.Error("failed to get cost", "err", err)
		httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, costToWire(cost))
}

// HandleUpdate godoc
//
//	@Summary		Update Cost Endpoint
//	@Description	Replace a ledger entry's description and amount
//	@Tags			Costs
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int						true	"Cost ID"
//	@Param			request	body		tallysdk.CostRequest	true	"description, amount"
//	@Success		200		{object}	tallysdk.Cost
//	@Failure		404		{object}	tallysdk.MessageResponse	"detail"
//	@Failure		422		{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/costs/{id} [put].
func (h *CostsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteDetail(w, http.StatusNotFound, "cost not found")
		return
	}

	var req tallysdk.CostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	cost, err := h.CostService.UpdateCost(ctx, id, service.CostInput{
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteDetail(w, http.StatusUnprocessableEntity, "invalid cost data")
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteDetail(w, http.StatusNotFound, "cost not found")
		default:
			log.Error("failed to update cost", "err", err)
			httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, costToWire(cost))
}

// HandleDelete godoc
//
//	@Summary		Delete Cost Endpoint
//	@Description	Remove a ledger entry
//	@Tags			Costs
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Cost ID"
//	@Success		204
//	@Failure		404	{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/costs/{id} [delete].
func (h *CostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteDetail(w, http.StatusNotFound, "cost not found")
		return
	}

	if err := h.CostService.DeleteCost(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteDetail(w, http.StatusNotFound, "cost not found")
			return
		}
		log.Error("failed to delete cost", "err", err)
		httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func costToWire(c domain.Cost) tallysdk.Cost {
	return tallysdk.Cost{
		ID:          c.ID,
		Description: c.Description,
		Amount:      c.Amount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
