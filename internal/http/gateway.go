package http

import (
	"errors"
	"net/http"

	"github.com/tallyhq/tally/internal/service"
	"github.com/tallyhq/tally/pkg/httpx"
	"github.com/tallyhq/tally/pkg/slogx"
)

type GatewayHandler struct {
	GatewayService *service.GatewayService
}

// HandleListCategories godoc
//
//	@Summary		List Provider Categories Endpoint
//	@Description	Relay the category index of a registered course provider. Query parameters are forwarded untouched.
//	@Tags			Providers
//	@Produce		json
//	@Param			provider	path		string	true	"Provider name"
//	@Success		200			{object}	object
//	@Failure		404			{object}	tallysdk.MessageResponse	"detail"
//	@Failure		502			{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/providers/{provider}/categories [get].
func (h *GatewayHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	body, err := h.GatewayService.ListCategories(r.Context(), r.PathValue("provider"), r.URL.Query())
	h.relayResult(w, r, body, err)
}

// HandleGetCategory godoc
//
//	@Summary		Get Provider Category Endpoint
//	@Description	Relay a single category by slug from a registered course provider
//	@Tags			Providers
//	@Produce		json
//	@Param			provider	path		string	true	"Provider name"
//	@Param			slug		path		string	true	"Category slug"
//	@Success		200			{object}	object
//	@Failure		404			{object}	tallysdk.MessageResponse	"detail"
//	@Failure		502			{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/providers/{provider}/categories/{slug} [get].
func (h *GatewayHandler) HandleGetCategory(w http.ResponseWriter, r *http.Request) {
	body, err := h.GatewayService.GetCategory(r.Context(), r.PathValue("provider"), r.PathValue("slug"), r.URL.Query())
	h.relayResult(w, r, body, err)
}

// HandleSearchCategory godoc
//
//	@Summary		Search Provider Category Endpoint
//	@Description	Relay a search within a provider category
//	@Tags			Providers
//	@Produce		json
//	@Param			provider	path		string	true	"Provider name"
//	@Param			slug		path		string	true	"Category slug"
//	@Param			q			query		string	false	"Search term"
//	@Success		200			{object}	object
//	@Failure		404			{object}	tallysdk.MessageResponse	"detail"
//	@Failure		502			{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/providers/{provider}/categories/{slug}/search [get].
func (h *GatewayHandler) HandleSearchCategory(w http.ResponseWriter, r *http.Request) {
	body, err := h.GatewayService.SearchCategory(r.Context(), r.PathValue("provider"), r.PathValue("slug"), r.URL.Query())
	h.relayResult(w, r, body, err)
}

func (h *GatewayHandler) relayResult(w http.ResponseWriter, r *http.Request, body []byte, err error) {
	log := slogx.FromContext(r.Context())

	if err != nil {
		var statusErr *service.UpstreamStatusError
		switch {
		case errors.Is(err, service.ErrUnknownProvider):
			httpx.WriteDetail(w, http.StatusNotFound, "unknown provider")
		case errors.As(err, &statusErr):
			// Upstream error statuses pass through to the client; only
			// transport-level faults translate to 502.
			if statusErr.Code == http.StatusNotFound {
				httpx.WriteDetail(w, http.StatusNotFound, "category not found")
				return
			}
			log.Warn("provider returned error status", "provider", statusErr.Provider, "status", statusErr.Code)
			httpx.WriteDetail(w, statusErr.Code, "provider request failed")
		case errors.Is(err, service.ErrUpstreamBadJSON):
			httpx.WriteDetail(w, http.StatusBadGateway, "provider returned an invalid response")
		case errors.Is(err, service.ErrUpstreamUnreachable):
			httpx.WriteDetail(w, http.StatusBadGateway, "provider is unreachable")
		default:
			log.Error("provider relay failed", "err", err)
			httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httpx.WriteRawJSON(w, http.StatusOK, body)
}
