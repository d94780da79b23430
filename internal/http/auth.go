package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tallyhq/tally/internal/service"
	"github.com/tallyhq/tally/pkg/httpx"
	"github.com/tallyhq/tally/pkg/slogx"
	"github.com/tallyhq/tally/pkg/tallysdk"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new user account from a username and password pair
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tallysdk.RegisterRequest	true	"username, password, confirm_password"
//	@Success		201		{object}	tallysdk.MessageResponse	"detail"
//	@Failure		409		{object}	tallysdk.MessageResponse	"detail"
//	@Failure		422		{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tallysdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	_, err := h.AuthService.Register(ctx, service.RegisterRequest{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteDetail(w, http.StatusUnprocessableEntity, "invalid registration data")
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteDetail(w, http.StatusConflict, "username already exists")
		default:
			log.Error("failed to register user", "err", err)
			httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httpx.WriteDetail(w, http.StatusCreated, "user registered successfully")
}

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verify credentials and mint a bearer token. Each login issues a fresh token; previously issued tokens remain valid.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tallysdk.LoginRequest		true	"username, password"
//	@Success		200		{object}	tallysdk.LoginResponse		"detail, token"
//	@Failure		400		{object}	tallysdk.MessageResponse	"detail"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tallysdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	token, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrUnknownUser):
			httpx.WriteDetail(w, http.StatusBadRequest, "user doesnt exists")
		case errors.Is(err, service.ErrInvalidPassword):
			httpx.WriteDetail(w, http.StatusBadRequest, "password is invalid")
		default:
			log.Error("failed to log in user", "err", err)
			httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tallysdk.LoginResponse{
		Detail: "logged in successfully",
		Token:  token.Value,
	})
}
