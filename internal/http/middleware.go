package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tallyhq/tally/internal/service"
	"github.com/tallyhq/tally/pkg/httpx"
	"github.com/tallyhq/tally/pkg/slogx"
)

// TokenAuthMiddleware resolves the bearer token on the request and stashes
// the owner's user id in the context. Requests without a valid token get 401.
func TokenAuthMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			value, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "not authenticated")
				return
			}

			user, err := auth.Authenticate(ctx, value)
			if err != nil {
				if errors.Is(err, service.ErrInvalidToken) {
					unauthorized(w, "token is invalid")
					return
				}
				log.Error("token lookup failed", "err", err)
				httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(httpx.ContextWithUserID(ctx, user.ID)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, value, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	httpx.WriteDetail(w, http.StatusUnauthorized, detail)
}
