package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tallyhq/tally/internal/service"
	"github.com/tallyhq/tally/internal/store"
	"github.com/tallyhq/tally/pkg/httpx"
	"github.com/tallyhq/tally/pkg/slogx"

	_ "github.com/tallyhq/tally/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	TaskService    *service.TaskService
	CostService    *service.CostService
	GatewayService *service.GatewayService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTasks()
	r.registerCosts()
	r.registerProviders()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Tally API
//	@version		0.1.0
//	@description	Task and expense tracking service with opaque bearer-token authentication
//	@description	and a read-only gateway to external course providers.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Opaque bearer token from the login endpoint. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// Auth endpoints carry no rate limit on purpose: login issues a token per
// success and register is pre-checked, so a limiter here would change the
// documented behaviour. Brute-force throttling belongs in front of the
// service for now.
func (r *Router) registerAuth() {
	r.Mux.Handle("POST /v1/auth/register", &RegisterHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /v1/auth/login", &LoginHandler{AuthService: r.AuthService})
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	secure := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			TokenAuthMiddleware(r.AuthService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/tasks", secure(h.HandleList))
	r.Mux.Handle("POST /v1/tasks", secure(h.HandleCreate))
	r.Mux.Handle("GET /v1/tasks/{id}", secure(h.HandleGet))
	r.Mux.Handle("PUT /v1/tasks/{id}", secure(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/tasks/{id}", secure(h.HandleDelete))
}

func (r *Router) registerCosts() {
	h := &CostsHandler{CostService: r.CostService}

	secure := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			TokenAuthMiddleware(r.AuthService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/costs", secure(h.HandleList))
	r.Mux.Handle("POST /v1/costs", secure(h.HandleCreate))
	r.Mux.Handle("GET /v1/costs/{id}", secure(h.HandleGet))
	r.Mux.Handle("PUT /v1/costs/{id}", secure(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/costs/{id}", secure(h.HandleDelete))
}

func (r *Router) registerProviders() {
	h := &GatewayHandler{GatewayService: r.GatewayService}

	// Public read-only relay; limited by IP so one client cannot exhaust
	// the upstream budget.
	relay := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.RateLimitByIP(httpx.UpstreamLimit),
		)
	}

	r.Mux.Handle("GET /v1/providers/{provider}/categories", relay(h.HandleListCategories))
	r.Mux.Handle("GET /v1/providers/{provider}/categories/{slug}", relay(h.HandleGetCategory))
	r.Mux.Handle("GET /v1/providers/{provider}/categories/{slug}/search", relay(h.HandleSearchCategory))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
