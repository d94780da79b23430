package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpapi "github.com/tallyhq/tally/internal/http"
	"github.com/tallyhq/tally/internal/service"
	"github.com/tallyhq/tally/internal/store"
	"github.com/tallyhq/tally/internal/store/drivers/sqlite"
	"github.com/tallyhq/tally/pkg/cryptox"
	"github.com/tallyhq/tally/pkg/tallysdk"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tally-http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testEnv struct {
	router *httpapi.Router
	store  store.Store
}

func newTestEnv(t *testing.T, providers ...service.Provider) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "tally.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := httpapi.NewRouter("test", st, logger)
	router.AuthService = &service.AuthService{Store: st}
	router.TaskService = &service.TaskService{Store: st}
	router.CostService = &service.CostService{Store: st}
	router.GatewayService = service.NewGatewayService(providers, 5*time.Second)
	router.ApplyRoutes()

	return &testEnv{router: router, store: st}
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "192.0.2.10:51000"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) registerAndLogin(t *testing.T, username, password string) string {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/v1/auth/register", "", tallysdk.RegisterRequest{
		Username:        username,
		Password:        password,
		ConfirmPassword: password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/v1/auth/login", "", tallysdk.LoginRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp tallysdk.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	t.Run("success", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/register", "", tallysdk.RegisterRequest{
			Username:        "alice",
			Password:        "s3cret-pass",
			ConfirmPassword: "s3cret-pass",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, `{"detail":"user registered successfully"}`, rec.Body.String())
	})

	t.Run("duplicate username", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/register", "", tallysdk.RegisterRequest{
			Username:        "alice",
			Password:        "other-pass",
			ConfirmPassword: "other-pass",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
		require.JSONEq(t, `{"detail":"username already exists"}`, rec.Body.String())
	})

	t.Run("case-folded duplicate", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/register", "", tallysdk.RegisterRequest{
			Username:        "ALICE",
			Password:        "other-pass",
			ConfirmPassword: "other-pass",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("password mismatch", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/register", "", tallysdk.RegisterRequest{
			Username:        "bob",
			Password:        "one",
			ConfirmPassword: "two",
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader([]byte("{not json")))
		req.RemoteAddr = "192.0.2.10:51000"
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/register", "", tallysdk.RegisterRequest{
		Username:        "carol",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("success", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/login", "", tallysdk.LoginRequest{
			Username: "carol",
			Password: "correct-horse",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp tallysdk.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "logged in successfully", resp.Detail)
		require.Len(t, resp.Token, 64)
		require.Contains(t, rec.Header().Get("Cache-Control"), "no-store")
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/login", "", tallysdk.LoginRequest{
			Username: "nobody",
			Password: "whatever",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"detail":"user doesnt exists"}`, rec.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/login", "", tallysdk.LoginRequest{
			Username: "carol",
			Password: "wrong-horse",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"detail":"password is invalid"}`, rec.Body.String())
	})
}

func TestTaskEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "dave", "dave-pass")

	t.Run("requires a token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/tasks", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("rejects a bogus token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/tasks", "deadbeef", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"detail":"token is invalid"}`, rec.Body.String())
	})

	var created tallysdk.Task
	t.Run("create", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/tasks", token, tallysdk.TaskRequest{
			Title:       "write tests",
			Description: "router coverage",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		require.NotZero(t, created.ID)
		require.False(t, created.Done)
	})

	t.Run("list", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/tasks", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var tasks []tallysdk.Task
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
		require.Len(t, tasks, 1)
	})

	t.Run("get", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/tasks/1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/v1/tasks/1", token, tallysdk.TaskRequest{
			Title: "write tests",
			Done:  true,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated tallysdk.Task
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		require.True(t, updated.Done)
	})

	t.Run("invalid payload", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/tasks", token, tallysdk.TaskRequest{Title: "   "})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("other user cannot see the task", func(t *testing.T) {
		otherToken := env.registerAndLogin(t, "erin", "erin-pass")

		rec := env.do(t, http.MethodGet, "/v1/tasks/1", otherToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		rec = env.do(t, http.MethodDelete, "/v1/tasks/1", otherToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/v1/tasks/1", token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(t, http.MethodGet, "/v1/tasks/1", token, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCostEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "frank", "frank-pass")

	t.Run("requires a token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/costs", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create and fetch", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/costs", token, tallysdk.CostRequest{
			Description: "hosting",
			Amount:      1999,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var cost tallysdk.Cost
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cost))
		require.Equal(t, int64(1999), cost.Amount)

		rec = env.do(t, http.MethodGet, "/v1/costs/1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ledger is shared between users", func(t *testing.T) {
		otherToken := env.registerAndLogin(t, "gina", "gina-pass")

		rec := env.do(t, http.MethodGet, "/v1/costs", otherToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var costs []tallysdk.Cost
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &costs))
		require.Len(t, costs, 1)
	})

	t.Run("validation", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/costs", token, tallysdk.CostRequest{
			Description: "free lunch",
			Amount:      0,
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("update and delete", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/v1/costs/1", token, tallysdk.CostRequest{
			Description: "hosting",
			Amount:      2499,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodDelete, "/v1/costs/1", token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(t, http.MethodGet, "/v1/costs/1", token, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProviderEndpoints(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/category/":
			_, _ = w.Write([]byte(`{"categories":[{"slug":"go"}]}`))
		case "/api/category/go/":
			_, _ = w.Write([]byte(`{"slug":"go","title":"Go"}`))
		case "/api/category/private/":
			http.Error(w, "forbidden", http.StatusForbidden)
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	env := newTestEnv(t, service.Provider{Name: "maktab", BaseURL: upstream.URL + "/api/category"})

	t.Run("list categories relays raw json", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/providers/maktab/categories", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"categories":[{"slug":"go"}]}`, rec.Body.String())
	})

	t.Run("get category", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/providers/maktab/categories/go", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"slug":"go","title":"Go"}`, rec.Body.String())
	})

	t.Run("upstream 404 passes through", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/providers/maktab/categories/rust", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"detail":"category not found"}`, rec.Body.String())
	})

	t.Run("upstream error status passes through", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/providers/maktab/categories/private", "", nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.JSONEq(t, `{"detail":"provider request failed"}`, rec.Body.String())
	})

	t.Run("unknown provider", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/providers/udemy/categories", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"detail":"unknown provider"}`, rec.Body.String())
	})
}

func TestAuthenticatedRoutesAreThrottledPerUser(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "hector", "pass-hector")

	var ok, throttled int
	for range 70 {
		rec := env.do(t, http.MethodGet, "/v1/tasks", token, nil)
		switch rec.Code {
		case http.StatusOK:
			ok++
		case http.StatusTooManyRequests:
			throttled++
			require.NotEmpty(t, rec.Header().Get("Retry-After"))
		default:
			t.Fatalf("unexpected status %d", rec.Code)
		}
	}

	require.GreaterOrEqual(t, ok, 60)
	require.GreaterOrEqual(t, throttled, 1)
}

func TestSystemEndpoints(t *testing.T) {
	env := newTestEnv(t)

	t.Run("livez", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/livez", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp tallysdk.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "ok", resp.Status)
		require.Equal(t, "test", resp.Version)
	})

	t.Run("readyz", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/readyz", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp tallysdk.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "ok", resp.Status)
		require.NotNil(t, resp.Checks)
		require.Equal(t, "ok", resp.Checks.Database)
	})

	t.Run("readyz degrades when the database is gone", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.store.Close())

		rec := env.do(t, http.MethodGet, "/readyz", "", nil)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("request id header is set", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/livez", "", nil)
		require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}
