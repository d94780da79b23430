package tallysdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to a tally service. It exposes the unauthenticated
// operations and creates authenticated Sessions via Login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient builds a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account.
func (c *SDKClient) Register(ctx context.Context, username, password, confirmPassword string) error {
	req := RegisterRequest{
		Username:        username,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}
	var resp MessageResponse
	return c.doJSON(ctx, http.MethodPost, "/v1/auth/register", "", req, &resp)
}

// Login authenticates and returns a Session holding the minted bearer token.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	req := LoginRequest{Username: username, Password: password}

	var resp LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", "", req, &resp); err != nil {
		return nil, err
	}

	return &Session{client: c, token: resp.Token}, nil
}

// NewSessionFromToken wraps a previously issued token in a Session. Tokens
// never expire, so a stored token is always usable.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Health calls the liveness probe.
func (c *SDKClient) Health(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/livez", "", nil, &resp)
	return resp, err
}
