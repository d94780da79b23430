package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tallyhq/tally/pkg/slogx"
)

var (
	ErrUnknownProvider     = errors.New("unknown_provider")
	ErrUpstreamUnreachable = errors.New("upstream_unreachable")
	ErrUpstreamBadJSON     = errors.New("upstream_bad_json")
)

// UpstreamStatusError reports a non-2xx response from a course provider.
type UpstreamStatusError struct {
	Provider string
	Code     int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.Provider, e.Code)
}

// Provider describes one upstream course catalogue.
type Provider struct {
	Name    string
	BaseURL string
}

// GatewayService relays read-only category queries to registered course
// providers. Responses are passed through as raw JSON after a syntax check;
// the gateway never reshapes upstream payloads.
type GatewayService struct {
	Providers map[string]Provider
	Client    *http.Client
}

// NewGatewayService wires the provider registry with a shared client. The
// timeout bounds the whole exchange, including body read.
func NewGatewayService(providers []Provider, timeout time.Duration) *GatewayService {
	registry := make(map[string]Provider, len(providers))
	for _, p := range providers {
		registry[strings.ToLower(p.Name)] = p
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GatewayService{
		Providers: registry,
		Client:    &http.Client{Timeout: timeout},
	}
}

// ListCategories fetches the provider's category index, forwarding the given
// query values untouched.
func (s *GatewayService) ListCategories(ctx context.Context, provider string, query url.Values) (json.RawMessage, error) {
	return s.relay(ctx, provider, "", query)
}

// GetCategory fetches a single category by slug.
func (s *GatewayService) GetCategory(ctx context.Context, provider, slug string, query url.Values) (json.RawMessage, error) {
	return s.relay(ctx, provider, url.PathEscape(slug)+"/", query)
}

// SearchCategory queries within a category.
func (s *GatewayService) SearchCategory(ctx context.Context, provider, slug string, query url.Values) (json.RawMessage, error) {
	return s.relay(ctx, provider, url.PathEscape(slug)+"/search/", query)
}

func (s *GatewayService) relay(ctx context.Context, provider, path string, query url.Values) (json.RawMessage, error) {
	log := slogx.FromContext(ctx)

	p, ok := s.Providers[strings.ToLower(provider)]
	if !ok {
		return nil, ErrUnknownProvider
	}

	// The upstream catalogue routes all carry trailing slashes; anything
	// else redirects.
	target := strings.TrimRight(p.BaseURL, "/") + "/"
	target += path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tally-gateway/1.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		log.Warn("provider request failed", "provider", p.Name, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamStatusError{Provider: p.Name, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
	}

	if !json.Valid(body) {
		log.Warn("provider returned invalid json", "provider", p.Name)
		return nil, ErrUpstreamBadJSON
	}

	return json.RawMessage(body), nil
}
