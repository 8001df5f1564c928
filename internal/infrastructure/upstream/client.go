package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/mwirigi/salepoint-api/internal/config"
	"github.com/mwirigi/salepoint-api/internal/logger"
	"github.com/mwirigi/salepoint-api/pkg/apperror"
)

type contextKey string

const tokenKey contextKey = "upstream_token"

// ContextWithToken stores the caller's bearer token for forwarding upstream.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext extracts the bearer token set by the auth middleware.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// Client talks to the ERP backend's REST API. It forwards the caller's
// bearer token, relays backend-supplied error messages and maps transport
// failures to a generic remote error. No retries: every call is one shot.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates an upstream client from configuration.
func NewClient(cfg *config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     logger.WithComponent("upstream"),
	}
}

// envelope is the response wrapper the backend uses. Endpoints that return
// bare payloads are handled by falling back to the raw body.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("upstream request failed")
		return apperror.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.ErrUpstreamUnavailable
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		c.log.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("upstream rejected request")
		return apperror.NewRemoteError(resp.StatusCode, env.Message)
	}

	if out == nil {
		return nil
	}

	// Unwrap the {data: ...} envelope when present, otherwise decode the
	// body directly.
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		raw = env.Data
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("unexpected upstream response shape")
		return apperror.ErrUpstreamUnavailable
	}
	return nil
}
