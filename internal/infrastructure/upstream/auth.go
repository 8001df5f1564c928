package upstream

import (
	"context"
	"net/http"

	"github.com/mwirigi/salepoint-api/internal/domain/gateway"
)

// AuthClient implements gateway.AuthGateway over the upstream REST API.
type AuthClient struct {
	client *Client
}

// NewAuthClient creates an auth client.
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// Login exchanges credentials for tokens with the upstream backend.
func (c *AuthClient) Login(ctx context.Context, email, password string) (*gateway.AuthTokens, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var tokens gateway.AuthTokens
	if err := c.client.do(ctx, http.MethodPost, "/auth/login", nil, body, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Logout invalidates the caller's token upstream. Best effort: local session
// teardown happens regardless of the result.
func (c *AuthClient) Logout(ctx context.Context) error {
	return c.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}
