package gateway

import "context"

// AuthTokens is the credential pair issued by the upstream backend.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// AuthGateway proxies authentication to the upstream backend, which owns
// credentials and token issuance.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*AuthTokens, error)
	Logout(ctx context.Context) error
}
