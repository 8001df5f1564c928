package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/mwirigi/salepoint-api/internal/domain/gateway"
	"github.com/mwirigi/salepoint-api/internal/logger"
)

// AuthService proxies authentication to the upstream backend and owns the
// local session lifecycle tied to it. Credentials never live here.
type AuthService struct {
	auth     gateway.AuthGateway
	sessions *SessionManager
	log      zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(auth gateway.AuthGateway, sessions *SessionManager) *AuthService {
	return &AuthService{
		auth:     auth,
		sessions: sessions,
		log:      logger.WithComponent("auth"),
	}
}

// Login forwards credentials upstream and relays the issued tokens.
func (s *AuthService) Login(ctx context.Context, email, password string) (*gateway.AuthTokens, error) {
	return s.auth.Login(ctx, email, password)
}

// Logout tears down the user's session state. The upstream logout is best
// effort: local state goes away even if the backend call fails.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("upstream logout failed")
	}
	s.sessions.End(userID)
}
