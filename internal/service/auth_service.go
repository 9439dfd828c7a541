package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mitrokit/ventures-api/internal/auth"
	"github.com/mitrokit/ventures-api/internal/config"
	"github.com/mitrokit/ventures-api/internal/domain"
	"github.com/mitrokit/ventures-api/internal/events"
	"github.com/mitrokit/ventures-api/internal/repository"
	apperrors "github.com/mitrokit/ventures-api/pkg/util"
)

// AuthService coordinates the login flow: credential validation and token
// issuance.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		dispatcher: dispatcher,
	}
}

// Login authenticates an email/password pair and issues a signed token.
// Unknown email and wrong password produce the same failure, so callers
// cannot probe which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.Issue(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventLoginSucceeded,
			Timestamp: time.Now(),
			Payload: events.LoginSucceededPayload{
				UserID: user.ID,
				Email:  user.Email,
				Role:   string(user.Role),
			},
		})
	}

	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
