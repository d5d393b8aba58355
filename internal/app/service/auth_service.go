package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
	"taskdesk/internal/core/validation"
)

// AuthService tracks the signed-in user and the session token.
type AuthService struct {
	transport ports.AuthTransport
	tokens    ports.TokenStore

	mu   sync.RWMutex
	user *domain.User
}

func NewAuthService(transport ports.AuthTransport, tokens ports.TokenStore) *AuthService {
	return &AuthService{transport: transport, tokens: tokens}
}

func (s *AuthService) Login(ctx context.Context, email, password string) error {
	if err := errors.Join(
		validation.Check("email", email, validation.RuleRequired, validation.RuleEmail),
		validation.Check("password", password, validation.RuleRequired),
	); err != nil {
		return err
	}

	token, err := s.transport.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := s.tokens.SetToken(token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// WhoAmI loads the current user from the server.
func (s *AuthService) WhoAmI(ctx context.Context) (domain.User, error) {
	user, err := s.transport.WhoAmI(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("who am i: %w", err)
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return user, nil
}

// Logout ends the server session and forgets the local one.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.transport.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return s.clear()
}

func (s *AuthService) clear() error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return s.tokens.RemoveToken()
}

func (s *AuthService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *AuthService) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// RequireAdmin guards administrative actions.
func (s *AuthService) RequireAdmin() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.ErrUnauthorized
	}
	if !s.user.IsAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// OnError is registered as a transport error interceptor: a 401 from any
// endpoint ends the local session.
func (s *AuthService) OnError(status int, message string) {
	if status != http.StatusUnauthorized {
		return
	}
	zap.L().Info("session rejected by server", zap.String("message", message))
	if err := s.clear(); err != nil {
		zap.L().Warn("failed to remove token", zap.Error(err))
	}
}
