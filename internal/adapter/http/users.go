package http

import (
	"context"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/adapter/http/mapper"
	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type UsersService struct {
	client *Client
}

func NewUsersService(client *Client) *UsersService {
	return &UsersService{client: client}
}

func (s *UsersService) FetchUsers(ctx context.Context) ([]domain.User, error) {
	var items []dto.User
	if err := s.client.Get(ctx, "/users", &items); err != nil {
		return nil, err
	}
	return mapper.ToUsers(items), nil
}

type TicksService struct {
	client *Client
}

func NewTicksService(client *Client) *TicksService {
	return &TicksService{client: client}
}

func (s *TicksService) FetchTicks(ctx context.Context) ([]domain.Tick, error) {
	var items []dto.Tick
	if err := s.client.Get(ctx, "/ticks", &items); err != nil {
		return nil, err
	}
	return mapper.ToTicks(items), nil
}

// AuthService is the REST transport for the session endpoints.
type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var resp dto.LoginResponse
	if err := s.client.Post(ctx, "/login", dto.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", domain.ErrInvalidCredentials
	}
	return resp.Token, nil
}

func (s *AuthService) WhoAmI(ctx context.Context) (domain.User, error) {
	var user dto.User
	if err := s.client.Get(ctx, "/whoAmI", &user); err != nil {
		return domain.User{}, err
	}
	return mapper.ToUser(user), nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.Delete(ctx, "/logout")
}

var (
	_ ports.UserTransport = (*UsersService)(nil)
	_ ports.TickTransport = (*TicksService)(nil)
	_ ports.AuthTransport = (*AuthService)(nil)
)
