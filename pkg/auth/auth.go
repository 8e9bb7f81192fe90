package auth

import (
	"context"

	"github.com/ctrl-app/ctrl-client/internal/domain"
	"github.com/ctrl-app/ctrl-client/pkg/api"
)

const (
	LoginPath  = "/api/v1/auth/login"
	SignupPath = "/api/v1/auth/signup"
	MePath     = "/api/v1/auth/me"
)

// Service exposes the backend's auth endpoints. Errors from the Request Client are
// returned unchanged.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Login exchanges an email and password for an access token pair.
// Inputs are not validated here.
func (s *Service) Login(ctx context.Context, email, password string) (domain.LoginResponse, error) {
	return api.Fetch[domain.LoginResponse](ctx, s.client, LoginPath, &api.RequestOptions{
		Method: api.MethodPost,
		Body:   domain.Credentials{Email: email, Password: password},
	})
}

// Signup registers a new account.
func (s *Service) Signup(ctx context.Context, email, password string) (domain.User, error) {
	return api.Fetch[domain.User](ctx, s.client, SignupPath, &api.RequestOptions{
		Method: api.MethodPost,
		Body:   domain.Credentials{Email: email, Password: password},
	})
}

// Me returns the account the token belongs to.
func (s *Service) Me(ctx context.Context, token string) (domain.User, error) {
	return api.Fetch[domain.User](ctx, s.client, MePath, &api.RequestOptions{Token: token})
}
