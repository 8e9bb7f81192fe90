package moods

import (
	"context"

	"github.com/ctrl-app/ctrl-client/internal/domain"
	"github.com/ctrl-app/ctrl-client/pkg/api"
)

const Path = "/api/v1/moods"

// Service records and lists mood check-ins for the token's owner.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

func (s *Service) Create(ctx context.Context, token string, in domain.MoodInput) (domain.MoodCreated, error) {
	return api.Fetch[domain.MoodCreated](ctx, s.client, Path, &api.RequestOptions{
		Method: api.MethodPost,
		Body:   in,
		Token:  token,
	})
}

func (s *Service) List(ctx context.Context, token string) ([]domain.Mood, error) {
	return api.Fetch[[]domain.Mood](ctx, s.client, Path, &api.RequestOptions{Token: token})
}
