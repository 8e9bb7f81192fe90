package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ctrl-app/ctrl-client/internal/config"
	"github.com/ctrl-app/ctrl-client/internal/domain"
	"github.com/ctrl-app/ctrl-client/internal/logger"
	"github.com/ctrl-app/ctrl-client/pkg/api"
	"github.com/ctrl-app/ctrl-client/pkg/auth"
	"github.com/ctrl-app/ctrl-client/pkg/moods"
)

var (
	// ErrMissingFields is returned before any request when email or password is empty.
	ErrMissingFields = errors.New("email and password are required")
	// ErrMissingToken is returned by flows that need an access token when none was given.
	ErrMissingToken = errors.New("access token required: log in first and pass --token or set CTRL_TOKEN")
)

// Banner is what the home screen shows.
type Banner struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
}

// App wires the configuration, logger and backend services behind the CLI screens.
type App struct {
	cfg      *config.Config
	log      logger.Logger
	endpoint api.Endpoint
	auth     *auth.Service
	moods    *moods.Service
}

// New builds the client runtime from a loaded config. Extra options are applied to the
// Request Client after the config-derived ones.
func New(cfg *config.Config, log logger.Logger, opts ...api.Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	log = logger.Ensure(log)

	endpoint := api.NewEndpoint(cfg.APIBaseURL)
	clientOpts := append([]api.Option{
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log),
	}, opts...)
	client := api.New(endpoint, clientOpts...)

	log.InfoObj("api client initialized", "endpoint_meta", map[string]any{
		"base_url":        endpoint.BaseURL(),
		"timeout_seconds": int(cfg.RequestTimeout.Seconds()),
	})

	return &App{
		cfg:      cfg,
		log:      log,
		endpoint: endpoint,
		auth:     auth.NewService(client),
		moods:    moods.NewService(client),
	}, nil
}

// Endpoint returns the backend the app talks to.
func (a *App) Endpoint() api.Endpoint { return a.endpoint }

func (a *App) Home() Banner {
	return Banner{Title: "CTRL", Subtitle: "Create Time to Reflect & Listen"}
}

// Login checks that both fields are present and then calls the backend once.
// The caller is expected to keep the returned token; nothing is stored here.
func (a *App) Login(ctx context.Context, email, password string) (domain.LoginResponse, error) {
	if err := requireCredentials(email, password); err != nil {
		return domain.LoginResponse{}, err
	}

	res, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.log.WarnObj("login failed", "login_error", map[string]any{
			"status": api.StatusCode(err),
			"error":  err.Error(),
		})
		return domain.LoginResponse{}, err
	}
	a.log.InfoObj("login succeeded", "login_meta", map[string]any{
		"token_type": res.TokenType,
	})
	return res, nil
}

func (a *App) Signup(ctx context.Context, email, password string) (domain.User, error) {
	if err := requireCredentials(email, password); err != nil {
		return domain.User{}, err
	}
	user, err := a.auth.Signup(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}
	a.log.InfoObj("signup succeeded", "user_id", user.ID)
	return user, nil
}

func (a *App) Me(ctx context.Context, token string) (domain.User, error) {
	token, err := a.resolveToken(token)
	if err != nil {
		return domain.User{}, err
	}
	return a.auth.Me(ctx, token)
}

func (a *App) AddMood(ctx context.Context, token string, in domain.MoodInput) (domain.MoodCreated, error) {
	token, err := a.resolveToken(token)
	if err != nil {
		return domain.MoodCreated{}, err
	}
	return a.moods.Create(ctx, token, in)
}

func (a *App) ListMoods(ctx context.Context, token string) ([]domain.Mood, error) {
	token, err := a.resolveToken(token)
	if err != nil {
		return nil, err
	}
	return a.moods.List(ctx, token)
}

// resolveToken prefers an explicit token over the configured one.
func (a *App) resolveToken(token string) (string, error) {
	if t := strings.TrimSpace(token); t != "" {
		return t, nil
	}
	if a.cfg.Token != "" {
		return a.cfg.Token, nil
	}
	return "", ErrMissingToken
}

func requireCredentials(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingFields
	}
	return nil
}
