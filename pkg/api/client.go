package api

import (
	"net/http"
	"time"

	"github.com/ctrl-app/ctrl-client/internal/logger"
	"github.com/ctrl-app/ctrl-client/pkg/httpclient"
)

const defaultTimeout = 30 * time.Second

// Method is the set of HTTP verbs the backend exposes.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

func (m Method) valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	}
	return false
}

// RequestOptions tunes a single Fetch call. The zero value is a GET without body or token.
type RequestOptions struct {
	Method Method
	// Body is JSON-encoded when non-nil.
	Body any
	// Token, when set, is sent as "Authorization: Bearer <token>".
	Token string
}

// Client is the Request Client for one backend Endpoint. It is safe for concurrent use.
type Client struct {
	endpoint Endpoint
	http     httpclient.Client
	log      logger.Logger
}

// Option configures a Client during construction in New.
type Option func(*Client)

// WithHTTPClient replaces the default resty transport.
func WithHTTPClient(h httpclient.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout installs a resty transport bounded by d; zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http = httpclient.NewRestyClient(d)
	}
}

func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.log = logger.Ensure(log)
	}
}

// New builds a Client bound to endpoint.
func New(endpoint Endpoint, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		log:      logger.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(defaultTimeout)
	}
	return c
}

// Endpoint returns the endpoint the client was built with.
func (c *Client) Endpoint() Endpoint { return c.endpoint }
