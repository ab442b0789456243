package vetapi

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the default vet-system API endpoint.
	DefaultBaseURL = "http://localhost:3000"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is the vet-system API client.
//
// Use NewClient to create a client:
//
//	client := vetapi.NewClient(vetapi.WithBaseURL("https://api.example.com"))
type Client struct {
	baseURL          string
	httpClient       *http.Client
	sessions         SessionStore
	onSessionExpired func()

	// Services
	Auth    *AuthService
	Owners  *OwnersService
	Animals *AnimalsService
	Records *RecordsService
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithSessionStore sets the store the client reads the bearer token
// from and tears down on 401. Defaults to an in-memory store.
func WithSessionStore(store SessionStore) Option {
	return func(c *Client) {
		c.sessions = store
	}
}

// WithSessionExpiredHandler registers a callback invoked after an
// authorized request is answered with 401 and the persisted session has
// been cleared. The presentation layer subscribes here to redirect the
// user to the login view; the data layer itself stays free of
// navigation concerns.
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) {
		c.onSessionExpired = fn
	}
}

// NewClient creates a new vet-system API client.
//
// Example:
//
//	client := vetapi.NewClient(
//		vetapi.WithBaseURL("http://localhost:3000"),
//		vetapi.WithSessionStore(store),
//	)
//	owners, err := client.Owners.List(ctx)
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.sessions == nil {
		c.sessions = NewMemorySessionStore()
	}

	// Initialize services
	c.Auth = &AuthService{client: c}
	c.Owners = &OwnersService{client: c}
	c.Animals = &AnimalsService{client: c}
	c.Records = &RecordsService{client: c}

	return c
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Sessions returns the session store the client was configured with.
func (c *Client) Sessions() SessionStore {
	return c.sessions
}
