// Package api implements the typed client for the Din Charya backend API.
package api

import (
	"fmt"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/dincharya-ai/cli/internal/models"
)

// ClientInterface defines the backend operations consumed by the TUI and
// the CLI commands. Every call is a single attempt; there is no retry or
// backoff anywhere in the client.
type ClientInterface interface {
	Ping() error
	SendMessage(message string) (*models.ChatEntry, error)
	FetchHistory(limit int) (models.History, error)
	FetchWeather() (*models.WeatherSnapshot, error)
	FetchNews() ([]models.NewsItem, error)
	SaveRoutine(entry models.RoutineEntry) (*models.RoutineEntry, error)
	FetchRoutineHistory(limit int) ([]models.RoutineEntry, error)
	UserID() string
	Location() models.Location
}

// Client is the HTTP client for the Din Charya backend
type Client struct {
	httpClient     tls_client.HttpClient
	baseURL        string
	userID         string
	location       models.Location
	timeoutSeconds int
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithBaseURL sets the backend base URL (scheme + host, no /api suffix)
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithUserID sets the user id sent with chat and routine requests
func WithUserID(userID string) ClientOption {
	return func(c *Client) {
		c.userID = userID
	}
}

// WithLocation sets the location sent with chat requests
func WithLocation(loc models.Location) ClientOption {
	return func(c *Client) {
		c.location = loc
	}
}

// WithTimeout sets the per-request timeout in seconds
func WithTimeout(seconds int) ClientOption {
	return func(c *Client) {
		c.timeoutSeconds = seconds
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used in tests.
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Client
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		baseURL:        models.DefaultBaseURL,
		userID:         models.DefaultUserID,
		location:       models.DefaultLocation,
		timeoutSeconds: 300,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(client.timeoutSeconds),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// UserID returns the configured user id
func (c *Client) UserID() string {
	return c.userID
}

// Location returns the configured location
func (c *Client) Location() models.Location {
	return c.location
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}
