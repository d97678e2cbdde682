// Package transport implements the HTTP layer of the client: request
// construction against a base URL, standard headers, and optional retry
// behavior via hashicorp/go-retryablehttp.
//
// The transport never reads response bodies. The response state machine in
// pkg/gw2 owns the body lifecycle so that cancellation at any stage releases
// the underlying connection.
package transport

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/tyria-io/gw2go/internal/constants"
)

// Logger is the minimal structured logger consumed by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client issues HTTP requests against a fixed base URL.
type Client struct {
	baseURL   string
	userAgent string
	debug     bool
	logger    Logger
	retry     *retryablehttp.Client
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables per-request debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables automatic retries for transient transport
// failures. The pipeline itself never retries; this is strictly opt-in.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retry.RetryMax = retryMax
		c.retry.RetryWaitMin = waitMin
		c.retry.RetryWaitMax = waitMax
	}
}

// WithHTTPClient replaces the underlying http.Client. Used by tests to
// install transport doubles.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.retry.HTTPClient = httpClient
	}
}

// New creates a transport client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 0
	retry.RetryWaitMin = constants.DefaultRetryWaitMin
	retry.RetryWaitMax = constants.DefaultRetryWaitMax
	retry.Logger = nil
	retry.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	// Exhausted retries must still surface the final response: failure
	// bodies carry the structured error payload the caller decodes.
	retry.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: constants.DefaultUserAgent,
		retry:     retry,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NewRequest builds a GET request for the given URI (path plus query)
// carrying the schema version pin and standard headers.
func (c *Client) NewRequest(ctx context.Context, uri string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+uri, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set(constants.SchemaVersionHeader, constants.SchemaVersion)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}

// Do dispatches the request and returns the response with an unread body.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.debug && c.logger != nil {
		c.logger.Debug("dispatching request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL.String(),
		})
	}

	retryReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.retry.Do(retryReq)

	if c.debug && c.logger != nil {
		fields := map[string]interface{}{"url": req.URL.String()}
		if err != nil {
			fields["error"] = err.Error()
		} else {
			fields["status"] = resp.StatusCode
		}

		c.logger.Debug("request completed", fields)
	}

	return resp, err
}
