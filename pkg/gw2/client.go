package gw2

import (
	"context"
	"net/http"
	"time"

	"github.com/tyria-io/gw2go/internal/constants"
	"github.com/tyria-io/gw2go/internal/transport"
	"github.com/tyria-io/gw2go/pkg/gw2/ratelimit"
)

// Logger is the structured logger consumed by the client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Builder assembles client configuration. The configuration is immutable
// once Build is called.
type Builder struct {
	accessToken  string
	language     Language
	baseURL      string
	userAgent    string
	httpClient   *http.Client
	limiter      *ratelimit.Limiter
	logger       Logger
	debug        bool
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// NewBuilder creates a Builder with defaults: no token, English, the
// official API host, no rate limiting.
func NewBuilder() *Builder {
	return &Builder{
		language: DefaultLanguage,
		baseURL:  constants.DefaultBaseURL,
	}
}

// AccessToken sets the bearer token attached to authenticated requests.
func (b *Builder) AccessToken(token string) *Builder {
	b.accessToken = token

	return b
}

// Language sets the preferred language for localized endpoints.
func (b *Builder) Language(lang Language) *Builder {
	b.language = lang

	return b
}

// BaseURL overrides the upstream host. Primarily useful for tests.
func (b *Builder) BaseURL(baseURL string) *Builder {
	b.baseURL = baseURL

	return b
}

// UserAgent overrides the User-Agent header.
func (b *Builder) UserAgent(userAgent string) *Builder {
	b.userAgent = userAgent

	return b
}

// HTTPClient replaces the underlying http.Client, e.g. with a transport
// double in tests.
func (b *Builder) HTTPClient(httpClient *http.Client) *Builder {
	b.httpClient = httpClient

	return b
}

// RateLimit installs an admission gate bounding requests per rolling
// 60-second window. The gate is consulted immediately before each dispatch.
func (b *Builder) RateLimit(limit int) *Builder {
	b.limiter = ratelimit.New(limit)

	return b
}

// Logger sets the logger used for debug output.
func (b *Builder) Logger(logger Logger) *Builder {
	b.logger = logger

	return b
}

// Debug enables per-request debug logging.
func (b *Builder) Debug(debug bool) *Builder {
	b.debug = debug

	return b
}

// RetryConfig enables opt-in transport retries. The pipeline itself never
// retries; callers who want backoff must ask for it explicitly.
func (b *Builder) RetryConfig(retryMax int, waitMin, waitMax time.Duration) *Builder {
	b.retryMax = retryMax
	b.retryWaitMin = waitMin
	b.retryWaitMax = waitMax

	return b
}

// Build creates the asynchronous client.
func (b *Builder) Build() *Client {
	opts := []transport.Option{}

	if b.logger != nil {
		opts = append(opts, transport.WithLogger(b.logger))
	}

	if b.debug {
		opts = append(opts, transport.WithDebug(true))
	}

	if b.userAgent != "" {
		opts = append(opts, transport.WithUserAgent(b.userAgent))
	}

	if b.httpClient != nil {
		opts = append(opts, transport.WithHTTPClient(b.httpClient))
	}

	if b.retryMax > 0 {
		opts = append(opts, transport.WithRetryConfig(b.retryMax, b.retryWaitMin, b.retryWaitMax))
	}

	return &Client{
		transport:   transport.New(b.baseURL, opts...),
		accessToken: b.accessToken,
		language:    b.language,
		limiter:     b.limiter,
	}
}

// BuildBlocking creates the blocking client.
func (b *Builder) BuildBlocking() *BlockingClient {
	return &BlockingClient{inner: b.Build()}
}

// Client is the asynchronous API client. It is cheap to copy: the transport
// handle and limiter are shared across copies, and the token/language
// configuration is immutable after construction.
type Client struct {
	transport   *transport.Client
	accessToken string
	language    Language
	limiter     *ratelimit.Limiter
}

// New creates a client with default configuration.
func New() *Client {
	return NewBuilder().Build()
}

// Blocking returns a blocking view over the same configuration and
// transport.
func (c *Client) Blocking() *BlockingClient {
	return &BlockingClient{inner: c}
}

// RateLimiter returns the configured admission gate, or nil when rate
// limiting is disabled.
func (c *Client) RateLimiter() *ratelimit.Limiter {
	return c.limiter
}

// dispatch implements the sealed Executor contract. The pre-flight token
// check fails before any network I/O; otherwise the HTTP call runs in its
// own goroutine, gated by the rate limiter when one is configured, and
// delivers exactly one header event on a buffered channel.
func (c *Client) dispatch(ctx context.Context, req Request) *inflight {
	if req.Auth == AuthRequired && c.accessToken == "" {
		return &inflight{err: noAccessTokenError()}
	}

	ctx, cancel := context.WithCancel(ctx)
	headers := make(chan headerEvent, 1)

	go func() {
		if c.limiter != nil {
			if err := c.limiter.Acquire(ctx); err != nil {
				headers <- headerEvent{err: err}

				return
			}
		}

		httpReq, err := c.transport.NewRequest(ctx, req.localizedURI(c.language))
		if err != nil {
			headers <- headerEvent{err: err}

			return
		}

		if c.accessToken != "" && req.Auth != AuthNone {
			httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
		}

		resp, err := c.transport.Do(httpReq)
		headers <- headerEvent{resp: resp, err: err}
	}()

	return &inflight{headers: headers, cancel: cancel}
}

func (c *Client) sealed() {}

// BlockingClient drives the shared request pipeline to completion on the
// calling goroutine. Copies share the inner client.
type BlockingClient struct {
	inner *Client
}

// NewBlocking creates a blocking client with default configuration.
func NewBlocking() *BlockingClient {
	return NewBuilder().BuildBlocking()
}

// dispatch implements the sealed Executor contract by consuming the header
// and body events inline and returning an already-resolved exchange, so
// futures built over it complete on first poll.
func (b *BlockingClient) dispatch(ctx context.Context, req Request) *inflight {
	fl := b.inner.dispatch(ctx, req)
	if fl.err != nil {
		return fl
	}

	var ev headerEvent
	select {
	case ev = <-fl.headers:
	case <-ctx.Done():
		fl.cancel()

		return &inflight{resolved: &exchange{err: ctx.Err()}, cancel: fl.cancel}
	}

	if ev.err != nil {
		return &inflight{resolved: &exchange{err: ev.err}, cancel: fl.cancel}
	}

	body, err := readAll(ev.resp)

	return &inflight{
		resolved: &exchange{status: ev.resp.StatusCode, body: body, err: err},
		cancel:   fl.cancel,
	}
}

func (b *BlockingClient) sealed() {}
