// Package http builds retrying HTTP clients on top of hashicorp's
// retryablehttp. Callers that need a plain *http.Client (SDKs that accept one)
// use NewStandardClient.
package http

import (
	stdhttp "net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
}

// Option customizes the client built by NewClient.
type Option func(*config)

// NewClient returns a retryablehttp.Client. Defaults: 5s per request, up to 2
// retries waiting between 1s and 5s. The library's own logger is disabled.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	return client
}

// NewStandardClient is NewClient exposed as a *net/http.Client.
func NewStandardClient(opts ...Option) *stdhttp.Client {
	return NewClient(opts...).StandardClient()
}

// WithTimeout bounds a single attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the shortest wait between attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the longest wait between attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many retries follow a failed attempt.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}
