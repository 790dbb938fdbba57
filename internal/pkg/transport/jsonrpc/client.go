// Package jsonrpc implements a JSON-RPC 2.0 client over HTTP for blockchain
// nodes. Requests are retried by retryablehttp, optionally throttled by a
// token bucket and guarded by a circuit breaker so a failing provider is not
// hammered by the watch loop.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	httptransport "github.com/gabapcia/walletbot/internal/pkg/transport/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

var (
	// ErrProviderReturnedError wraps the error object of a JSON-RPC response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrCircuitOpen is returned without contacting the provider while the
	// breaker is open.
	ErrCircuitOpen = errors.New("rpc circuit open")
)

type response struct {
	JsonRPC string `json:"jsonrpc"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Err converts the response error object, if any, into a Go error.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client sends JSON-RPC calls.
type Client interface {
	// Fetch calls method with params and returns the raw "result" member.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	providerEndpoint string
	httpClient       *retryablehttp.Client
	limiter          *rate.Limiter
	breaker          *gobreaker.CircuitBreaker
}

var _ Client = (*client)(nil)

func (c *client) call(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		if res.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("unexpected status %d: %w", res.StatusCode, err)
		}
		return nil, err
	}

	return data.Result, data.Err()
}

// Fetch waits for the rate limiter, then performs the call through the
// circuit breaker when one is configured.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if c.breaker == nil {
		return c.call(ctx, method, params)
	}

	result, err := c.breaker.Execute(func() (any, error) {
		return c.call(ctx, method, params)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
	}
	if err != nil {
		return nil, err
	}

	raw, _ := result.(json.RawMessage)
	return raw, nil
}

type breakerConfig struct {
	consecutiveFailures uint32
	openTimeout         time.Duration
}

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int

	rps   float64
	burst int

	breaker *breakerConfig
}

// Option customizes the client built by NewClient.
type Option func(*config)

// NewClient returns a client for providerEndpoint. Without options it applies
// a 5s timeout, 2 retries between 1s and 5s, no rate limit and no breaker.
func NewClient(providerEndpoint string, opts ...Option) *client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &client{
		providerEndpoint: providerEndpoint,
		httpClient: httptransport.NewClient(
			httptransport.WithTimeout(cfg.timeout),
			httptransport.WithRetryWaitMin(cfg.retryWaitMin),
			httptransport.WithRetryWaitMax(cfg.retryWaitMax),
			httptransport.WithRetryMax(cfg.retryMax),
		),
	}

	if cfg.rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.rps), max(cfg.burst, 1))
	}

	if cfg.breaker != nil {
		threshold := cfg.breaker.consecutiveFailures
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "jsonrpc:" + providerEndpoint,
			MaxRequests: 1,
			Timeout:     cfg.breaker.openTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			// A JSON-RPC error object proves the provider is reachable.
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrProviderReturnedError)
			},
		})
	}

	return c
}

// WithTimeout bounds a single HTTP attempt. Default: 5s.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the shortest wait between attempts. Default: 1s.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the longest wait between attempts. Default: 5s.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the number of retries after a failed attempt. Default: 2.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithRateLimit allows rps calls per second with the given burst. A
// non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *config) {
		c.rps = rps
		c.burst = burst
	}
}

// WithCircuitBreaker opens the circuit after consecutiveFailures transport
// failures in a row and lets a trial request through after openTimeout.
func WithCircuitBreaker(consecutiveFailures uint32, openTimeout time.Duration) Option {
	return func(c *config) {
		c.breaker = &breakerConfig{
			consecutiveFailures: max(consecutiveFailures, 1),
			openTimeout:         openTimeout,
		}
	}
}
