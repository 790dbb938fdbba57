// Package redis persists wallet watch entries so subscriptions survive a
// restart.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

// conn is the subset of *redis.Client the storage uses.
type conn interface {
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	Close() error
}

type client struct {
	conn      conn
	keyPrefix string
}

func (c *client) Close() error {
	return c.conn.Close()
}

type config struct {
	username  string
	password  string
	db        int
	keyPrefix string
}

type Option func(*config)

// NewClient connects to addr and pings it before returning.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	cfg := config{
		keyPrefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &client{
		conn:      rdb,
		keyPrefix: cfg.keyPrefix,
	}, nil
}

// WithCredentials sets the ACL username and password.
func WithCredentials(username, password string) Option {
	return func(c *config) {
		c.username = username
		c.password = password
	}
}

// WithDB selects the logical database. Default: 0.
func WithDB(db int) Option {
	return func(c *config) {
		c.db = db
	}
}

// WithKeyPrefix namespaces every key, e.g. per deployment. Default: "walletwatch".
func WithKeyPrefix(prefix string) Option {
	return func(c *config) {
		c.keyPrefix = prefix
	}
}
