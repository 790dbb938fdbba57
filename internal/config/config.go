// Package config loads process settings from the environment. A .env file,
// when present, is read first; variables already set in the environment win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"strings"
	"time"

	"github.com/gabapcia/walletbot/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Log struct {
	Level string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
}

type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"walletbot" validate:"required"`
}

type Sentry struct {
	DSN         string `envconfig:"DSN"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	Release     string `envconfig:"RELEASE"`
}

type RPC struct {
	URL             string        `envconfig:"URL" default:"https://rpc.xlayer.tech" validate:"required,url"`
	Timeout         time.Duration `envconfig:"TIMEOUT" default:"5s" validate:"gt=0"`
	RetryMax        int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
	RateLimit       float64       `envconfig:"RATE_LIMIT" default:"10" validate:"gte=0"`
	RateBurst       int           `envconfig:"RATE_BURST" default:"10" validate:"gte=0"`
	BreakerFailures uint32        `envconfig:"BREAKER_FAILURES" default:"5"`
	BreakerTimeout  time.Duration `envconfig:"BREAKER_TIMEOUT" default:"30s"`
}

type Network struct {
	Name         string `envconfig:"NAME" default:"X Layer" validate:"required"`
	ChainID      int64  `envconfig:"CHAIN_ID" default:"196" validate:"gt=0"`
	NativeSymbol string `envconfig:"NATIVE_SYMBOL" default:"OKB" validate:"required"`
	ExplorerURL  string `envconfig:"EXPLORER_URL" default:"https://www.xlayer.tech" validate:"omitempty,url"`
}

type Telegram struct {
	// Token is only needed by the start command.
	Token         string        `envconfig:"TOKEN"`
	Endpoint      string        `envconfig:"ENDPOINT"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"90s" validate:"gt=0"`
	UpdateTimeout int           `envconfig:"UPDATE_TIMEOUT" default:"60" validate:"gte=0"`
	Debug         bool          `envconfig:"DEBUG" default:"false"`
	// SendTimeout bounds one outgoing message request. Sends are not retried
	// by the HTTP client.
	SendTimeout time.Duration `envconfig:"SEND_TIMEOUT" default:"10s" validate:"gt=0"`
}

type HTTP struct {
	Addr      string  `envconfig:"ADDR" default:":3000" validate:"required"`
	RateLimit float64 `envconfig:"RATE_LIMIT" default:"5" validate:"gte=0"`
	RateBurst int     `envconfig:"RATE_BURST" default:"20" validate:"gte=0"`
	// TrustedProxies is a comma separated CIDR list. Forwarding headers are
	// ignored unless the peer falls inside one of them.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES" validate:"dive,cidr"`
}

// TrustedProxyPrefixes parses TrustedProxies.
func (h HTTP) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(h.TrustedProxies))
	for _, cidr := range h.TrustedProxies {
		prefix, err := netip.ParsePrefix(strings.TrimSpace(cidr))
		if err != nil {
			return nil, fmt.Errorf("parse trusted proxy %q: %w", cidr, err)
		}
		prefixes = append(prefixes, prefix.Masked())
	}
	return prefixes, nil
}

// Redis persistence is disabled while Addr is empty.
type Redis struct {
	Addr      string `envconfig:"ADDR"`
	Username  string `envconfig:"USERNAME"`
	Password  string `envconfig:"PASSWORD"`
	DB        int    `envconfig:"DB" default:"0" validate:"gte=0"`
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"walletwatch" validate:"required"`
}

type Watch struct {
	Interval       time.Duration `envconfig:"INTERVAL" default:"30s" validate:"gt=0"`
	ReadTimeout    time.Duration `envconfig:"READ_TIMEOUT" default:"10s" validate:"gt=0"`
	NotifyAttempts uint          `envconfig:"NOTIFY_ATTEMPTS" default:"3" validate:"gt=0"`
	NotifyDelay    time.Duration `envconfig:"NOTIFY_DELAY" default:"1s"`
	// NotifyTimeout bounds one notification, every attempt included.
	NotifyTimeout time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"30s" validate:"gt=0"`
}

type Config struct {
	Log       Log       `envconfig:"LOG"`
	Telemetry Telemetry `envconfig:"TELEMETRY"`
	Sentry    Sentry    `envconfig:"SENTRY"`
	RPC       RPC       `envconfig:"RPC"`
	Network   Network   `envconfig:"NETWORK"`
	Telegram  Telegram  `envconfig:"TELEGRAM"`
	HTTP      HTTP      `envconfig:"HTTP"`
	Redis     Redis     `envconfig:"REDIS"`
	Watch     Watch     `envconfig:"WATCH"`
}

// Load reads envFiles (".env" when none is given), then the environment, and
// validates the result. Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
