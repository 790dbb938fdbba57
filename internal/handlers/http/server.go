// Package http serves the JSON API: one-off chain lookups plus management of
// wallet monitoring subscriptions.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	stdhttp "net/http"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/walletbot/internal/chaininfo"
	"github.com/gabapcia/walletbot/internal/pkg/errtrack"
	"github.com/gabapcia/walletbot/internal/pkg/logger"
	"github.com/gabapcia/walletbot/internal/walletwatch"
)

const (
	defaultMaxBodyBytes      = 1 << 20
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

var errInvalidChatID = errors.New("telegramChatId must be an integer chat id")

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type healthResponse struct {
	Status string             `json:"status"`
	Watch  walletwatch.Status `json:"watch"`
}

// chatID accepts both a JSON number and a quoted number.
type chatID string

func (c *chatID) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*c = ""
		return nil
	}
	*c = chatID(strings.Trim(s, `"`))
	return nil
}

type setupRequest struct {
	WalletAddress    string                       `json:"walletAddress"`
	TelegramChatID   chatID                       `json:"telegramChatId"`
	NotificationType walletwatch.NotificationKind `json:"notificationType"`
}

type server struct {
	chainInfo   chaininfo.Service
	walletWatch walletwatch.Service

	limiter      *rateLimiter
	maxBodyBytes int64
}

// Handler returns the routed API wrapped in its middleware. Rate limiting
// only applies when configured.
func (s *server) Handler() stdhttp.Handler {
	mux := stdhttp.NewServeMux()
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("GET /api/wallet/{address}", s.walletInfo)
	mux.HandleFunc("GET /api/token/{contract}/balance/{wallet}", s.tokenBalance)
	mux.HandleFunc("GET /api/chain/stats", s.chainStats)
	mux.HandleFunc("GET /api/realtime/chain-stats", s.chainStats)
	mux.HandleFunc("GET /api/dex/factory/{address}", s.dexFactory)
	mux.HandleFunc("POST /api/wallet/monitor/setup", s.setupMonitor)
	mux.HandleFunc("GET /api/wallet/monitor", s.listMonitors)
	mux.HandleFunc("DELETE /api/wallet/monitor/{address}", s.removeMonitor)

	var h stdhttp.Handler = mux
	if s.limiter != nil {
		h = s.limiter.wrap(h)
	}
	return logRequests(recoverPanics(h))
}

// ListenAndServe serves the API on addr until ctx is done, then shuts down
// gracefully.
func (s *server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &stdhttp.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "http api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultShutdownTimeout)
	defer cancel()

	if s.limiter != nil {
		s.limiter.stop()
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http api: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *server) health(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	writeJSON(w, stdhttp.StatusOK, healthResponse{
		Status: "ok",
		Watch:  s.walletWatch.Status(),
	})
}

func (s *server) walletInfo(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	info, err := s.chainInfo.WalletInfo(r.Context(), r.PathValue("address"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, stdhttp.StatusOK, info)
}

func (s *server) tokenBalance(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	balance, err := s.chainInfo.TokenBalance(r.Context(), r.PathValue("contract"), r.PathValue("wallet"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, stdhttp.StatusOK, balance)
}

func (s *server) chainStats(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	stats, err := s.chainInfo.ChainStats(r.Context())
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, stdhttp.StatusOK, stats)
}

func (s *server) dexFactory(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	info, err := s.chainInfo.DexFactoryInfo(r.Context(), r.PathValue("address"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, stdhttp.StatusOK, info)
}

func (s *server) setupMonitor(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	var req setupRequest
	if err := decodeJSONBody(w, r, &req, s.maxBodyBytes); err != nil {
		writeJSON(w, stdhttp.StatusBadRequest, errorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if req.TelegramChatID != "" {
		if _, err := strconv.ParseInt(string(req.TelegramChatID), 10, 64); err != nil {
			s.writeError(r.Context(), w, errInvalidChatID)
			return
		}
	}

	entry, err := s.walletWatch.Subscribe(r.Context(), req.WalletAddress, string(req.TelegramChatID), req.NotificationType)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, stdhttp.StatusCreated, entry)
}

func (s *server) listMonitors(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	writeJSON(w, stdhttp.StatusOK, s.walletWatch.List())
}

func (s *server) removeMonitor(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	if err := s.walletWatch.Unsubscribe(r.Context(), r.PathValue("address")); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(stdhttp.StatusNoContent)
}

// writeError maps domain errors to status codes. Anything else comes from the
// chain provider: it is logged, reported and answered with 502.
func (s *server) writeError(ctx context.Context, w stdhttp.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, chaininfo.ErrInvalidAddress),
		errors.Is(err, walletwatch.ErrInvalidAddress),
		errors.Is(err, walletwatch.ErrMissingChannel),
		errors.Is(err, walletwatch.ErrUnsupportedKind),
		errors.Is(err, errInvalidChatID):
		status = stdhttp.StatusBadRequest
	case errors.Is(err, walletwatch.ErrNotWatched),
		errors.Is(err, chaininfo.ErrNoContractCode):
		status = stdhttp.StatusNotFound
	case errors.Is(err, chaininfo.ErrNotAToken):
		status = stdhttp.StatusUnprocessableEntity
	case errors.Is(err, walletwatch.ErrServiceClosed):
		status = stdhttp.StatusServiceUnavailable
	default:
		logger.Error(ctx, "error handling http request", "error", err)
		errtrack.CaptureError(ctx, err, map[string]string{"component": "http"})
		writeJSON(w, stdhttp.StatusBadGateway, errorResponse{Error: "upstream error"})
		return
	}

	writeJSON(w, status, errorResponse{Error: stdhttp.StatusText(status), Message: err.Error()})
}

func writeJSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSONBody(w stdhttp.ResponseWriter, r *stdhttp.Request, dst any, maxBytes int64) error {
	r.Body = stdhttp.MaxBytesReader(w, r.Body, maxBytes)
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(dst)
}

type config struct {
	maxBodyBytes int64
	rateLimit    float64
	rateBurst    int

	trustedProxies []netip.Prefix
}

type Option func(*config)

// NewServer builds the API. Rate limiting is off unless WithRateLimit is given.
func NewServer(chainInfo chaininfo.Service, walletWatch walletwatch.Service, opts ...Option) *server {
	cfg := config{
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &server{
		chainInfo:    chainInfo,
		walletWatch:  walletWatch,
		maxBodyBytes: cfg.maxBodyBytes,
	}
	if cfg.rateLimit > 0 {
		s.limiter = newRateLimiter(cfg.rateLimit, cfg.rateBurst, cfg.trustedProxies)
	}
	return s
}

// WithRateLimit allows each client IP rps requests per second with the given
// burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *config) {
		c.rateLimit = rps
		c.rateBurst = burst
	}
}

// WithTrustedProxies lists the reverse proxies whose X-Forwarded-For and
// X-Real-IP headers identify the client for rate limiting. Requests from any
// other peer are keyed on their own address.
func WithTrustedProxies(prefixes ...netip.Prefix) Option {
	return func(c *config) {
		c.trustedProxies = prefixes
	}
}

// WithMaxBodyBytes caps request bodies. Default: 1 MiB.
func WithMaxBodyBytes(n int64) Option {
	return func(c *config) {
		c.maxBodyBytes = n
	}
}
