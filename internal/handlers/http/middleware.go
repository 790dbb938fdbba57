package http

import (
	"net"
	stdhttp "net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/walletbot/internal/pkg/errtrack"
	"github.com/gabapcia/walletbot/internal/pkg/logger"

	"golang.org/x/time/rate"
)

const (
	staleLimiterTTL = 10 * time.Minute
	cleanupInterval = time.Minute
)

type statusRecorder struct {
	stdhttp.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests derives a request-scoped logger and logs one record per
// response.
func logRequests(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		start := time.Now()
		ctx := logger.Derive(r.Context(),
			"http.method", r.Method,
			"http.path", r.URL.Path,
		)

		rec := &statusRecorder{ResponseWriter: w, status: stdhttp.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info(ctx, "http request served",
			"http.status", rec.status,
			"http.duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func recoverPanics(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == stdhttp.ErrAbortHandler {
					panic(v)
				}

				logger.Error(r.Context(), "panic while handling http request", "panic", v)
				errtrack.CapturePanic(r.Context(), v, map[string]string{"component": "http"})
				writeJSON(w, stdhttp.StatusInternalServerError, errorResponse{Error: "internal error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps one token bucket per client IP. Idle buckets are evicted
// by a background sweep until stop is called.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	now      func() time.Time

	trustedProxies []netip.Prefix

	stopOnce sync.Once
	stopCh   chan struct{}
}

func newRateLimiter(rps float64, burst int, trustedProxies []netip.Prefix) *rateLimiter {
	if burst < 1 {
		burst = 1
	}

	rl := &rateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
		stopCh:   make(chan struct{}),

		trustedProxies: trustedProxies,
	}

	go rl.cleanupLoop()
	return rl
}

func (rl *rateLimiter) stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopCh)
	})
}

func (rl *rateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			rl.evictStale()
		}
	}
}

func (rl *rateLimiter) evictStale() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, entry := range rl.limiters {
		if now.Sub(entry.lastSeen) > staleLimiterTTL {
			delete(rl.limiters, ip)
		}
	}
}

func (rl *rateLimiter) get(ip string) *rate.Limiter {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if entry, ok := rl.limiters[ip]; ok {
		entry.lastSeen = now
		return entry.limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[ip] = &limiterEntry{limiter: limiter, lastSeen: now}
	return limiter
}

// retryAfter is the number of whole seconds until one token is back.
func (rl *rateLimiter) retryAfter() int {
	if rl.limit <= 0 {
		return 60
	}
	return max(1, int(1/float64(rl.limit)+0.5))
}

func (rl *rateLimiter) wrap(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		ip := clientIP(r, rl.trustedProxies)
		if !rl.get(ip).Allow() {
			logger.Warn(r.Context(), "http rate limit exceeded", "http.client_ip", ip)
			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
			writeJSON(w, stdhttp.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP keys the request on the connection's peer address. Forwarding
// headers are only honoured when that peer is a trusted proxy; then the
// right-most X-Forwarded-For hop that is not itself a trusted proxy wins,
// falling back to X-Real-IP.
func clientIP(r *stdhttp.Request, trusted []netip.Prefix) string {
	peer := remoteHost(r.RemoteAddr)
	if !isTrusted(peer, trusted) {
		return peer
	}

	if xff := r.Header.Values("X-Forwarded-For"); len(xff) > 0 {
		hops := strings.Split(strings.Join(xff, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop == "" {
				continue
			}
			if !isTrusted(hop, trusted) || i == 0 {
				return hop
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return peer
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, prefix := range trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
