// Package walletwatch polls watched addresses and tells their subscribers
// when the native balance or the contract code presence changes.
//
// Entries live in an in-memory registry owned by the service. While the
// registry is non-empty a single poll loop reads every entry in turn, compares
// the result with the last snapshot and sends a message on change. A failed
// read skips the entry for that cycle and keeps its snapshot, so a flaky
// provider never produces a false change.
package walletwatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/walletbot/internal/pkg/logger"
	"github.com/gabapcia/walletbot/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletbot/internal/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	ErrInvalidAddress        = errors.New("invalid address")
	ErrNotWatched            = errors.New("address is not watched")
	ErrTransport             = errors.New("transport error")
	ErrMissingChannel        = errors.New("subscriber channel is required")
	ErrUnsupportedKind       = errors.New("unsupported notification kind")
	ErrServiceClosed         = errors.New("service closed")
	ErrServiceAlreadyStarted = errors.New("service already started")
)

const (
	defaultInterval        = 30 * time.Second
	defaultReadTimeout     = 10 * time.Second
	defaultDeliveryTimeout = 10 * time.Second
	defaultNativeSymbol    = "OKB"
	storageTimeout         = 5 * time.Second
)

// Status summarizes the poll loop.
type Status struct {
	Running       bool      `json:"running"`
	WatchedCount  int       `json:"watchedCount"`
	LastCheckedAt time.Time `json:"lastCheckedAt"`
}

// Service manages wallet watches and the poll loop that serves them.
type Service interface {
	// Start restores persisted entries and enables polling. The loop keeps
	// running until Close, independently of ctx cancellation.
	Start(ctx context.Context) error

	// Close stops polling. It is idempotent.
	Close()

	// Subscribe watches address on behalf of channel, replacing any previous
	// subscription for the same address.
	Subscribe(ctx context.Context, address, channel string, kind NotificationKind) (WatchEntry, error)

	// Unsubscribe stops watching address. It fails with ErrNotWatched when
	// the address is unknown.
	Unsubscribe(ctx context.Context, address string) error

	// List returns the watched entries in subscription order.
	List() []WatchEntry

	// Status reports whether the loop is running, how many addresses are
	// watched and when the last successful check happened.
	Status() Status
}

type failureHandler func(ctx context.Context, entry WatchEntry, err error)

type service struct {
	mu      sync.Mutex
	baseCtx context.Context
	started bool
	closed  bool

	// persistMu pairs each registry write with its storage write, so the
	// store never ends up holding an entry the registry no longer has.
	persistMu sync.Mutex
	registry  *registry
	scheduler *scheduler
	notifier  *notifier

	chain       ChainReader
	storage     WatchStorage
	readTimeout time.Duration
	now         func() time.Time

	readFailureHandler     failureHandler
	deliveryFailureHandler failureHandler

	metrics instruments
}

var _ Service = (*service)(nil)

func normalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !validator.IsAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return strings.ToLower(address), nil
}

// syncScheduler makes the poll loop state follow the registry: running while
// there is something to watch, idle otherwise.
func (s *service) syncScheduler() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.closed {
		return
	}

	if s.registry.len() > 0 {
		s.scheduler.start(s.baseCtx)
	} else {
		s.scheduler.stop()
	}
}

func (s *service) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// readSnapshot reads balance and code presence, bounded by the read timeout.
func (s *service) readSnapshot(ctx context.Context, address string) (Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	balance, err := s.chain.GetBalance(ctx, address)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: get balance: %w", ErrTransport, err)
	}

	hasCode, err := s.chain.HasCode(ctx, address)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: get code: %w", ErrTransport, err)
	}

	return Snapshot{Balance: balance, HasContractCode: hasCode}, nil
}

func (s *service) saveWatch(ctx context.Context, entry WatchEntry) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storageTimeout)
	defer cancel()

	if err := s.storage.SaveWatch(ctx, entry); err != nil {
		logger.Error(ctx, "error persisting watch entry",
			"wallet.address", entry.Address,
			"error", err,
		)
	}
}

func (s *service) deleteWatch(ctx context.Context, address string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storageTimeout)
	defer cancel()

	if err := s.storage.DeleteWatch(ctx, address); err != nil {
		logger.Error(ctx, "error deleting persisted watch entry",
			"wallet.address", address,
			"error", err,
		)
	}
}

func (s *service) Subscribe(ctx context.Context, address, channel string, kind NotificationKind) (WatchEntry, error) {
	if s.isClosed() {
		return WatchEntry{}, ErrServiceClosed
	}

	address, err := normalizeAddress(address)
	if err != nil {
		return WatchEntry{}, err
	}

	if strings.TrimSpace(channel) == "" {
		return WatchEntry{}, ErrMissingChannel
	}

	if kind == "" {
		kind = NotificationKindBuy
	}
	if kind != NotificationKindBuy {
		return WatchEntry{}, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}

	now := s.now()
	entry := WatchEntry{
		ID:                uuid.NewString(),
		Address:           address,
		SubscriberChannel: channel,
		NotificationKind:  kind,
		LastSnapshot:      Snapshot{Balance: decimal.Zero},
		AddedAt:           now,
	}

	snapshot, err := s.readSnapshot(ctx, address)
	if err != nil {
		// The zero snapshot stays; the first successful poll may report a
		// change against it.
		logger.Warn(ctx, "error reading initial wallet snapshot",
			"wallet.address", address,
			"error", err,
		)
	} else {
		entry.LastSnapshot = snapshot
		entry.LastCheckedAt = now
	}

	s.persistMu.Lock()
	s.registry.put(entry)
	s.saveWatch(ctx, entry)
	s.persistMu.Unlock()

	s.syncScheduler()

	logger.Info(ctx, "wallet watch added",
		"wallet.address", entry.Address,
		"wallet.channel", entry.SubscriberChannel,
	)

	if err := s.notifier.deliver(ctx, channel, s.notifier.formatConfirmation(entry)); err != nil {
		s.deliveryFailureHandler(ctx, entry, err)
	}

	return entry, nil
}

func (s *service) Unsubscribe(ctx context.Context, address string) error {
	address = strings.ToLower(strings.TrimSpace(address))

	s.persistMu.Lock()
	if !s.registry.remove(address) {
		s.persistMu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotWatched, address)
	}
	s.deleteWatch(ctx, address)
	s.persistMu.Unlock()

	s.syncScheduler()

	logger.Info(ctx, "wallet watch removed", "wallet.address", address)
	return nil
}

func (s *service) List() []WatchEntry {
	return s.registry.list()
}

func (s *service) Status() Status {
	return Status{
		Running:       s.scheduler.running(),
		WatchedCount:  s.registry.len(),
		LastCheckedAt: s.registry.lastCheckedAt(),
	}
}

// restore loads persisted entries into the registry. Entries already
// subscribed in this process take precedence.
func (s *service) restore(ctx context.Context) error {
	entries, err := s.storage.LoadWatches(ctx)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if _, ok := s.registry.get(entry.Address); ok {
			continue
		}
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		s.registry.put(entry)
	}

	if len(entries) > 0 {
		logger.Info(ctx, "wallet watches restored", "watch.count", len(entries))
	}
	return nil
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return ErrServiceClosed
	case s.started:
		s.mu.Unlock()
		return ErrServiceAlreadyStarted
	}
	s.mu.Unlock()

	if err := s.restore(ctx); err != nil {
		logger.Error(ctx, "error restoring wallet watches", "error", err)
	}

	s.mu.Lock()
	s.baseCtx = context.WithoutCancel(ctx)
	s.started = true
	s.mu.Unlock()

	s.syncScheduler()
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.scheduler.stop()
}

// tick runs one poll cycle over a copy of the registry. Reads are sequential
// to bound the load on the provider.
func (s *service) tick(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "walletwatch.tick")
	defer span.End()

	entries := s.registry.list()
	span.SetAttributes(attribute.Int("watch.count", len(entries)))

	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}
		s.check(ctx, entry)
	}

	s.metrics.ticks.Add(ctx, 1)
}

// check polls a single entry.
func (s *service) check(ctx context.Context, entry WatchEntry) {
	current, err := s.readSnapshot(ctx, entry.Address)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.metrics.readsFailed.Add(ctx, 1)
		s.readFailureHandler(ctx, entry, err)
		return
	}

	checkedAt := s.now()
	if !hasChanged(entry.LastSnapshot, current) {
		s.registry.record(entry.Address, entry.ID, entry.LastSnapshot, checkedAt)
		return
	}

	text := s.notifier.formatChange(entry.Address, entry.LastSnapshot, current, checkedAt)
	if err := s.notifier.deliver(ctx, entry.SubscriberChannel, text); err != nil {
		s.metrics.notificationsFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("wallet.channel", entry.SubscriberChannel)))
		s.deliveryFailureHandler(ctx, entry, err)
	} else {
		s.metrics.notificationsSent.Add(ctx, 1)
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	updated, ok := s.registry.record(entry.Address, entry.ID, current, checkedAt)
	if !ok {
		return
	}
	s.saveWatch(ctx, updated)
}

type config struct {
	interval               time.Duration
	readTimeout            time.Duration
	deliveryTimeout        time.Duration
	storage                WatchStorage
	retry                  retry.Retry
	now                    func() time.Time
	nativeSymbol           string
	readFailureHandler     failureHandler
	deliveryFailureHandler failureHandler
}

type Option func(*config)

// New returns a Service reading through chain and notifying through sender.
// Polling only begins once Start is called.
func New(chain ChainReader, sender MessageSender, opts ...Option) *service {
	cfg := config{
		interval:               defaultInterval,
		readTimeout:            defaultReadTimeout,
		deliveryTimeout:        defaultDeliveryTimeout,
		storage:                nopStorage{},
		retry:                  retry.New(),
		now:                    time.Now,
		nativeSymbol:           defaultNativeSymbol,
		readFailureHandler:     defaultOnReadFailure,
		deliveryFailureHandler: defaultOnDeliveryFailure,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &service{
		baseCtx:     context.Background(),
		registry:    newRegistry(),
		chain:       chain,
		storage:     cfg.storage,
		readTimeout: cfg.readTimeout,
		now:         cfg.now,
		notifier: &notifier{
			sender:  sender,
			retry:   cfg.retry,
			symbol:  cfg.nativeSymbol,
			timeout: cfg.deliveryTimeout,
		},
		readFailureHandler:     cfg.readFailureHandler,
		deliveryFailureHandler: cfg.deliveryFailureHandler,
		metrics:                newInstruments(),
	}
	s.scheduler = newScheduler(cfg.interval, s.tick)

	return s
}

func defaultOnReadFailure(ctx context.Context, entry WatchEntry, err error) {
	logger.Warn(ctx, "error reading wallet snapshot",
		"wallet.address", entry.Address,
		"error", err,
	)
}

func defaultOnDeliveryFailure(ctx context.Context, entry WatchEntry, err error) {
	logger.Error(ctx, "error delivering wallet notification",
		"wallet.address", entry.Address,
		"wallet.channel", entry.SubscriberChannel,
		"error", err,
	)
}

// WithInterval sets the pause between the end of a poll cycle and the start
// of the next. Default: 30s.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithReadTimeout bounds each chain read. Default: 10s.
func WithReadTimeout(d time.Duration) Option {
	return func(c *config) {
		c.readTimeout = d
	}
}

// WithDeliveryTimeout bounds one message delivery, retries included.
// Default: 10s.
func WithDeliveryTimeout(d time.Duration) Option {
	return func(c *config) {
		c.deliveryTimeout = d
	}
}

// WithStorage persists entries so they survive a restart. By default nothing
// is persisted.
func WithStorage(storage WatchStorage) Option {
	return func(c *config) {
		c.storage = storage
	}
}

// WithRetry sets the retry policy for message delivery.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithClock replaces time.Now for subscription and check timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithNativeSymbol sets the currency symbol used in messages. Default: OKB.
func WithNativeSymbol(symbol string) Option {
	return func(c *config) {
		c.nativeSymbol = symbol
	}
}

// WithReadFailureHandler is called when a poll cannot read an entry. The
// default logs a warning.
func WithReadFailureHandler(f func(ctx context.Context, entry WatchEntry, err error)) Option {
	return func(c *config) {
		c.readFailureHandler = f
	}
}

// WithDeliveryFailureHandler is called when a message is still undelivered
// after retries. The default logs an error.
func WithDeliveryFailureHandler(f func(ctx context.Context, entry WatchEntry, err error)) Option {
	return func(c *config) {
		c.deliveryFailureHandler = f
	}
}
