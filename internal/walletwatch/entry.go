package walletwatch

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// NotificationKind selects which changes a subscriber is told about.
type NotificationKind string

// NotificationKindBuy reports every balance or contract code change. It is
// the only kind supported today.
const NotificationKindBuy NotificationKind = "buy"

// Snapshot is the state of an address observed at one point in time.
type Snapshot struct {
	Balance         decimal.Decimal `json:"balance"`
	HasContractCode bool            `json:"hasContractCode"`
}

// WatchEntry is one address under observation.
type WatchEntry struct {
	// ID changes every time the address is (re-)subscribed.
	ID                string           `json:"id"`
	Address           string           `json:"address"`
	SubscriberChannel string           `json:"subscriberChannel"`
	NotificationKind  NotificationKind `json:"notificationKind"`
	LastSnapshot      Snapshot         `json:"lastSnapshot"`
	AddedAt           time.Time        `json:"addedAt"`
	LastCheckedAt     time.Time        `json:"lastCheckedAt"`
}

// ChainReader reads the two facts a snapshot is made of.
type ChainReader interface {
	// GetBalance returns the native balance of address in whole units.
	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)

	// HasCode reports whether a contract is deployed at address.
	HasCode(ctx context.Context, address string) (bool, error)
}

// MessageSender delivers text to a subscriber channel.
type MessageSender interface {
	SendMessage(ctx context.Context, channelID, text string) error
}

// WatchStorage persists watch entries across restarts. The in-memory registry
// stays the source of truth; storage failures are only logged.
type WatchStorage interface {
	// SaveWatch inserts or replaces the entry keyed by its address.
	SaveWatch(ctx context.Context, entry WatchEntry) error

	// DeleteWatch removes the entry for address. Missing entries are not an error.
	DeleteWatch(ctx context.Context, address string) error

	// LoadWatches returns every stored entry ordered by AddedAt.
	LoadWatches(ctx context.Context) ([]WatchEntry, error)
}

type nopStorage struct{}

func (nopStorage) SaveWatch(context.Context, WatchEntry) error { return nil }

func (nopStorage) DeleteWatch(context.Context, string) error { return nil }

func (nopStorage) LoadWatches(context.Context) ([]WatchEntry, error) { return nil, nil }
