package redis

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/gabapcia/walletbot/internal/pkg/logger"
	"github.com/gabapcia/walletbot/internal/walletwatch"
)

const defaultKeyPrefix = "walletwatch"

// entriesKey is the hash holding one JSON encoded entry per watched address.
//
// Format: "{prefix}:entries"
func (c *client) entriesKey() string {
	return fmt.Sprintf("%s:entries", c.keyPrefix)
}

// SaveWatch stores entry under its address, replacing any previous value.
func (c *client) SaveWatch(ctx context.Context, entry walletwatch.WatchEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode watch entry: %w", err)
	}

	return c.conn.HSet(ctx, c.entriesKey(), entry.Address, data).Err()
}

func (c *client) DeleteWatch(ctx context.Context, address string) error {
	return c.conn.HDel(ctx, c.entriesKey(), address).Err()
}

// LoadWatches returns every stored entry ordered by AddedAt. Entries that no
// longer decode are logged and skipped.
func (c *client) LoadWatches(ctx context.Context) ([]walletwatch.WatchEntry, error) {
	raw, err := c.conn.HGetAll(ctx, c.entriesKey()).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]walletwatch.WatchEntry, 0, len(raw))
	for address, data := range raw {
		var entry walletwatch.WatchEntry
		if err := json.Unmarshal([]byte(data), &entry); err != nil {
			logger.Warn(ctx, "skipping undecodable watch entry", "address", address, "error", err)
			continue
		}
		entries = append(entries, entry)
	}

	slices.SortFunc(entries, func(a, b walletwatch.WatchEntry) int {
		if n := a.AddedAt.Compare(b.AddedAt); n != 0 {
			return n
		}
		return cmp.Compare(a.Address, b.Address)
	})

	return entries, nil
}

var _ walletwatch.WatchStorage = (*client)(nil)
