package walletwatch

import (
	"slices"
	"sync"
	"time"
)

// registry holds the watched entries keyed by address and remembers the order
// in which addresses were first added.
type registry struct {
	mu      sync.Mutex
	entries map[string]WatchEntry
	order   []string
}

func newRegistry() *registry {
	return &registry{
		entries: make(map[string]WatchEntry),
	}
}

// put inserts entry or replaces the one with the same address, keeping the
// original position. It returns the number of entries after the write.
func (r *registry) put(entry WatchEntry) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.Address]; !ok {
		r.order = append(r.order, entry.Address)
	}
	r.entries[entry.Address] = entry

	return len(r.entries)
}

// remove deletes address and reports whether it was present.
func (r *registry) remove(address string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[address]; !ok {
		return false
	}

	delete(r.entries, address)
	r.order = slices.DeleteFunc(r.order, func(a string) bool { return a == address })
	return true
}

func (r *registry) get(address string) (WatchEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[address]
	return entry, ok
}

// list returns a copy of every entry in insertion order.
func (r *registry) list() []WatchEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]WatchEntry, 0, len(r.order))
	for _, address := range r.order {
		out = append(out, r.entries[address])
	}
	return out
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// record stores the outcome of a successful read. The write is discarded when
// the entry was removed or re-subscribed after the read started, which is
// detected by comparing the entry id.
func (r *registry) record(address, id string, snapshot Snapshot, checkedAt time.Time) (WatchEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[address]
	if !ok || entry.ID != id {
		return WatchEntry{}, false
	}

	entry.LastSnapshot = snapshot
	entry.LastCheckedAt = checkedAt
	r.entries[address] = entry
	return entry, true
}

// lastCheckedAt returns the most recent check time across all entries.
func (r *registry) lastCheckedAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest time.Time
	for _, entry := range r.entries {
		if entry.LastCheckedAt.After(latest) {
			latest = entry.LastCheckedAt
		}
	}
	return latest
}
