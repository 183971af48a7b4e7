package websocket

import (
	"sort"
	"sync"
	"time"
)

// Entry is one row pushed through a room feed.
type Entry struct {
	ID        string
	CreatedAt time.Time
	Payload   []byte
}

// Feed is the replay log of a single room. Pushes from the backend can
// arrive twice or out of order relative to creation time; Append is
// idempotent by id and Snapshot always returns rows in ascending
// creation-time order, so every reader converges on the same log.
type Feed struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewFeed() *Feed {
	return &Feed{
		entries: make(map[string]Entry),
	}
}

// Append records the entry and reports whether it was new. Re-delivering a
// row with an id already seen changes nothing.
func (f *Feed) Append(entry Entry) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, seen := f.entries[entry.ID]; seen {
		return false
	}
	f.entries[entry.ID] = entry
	return true
}

// Replace resets the feed from a full refetch, dropping anything a missed
// push left behind.
func (f *Feed) Replace(entries []Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = make(map[string]Entry, len(entries))
	for _, e := range entries {
		f.entries[e.ID] = e
	}
}

// Snapshot returns all entries ordered ascending by creation time. Entries
// with equal timestamps fall back to id order so the result is stable.
func (f *Feed) Snapshot() []Entry {
	f.mu.RLock()
	out := make([]Entry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	f.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}

func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}
