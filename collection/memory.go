package collection

import (
	"sync"
	"time"
)

// DefaultCapacity is the initial entry capacity reserved by New. It is a
// performance hint only; the store grows past it without bound.
const DefaultCapacity = 1000

// InMemory is an in-process, insertion-ordered multimap of expirable string
// entries, shared across worker goroutines.
//
// A single RWMutex guards the entry slice. Mutations and resolution scans
// take the write lock for the whole call; resolution may evict an expired
// entry mid-scan and must not race a concurrent Store or Del. ResolveFirstRaw
// is the one read that stays on the read side of the lock.
type InMemory struct {
	name string

	mu      sync.RWMutex
	entries []*entry

	now func() time.Time // injectable for deterministic tests
}

// New creates an empty collection with the given name and the default
// capacity hint.
func New(name string) *InMemory {
	return NewWithCapacity(name, DefaultCapacity)
}

// NewWithCapacity creates an empty collection reserving space for hint
// entries.
func NewWithCapacity(name string, hint int) *InMemory {
	if hint < 0 {
		hint = 0
	}
	return &InMemory{
		name:    name,
		entries: make([]*entry, 0, hint),
		now:     time.Now,
	}
}

// Name returns the collection's name.
func (c *InMemory) Name() string {
	return c.name
}

// Store unconditionally inserts a new entry under key. Existing entries for
// the same key are preserved; duplicates coexist in insertion order.
func (c *InMemory) Store(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, &entry{key: key, value: value})
}

// StoreOrUpdateFirst updates the first entry under key, falling back to an
// insert when the key has no entries. Both paths run in one critical
// section. The result is always true.
func (c *InMemory) StoreOrUpdateFirst(key, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.updateFirstLocked(key, value) {
		c.entries = append(c.entries, &entry{key: key, value: value})
	}
	return true
}

// UpdateFirst replaces the value of the first entry under key, leaving its
// expiry untouched. Returns false and mutates nothing when no entry exists.
func (c *InMemory) UpdateFirst(key, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateFirstLocked(key, value)
}

func (c *InMemory) updateFirstLocked(key, value string) bool {
	for _, e := range c.entries {
		if e.key == key {
			e.value = value
			return true
		}
	}
	return false
}

// Del removes every entry under key. Removing an absent key is a no-op.
func (c *InMemory) Del(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.key != key {
			kept = append(kept, e)
		}
	}
	// Clear the tail so removed entries are collectable.
	for i := len(kept); i < len(c.entries); i++ {
		c.entries[i] = nil
	}
	c.entries = kept
}

// SetExpiry marks every entry under key to expire seconds from now. Each
// matching entry gets its own independently computed deadline. Zero or
// negative seconds marks the entries already expired.
func (c *InMemory) SetExpiry(key string, seconds int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.key == key {
			e.setExpiry(c.now(), seconds)
		}
	}
}

// ResolveFirstRaw returns the value of the first entry under key, or false
// when none exists. It does not check expiry and does not evict: this is the
// fast "latest write" peek, and callers must treat the result as possibly
// stale. It takes only the read side of the lock, so it never contends with
// other readers.
func (c *InMemory) ResolveFirstRaw(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

// Len returns the number of entries currently held, including expired ones
// not yet evicted.
func (c *InMemory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// removeAtLocked removes the entry at index i. Callers hold the write lock.
func (c *InMemory) removeAtLocked(i int) {
	last := len(c.entries) - 1
	copy(c.entries[i:], c.entries[i+1:])
	c.entries[last] = nil
	c.entries = c.entries[:last]
}

// Ensure InMemory implements Collection.
var _ Collection = (*InMemory)(nil)
