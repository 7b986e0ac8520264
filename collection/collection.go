package collection

// Variable is one resolution result: the owning collection's name, the
// matched key, and a snapshot of the value at the moment of resolution.
// Records are independent of the store once returned; later mutation or
// eviction of the source entry does not affect them.
type Variable struct {
	Collection string
	Key        string
	Value      string
}

// KeyExclusions suppresses specific keys from a resolution's results.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Ownership: the store consults the filter but never mutates or retains it.
type KeyExclusions interface {
	// Omit reports whether the key must be left out of the results.
	Omit(key string) bool
}

// Mode selects one of the three resolution algorithms.
type Mode int

const (
	// ModeSingle collects every live entry under one exact key.
	ModeSingle Mode = iota
	// ModeMulti collects entries by exact key, or the whole store when the
	// key is empty, applying an exclusion filter.
	ModeMulti
	// ModeRegex collects entries whose key matches a regular expression,
	// applying an exclusion filter.
	ModeRegex
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	case ModeRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// Collection is the store surface consumed by rule evaluation.
//
// Contract:
//   - Concurrency: implementations must be safe for concurrent use; mutations
//     and resolutions are mutually exclusive, each a single critical section.
//   - Errors: not-found is an empty list or false, never an error. Only a
//     malformed regex pattern or an unknown mode fails a call.
//   - Ownership: returned Variables are value snapshots, never aliases into
//     the store.
type Collection interface {
	// Name returns the collection's name as carried on result records.
	Name() string

	// Store inserts a new entry under key, preserving any existing entries
	// for the same key.
	Store(key, value string)

	// StoreOrUpdateFirst updates the first entry under key, or inserts a new
	// one if none exists. The result is always true.
	StoreOrUpdateFirst(key, value string) bool

	// UpdateFirst replaces the value of the first entry under key, leaving
	// its expiry untouched. Returns false and mutates nothing when the key
	// has no entries.
	UpdateFirst(key, value string) bool

	// Del removes every entry under key. Removing an absent key is a no-op.
	Del(key string)

	// SetExpiry marks every entry under key to expire seconds from now, each
	// entry's deadline computed independently. Zero or negative seconds
	// marks the entries already expired.
	SetExpiry(key string, seconds int32)

	// ResolveFirstRaw returns the value of the first entry under key without
	// checking expiry or evicting. The result may be stale.
	ResolveFirstRaw(key string) (string, bool)

	// ResolveSingleMatch collects every live entry under key in insertion
	// order.
	ResolveSingleMatch(key string) []Variable

	// ResolveMultiMatches collects entries under key, or the whole store
	// when key is empty, newest-first. A nil KeyExclusions excludes nothing.
	ResolveMultiMatches(key string, ke KeyExclusions) []Variable

	// ResolveRegularExpression collects entries whose key matches expr,
	// newest-first. Fails with ErrInvalidPattern on a malformed expression.
	ResolveRegularExpression(expr string, ke KeyExclusions) ([]Variable, error)

	// Resolve dispatches to the algorithm selected by mode. nameOrPattern is
	// the exact key for ModeSingle/ModeMulti and the expression for ModeRegex.
	Resolve(mode Mode, nameOrPattern string, ke KeyExclusions) ([]Variable, error)

	// Len returns the number of entries currently held, including ones that
	// are expired but not yet evicted.
	Len() int
}
