package collection

import (
	"fmt"
	"slices"

	"github.com/wafkit/secvars/pattern"
)

// resolveCapacity is the initial capacity hint for multi/regex result lists.
// Performance only; no effect on results.
const resolveCapacity = 15

// All three resolution algorithms share one eviction rule: when a scan finds
// an expired entry it deletes that entry and stops immediately. Entries the
// scan had not yet reached are not examined on that call, even if they are
// live. Rule evaluation depends on this cutoff; a later call picks up where
// the evicted entry no longer is.

// ResolveSingleMatch collects every live entry under key in insertion order.
// A key with no entries yields an empty result.
func (c *InMemory) ResolveSingleMatch(key string) []Variable {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Variable
	for i := 0; i < len(c.entries); i++ {
		e := c.entries[i]
		if e.key != key {
			continue
		}
		if e.expired(c.now()) {
			c.removeAtLocked(i)
			break
		}
		out = append(out, Variable{Collection: c.name, Key: e.key, Value: e.value})
	}
	return out
}

// ResolveMultiMatches collects entries under key, or scans the whole store
// when key is empty. Results are ordered newest-first, the reverse of
// insertion order. A nil KeyExclusions excludes nothing.
//
// In the keyed mode the exclusion filter is evaluated against the queried
// key itself, so filtering is all-or-nothing for the call.
func (c *InMemory) ResolveMultiMatches(key string, ke KeyExclusions) []Variable {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Variable, 0, resolveCapacity)
	if key == "" {
		for i := 0; i < len(c.entries); i++ {
			e := c.entries[i]
			if ke != nil && ke.Omit(e.key) {
				continue
			}
			if e.expired(c.now()) {
				c.removeAtLocked(i)
				break
			}
			out = append(out, Variable{Collection: c.name, Key: e.key, Value: e.value})
		}
	} else {
		for i := 0; i < len(c.entries); i++ {
			e := c.entries[i]
			if e.key != key {
				continue
			}
			if ke != nil && ke.Omit(key) {
				continue
			}
			if e.expired(c.now()) {
				c.removeAtLocked(i)
				break
			}
			out = append(out, Variable{Collection: c.name, Key: key, Value: e.value})
		}
	}
	slices.Reverse(out)
	return out
}

// ResolveRegularExpression collects entries whose key matches expr, ordered
// newest-first like the wildcard multi-match. The expression is compiled
// case-sensitively, outside the lock. A malformed expression fails the call
// with ErrInvalidPattern and leaves the store unchanged.
func (c *InMemory) ResolveRegularExpression(expr string, ke KeyExclusions) ([]Variable, error) {
	p, err := pattern.Compile(expr, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Variable, 0, resolveCapacity)
	for i := 0; i < len(c.entries); i++ {
		e := c.entries[i]
		if p.Search(e.key) <= 0 {
			continue
		}
		if ke != nil && ke.Omit(e.key) {
			continue
		}
		if e.expired(c.now()) {
			c.removeAtLocked(i)
			break
		}
		out = append(out, Variable{Collection: c.name, Key: e.key, Value: e.value})
	}
	slices.Reverse(out)
	return out, nil
}

// Resolve dispatches to the algorithm selected by mode.
func (c *InMemory) Resolve(mode Mode, nameOrPattern string, ke KeyExclusions) ([]Variable, error) {
	switch mode {
	case ModeSingle:
		return c.ResolveSingleMatch(nameOrPattern), nil
	case ModeMulti:
		return c.ResolveMultiMatches(nameOrPattern, ke), nil
	case ModeRegex:
		return c.ResolveRegularExpression(nameOrPattern, ke)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}
