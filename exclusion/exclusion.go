package exclusion

import (
	"fmt"

	"github.com/wafkit/secvars/collection"
	"github.com/wafkit/secvars/pattern"
)

// Exclusions suppresses keys from resolution results by exact match or by
// regex match.
//
// Contract:
// - Concurrency: safe for concurrent Omit calls once fully built. Add calls
//   are construction-time only and must not race Omit.
// - Ownership: the store consults an Exclusions but never mutates it.
type Exclusions struct {
	keys     map[string]struct{}
	patterns []*pattern.Pattern
}

// New returns an empty Exclusions that omits nothing.
func New() *Exclusions {
	return &Exclusions{keys: make(map[string]struct{})}
}

// AddKey excludes one exact key.
func (x *Exclusions) AddKey(key string) {
	x.keys[key] = struct{}{}
}

// AddPattern excludes every key matching expr. The expression is compiled
// case-sensitively, like resolution patterns.
func (x *Exclusions) AddPattern(expr string) error {
	p, err := pattern.Compile(expr, true)
	if err != nil {
		return fmt.Errorf("exclusion: %w", err)
	}
	x.patterns = append(x.patterns, p)
	return nil
}

// Omit reports whether key must be left out of resolution results.
func (x *Exclusions) Omit(key string) bool {
	if _, ok := x.keys[key]; ok {
		return true
	}
	for _, p := range x.patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}

// Len returns the number of exclusion rules held.
func (x *Exclusions) Len() int {
	return len(x.keys) + len(x.patterns)
}

// None excludes nothing. Use it for resolutions with no exclusion rules.
var None = noop{}

type noop struct{}

func (noop) Omit(string) bool { return false }

// Ensure both implementations satisfy the store's capability.
var (
	_ collection.KeyExclusions = (*Exclusions)(nil)
	_ collection.KeyExclusions = None
)
