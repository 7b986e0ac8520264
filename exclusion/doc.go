// Package exclusion implements the key-exclusion predicate consulted during
// variable resolution. Rules can suppress individual keys (exact match) or
// whole families of keys (regex match) from a resolution's results without
// touching the underlying store.
package exclusion
