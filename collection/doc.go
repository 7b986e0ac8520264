// Package collection provides the shared in-process state store used by rule
// evaluation to hold named, possibly duplicated, possibly expiring string
// facts such as per-session counters and tracked tokens.
//
// A collection is an insertion-ordered multimap: storing under an existing
// key adds a coexisting entry rather than overwriting. Expired entries are
// never swept in the background; they are evicted lazily when a resolution
// scan encounters them, or removed explicitly via Del.
package collection
