// Package pattern wraps regular-expression compilation and searching for the
// variable-resolution sublanguage.
//
// It exposes match counts rather than submatches because resolution only
// needs to know whether and how often a key matches.
package pattern
