package collection

import "time"

// entry is one stored value with an optional absolute expiry instant.
// The zero expiresAt means the entry never expires.
type entry struct {
	key       string
	value     string
	expiresAt time.Time
}

// expired reports whether the entry is expired at now. It is a pure function
// of the entry and the clock reading; nothing is cached, so two calls at
// different instants may disagree.
func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// setExpiry sets the entry's deadline to now plus seconds, overwriting any
// prior expiry. The value is untouched.
func (e *entry) setExpiry(now time.Time, seconds int32) {
	e.expiresAt = now.Add(time.Duration(seconds) * time.Second)
}
