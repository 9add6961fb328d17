package domain

import "time"

// Credential is the bearer credential issued by a successful login.
// The application currently issues a single static token shared by all
// sessions; a zero ExpiresAt makes "never expires" an explicit property
// of the value rather than an implicit constant, so real session tokens
// can be swapped in without re-deriving the contract.
type Credential struct {
	Token     string
	User      string
	ExpiresAt time.Time
}

// Valid reports whether the credential is usable at the given instant.
func (c Credential) Valid(now time.Time) bool {
	if c.Token == "" {
		return false
	}
	return c.ExpiresAt.IsZero() || now.Before(c.ExpiresAt)
}
