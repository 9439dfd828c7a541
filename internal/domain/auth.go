package domain

import "time"

// Token records metadata about an issued authentication token. The token
// itself is stateless; this is the decoded view, never stored server-side.
type Token struct {
	UserID    string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
