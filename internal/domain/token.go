package domain

import "time"

// Token represents issued authentication token metadata. Tokens are
// self-contained: there is no server-side session table and no revocation
// before expiry.
type Token struct {
	SubjectID string
	ExpiresAt time.Time
	IssuedAt  time.Time
}
