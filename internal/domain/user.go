package domain

import "time"

// User is the domain model for catalog accounts. The identity key (ID) is the
// store-assigned identifier embedded in issued tokens; PasswordHash is never
// exposed outside the service layer.
type User struct {
	ID             string
	Username       string
	PasswordHash   string
	Email          string
	Birthday       *time.Time
	FavoriteMovies []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
