package dto

import (
	"time"

	"github.com/spec-kit/myflix-service/internal/domain"
)

// LoginRequest payload. Field casing follows the public API contract.
type LoginRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// RegisterRequest payload for new accounts. Birthday is an optional
// YYYY-MM-DD date.
type RegisterRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
	Email    string `json:"Email"`
	Birthday string `json:"Birthday"`
}

// UpdateUserRequest payload; omitted fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"Username"`
	Password *string `json:"Password"`
	Email    *string `json:"Email"`
	Birthday *string `json:"Birthday"`
}

// UserResponse is the client-facing account shape; the password hash is never
// serialized.
type UserResponse struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Birthday       *time.Time `json:"birthday,omitempty"`
	FavoriteMovies []string   `json:"favorite_movies"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewUserResponse maps a domain user to its response shape.
func NewUserResponse(user *domain.User) UserResponse {
	favorites := user.FavoriteMovies
	if favorites == nil {
		favorites = []string{}
	}
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Birthday:       user.Birthday,
		FavoriteMovies: favorites,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
