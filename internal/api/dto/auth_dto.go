package dto

import (
	"time"

	"github.com/mitrokit/ventures-api/internal/domain"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPayload is the public view of an identity.
type UserPayload struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

// LoginData is returned on successful login.
type LoginData struct {
	User      UserPayload `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// NewUserPayload maps a domain user to its public view.
func NewUserPayload(user *domain.User) UserPayload {
	return UserPayload{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}
