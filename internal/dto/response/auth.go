package response

import (
	"time"

	"health-tracker/internal/data/entity"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResponse wraps the public user fields: {"user": {...}}.
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// TokenResponse is the login success payload: {"token": "..."}.
type TokenResponse struct {
	Token string `json:"token"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Enabled:   user.Enabled,
		CreatedAt: user.CreatedAt,
	}
}
