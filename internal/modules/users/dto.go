package users

import (
	"time"

	"mediashare/internal/domain"
)

type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,alphanum,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

// PublicUser is the read shape for everyone: no email, no hash.
type PublicUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

func toPublicUser(u domain.User) PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Level:     string(u.Level),
		CreatedAt: u.CreatedAt,
	}
}
