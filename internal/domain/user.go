package domain

import "time"

type UserLevel string

const (
	LevelUser      UserLevel = "user"
	LevelModerator UserLevel = "moderator"
	LevelAdmin     UserLevel = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email,omitempty"`
	Level        UserLevel `json:"level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
