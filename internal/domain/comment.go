package domain

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"user_id"`
	MediaID   int64     `json:"media_id"`
	Text      string    `json:"comment_text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
