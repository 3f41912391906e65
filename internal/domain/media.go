package domain

import "time"

type MediaItem struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Filename    string    `json:"filename"`
	Filesize    int64     `json:"filesize"`
	MediaType   string    `json:"media_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MediaTagLink ties a tag to a media item. It has no lifecycle of its
// own: rows exist only while the media item exists.
type MediaTagLink struct {
	MediaID int64 `json:"media_id"`
	TagID   int64 `json:"tag_id"`
}
