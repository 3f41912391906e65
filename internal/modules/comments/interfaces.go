package comments

import (
	"context"

	"mediashare/internal/domain"
)

type CommentRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	List(ctx context.Context, limit, offset int) ([]domain.Comment, error)
	ListByMedia(ctx context.Context, mediaID int64, limit, offset int) ([]domain.Comment, error)
	ListByAuthor(ctx context.Context, userID int64, limit, offset int) ([]domain.Comment, error)
	UpdateText(ctx context.Context, id int64, text string) error
	Delete(ctx context.Context, id int64) error
}

// MediaReader is the slice of the media repository comments need: the
// delete rule has to know who owns the item a comment sits under.
type MediaReader interface {
	GetByID(ctx context.Context, id int64) (*domain.MediaItem, error)
}
