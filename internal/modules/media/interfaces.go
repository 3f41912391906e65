package media

import (
	"context"

	"mediashare/internal/domain"
)

type MediaRepositoryInterface interface {
	Create(ctx context.Context, item *domain.MediaItem) error
	GetByID(ctx context.Context, id int64) (*domain.MediaItem, error)
	List(ctx context.Context, limit, offset int) ([]domain.MediaItem, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.MediaItem, error)
	Update(ctx context.Context, id int64, title, description string) error
	DeleteCascade(ctx context.Context, id int64) (int64, error)
}

type TagRepositoryInterface interface {
	GetOrCreate(ctx context.Context, name string) (*domain.Tag, error)
	ListByMedia(ctx context.Context, mediaID int64) ([]domain.Tag, error)
	Link(ctx context.Context, mediaID, tagID int64) error
	Unlink(ctx context.Context, mediaID, tagID int64) error
}
