package repository

import (
	"context"
	"time"

	"mediashare/internal/domain"

	"gorm.io/gorm"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

type mediaItemModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;index"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Filename    string    `gorm:"column:filename"`
	Filesize    int64     `gorm:"column:filesize"`
	MediaType   string    `gorm:"column:media_type"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (mediaItemModel) TableName() string { return "media_items" }

func toDomainMedia(m mediaItemModel) *domain.MediaItem {
	return &domain.MediaItem{
		ID:          m.ID,
		OwnerID:     m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Filename:    m.Filename,
		Filesize:    m.Filesize,
		MediaType:   m.MediaType,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toMediaModel(item *domain.MediaItem) mediaItemModel {
	return mediaItemModel{
		ID:          item.ID,
		UserID:      item.OwnerID,
		Title:       item.Title,
		Description: item.Description,
		Filename:    item.Filename,
		Filesize:    item.Filesize,
		MediaType:   item.MediaType,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (r *MediaRepository) Create(ctx context.Context, item *domain.MediaItem) error {
	m := toMediaModel(item)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*item = *toDomainMedia(m)
	return nil
}

func (r *MediaRepository) GetByID(ctx context.Context, id int64) (*domain.MediaItem, error) {
	var m mediaItemModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainMedia(m), nil
}

func (r *MediaRepository) List(ctx context.Context, limit, offset int) ([]domain.MediaItem, error) {
	return r.list(ctx, r.db.WithContext(ctx), limit, offset)
}

func (r *MediaRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.MediaItem, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID), limit, offset)
}

func (r *MediaRepository) list(ctx context.Context, q *gorm.DB, limit, offset int) ([]domain.MediaItem, error) {
	var models []mediaItemModel
	q = q.Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.MediaItem, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainMedia(m))
	}
	return out, nil
}

// Update touches title and description only. Ownership and file columns
// are immutable after creation.
func (r *MediaRepository) Update(ctx context.Context, id int64, title, description string) error {
	tx := r.db.WithContext(ctx).Model(&mediaItemModel{}).Where("id = ?", id).Updates(map[string]any{
		"title":       title,
		"description": description,
		"updated_at":  time.Now(),
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCascade removes the media item's comments, its tag links and the
// row itself as one transaction. Returns the total number of rows
// removed; a missing media row rolls everything back.
func (r *MediaRepository) DeleteCascade(ctx context.Context, id int64) (int64, error) {
	var affected int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("media_id = ?", id).Delete(&commentModel{})
		if res.Error != nil {
			return res.Error
		}
		affected += res.RowsAffected

		res = tx.Where("media_id = ?", id).Delete(&mediaTagLinkModel{})
		if res.Error != nil {
			return res.Error
		}
		affected += res.RowsAffected

		res = tx.Delete(&mediaItemModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		affected += res.RowsAffected

		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
