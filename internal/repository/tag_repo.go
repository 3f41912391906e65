package repository

import (
	"context"
	"errors"
	"strings"

	"mediashare/internal/domain"

	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

type tagModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:tag_name;uniqueIndex"`
}

func (tagModel) TableName() string { return "tags" }

type mediaTagLinkModel struct {
	MediaID int64 `gorm:"column:media_id;primaryKey;autoIncrement:false"`
	TagID   int64 `gorm:"column:tag_id;primaryKey;autoIncrement:false"`
}

func (mediaTagLinkModel) TableName() string { return "media_item_tags" }

// GetOrCreate finds a tag by name, creating it if absent. Names are
// normalized to lower case.
func (r *TagRepository) GetOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	var m tagModel
	err := r.db.WithContext(ctx).Where("tag_name = ?", name).First(&m).Error
	if err == nil {
		return &domain.Tag{ID: m.ID, Name: m.Name}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m = tagModel{Name: name}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &domain.Tag{ID: m.ID, Name: m.Name}, nil
}

func (r *TagRepository) ListByMedia(ctx context.Context, mediaID int64) ([]domain.Tag, error) {
	var models []tagModel
	err := r.db.WithContext(ctx).
		Joins("JOIN media_item_tags ON media_item_tags.tag_id = tags.id").
		Where("media_item_tags.media_id = ?", mediaID).
		Order("tags.tag_name").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Tag, 0, len(models))
	for _, m := range models {
		out = append(out, domain.Tag{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

func (r *TagRepository) Link(ctx context.Context, mediaID, tagID int64) error {
	link := mediaTagLinkModel{MediaID: mediaID, TagID: tagID}
	err := r.db.WithContext(ctx).Create(&link).Error
	if err != nil && isDuplicateKey(err) {
		// linking twice is a no-op
		return nil
	}
	return err
}

func (r *TagRepository) Unlink(ctx context.Context, mediaID, tagID int64) error {
	tx := r.db.WithContext(ctx).
		Where("media_id = ? AND tag_id = ?", mediaID, tagID).
		Delete(&mediaTagLinkModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "23505") ||
		strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "duplicate key value")
}
