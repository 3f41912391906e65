package repository

import (
	"context"
	"time"

	"mediashare/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

type commentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	MediaID   int64     `gorm:"column:media_id;index"`
	Text      string    `gorm:"column:comment_text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (commentModel) TableName() string { return "comments" }

func toDomainComment(m commentModel) *domain.Comment {
	return &domain.Comment{
		ID:        m.ID,
		AuthorID:  m.UserID,
		MediaID:   m.MediaID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	m := commentModel{
		UserID:  c.AuthorID,
		MediaID: c.MediaID,
		Text:    c.Text,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainComment(m)
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var m commentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainComment(m), nil
}

func (r *CommentRepository) List(ctx context.Context, limit, offset int) ([]domain.Comment, error) {
	return r.list(ctx, r.db.WithContext(ctx), limit, offset)
}

func (r *CommentRepository) ListByMedia(ctx context.Context, mediaID int64, limit, offset int) ([]domain.Comment, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("media_id = ?", mediaID), limit, offset)
}

func (r *CommentRepository) ListByAuthor(ctx context.Context, userID int64, limit, offset int) ([]domain.Comment, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID), limit, offset)
}

func (r *CommentRepository) list(ctx context.Context, q *gorm.DB, limit, offset int) ([]domain.Comment, error) {
	var models []commentModel
	q = q.Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Comment, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainComment(m))
	}
	return out, nil
}

func (r *CommentRepository) UpdateText(ctx context.Context, id int64, text string) error {
	tx := r.db.WithContext(ctx).Model(&commentModel{}).Where("id = ?", id).Updates(map[string]any{
		"comment_text": text,
		"updated_at":   time.Now(),
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&commentModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
