package repository

import (
	"context"
	"strings"
	"time"

	"mediashare/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Email        string    `gorm:"column:email"`
	Level        string    `gorm:"column:user_level"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Email:        m.Email,
		Level:        domain.UserLevel(m.Level),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	level := u.Level
	if level == "" {
		level = domain.LevelUser
	}

	return userModel{
		ID:           u.ID,
		Username:     strings.TrimSpace(u.Username),
		PasswordHash: u.PasswordHash,
		Email:        strings.TrimSpace(strings.ToLower(u.Email)),
		Level:        string(level),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("username = ?", strings.TrimSpace(username)).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	var models []userModel
	q := r.db.WithContext(ctx).Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

// Update writes only the caller-editable columns. The id and level are
// immutable here on purpose.
func (r *UserRepository) Update(ctx context.Context, id int64, username, email, passwordHash string) error {
	updates := map[string]any{
		"username":   strings.TrimSpace(username),
		"email":      strings.TrimSpace(strings.ToLower(email)),
		"updated_at": time.Now(),
	}
	if passwordHash != "" {
		updates["password_hash"] = passwordHash
	}

	tx := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCascade removes the user and every row that depends on them, in
// dependency order, inside one transaction: comments they authored or
// that sit on their media, tag links of their media, their media rows,
// then the user row. Returns the total number of rows removed.
//
// A second concurrent delete of the same user sees RowsAffected == 0 on
// the user row and the whole transaction reports gorm.ErrRecordNotFound.
func (r *UserRepository) DeleteCascade(ctx context.Context, id int64) (int64, error) {
	var affected int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mediaIDs []int64
		if err := tx.Model(&mediaItemModel{}).Where("user_id = ?", id).Pluck("id", &mediaIDs).Error; err != nil {
			return err
		}

		commentQ := tx.Where("user_id = ?", id)
		if len(mediaIDs) > 0 {
			commentQ = tx.Where("user_id = ? OR media_id IN ?", id, mediaIDs)
		}
		res := commentQ.Delete(&commentModel{})
		if res.Error != nil {
			return res.Error
		}
		affected += res.RowsAffected

		if len(mediaIDs) > 0 {
			res = tx.Where("media_id IN ?", mediaIDs).Delete(&mediaTagLinkModel{})
			if res.Error != nil {
				return res.Error
			}
			affected += res.RowsAffected
		}

		res = tx.Where("user_id = ?", id).Delete(&mediaItemModel{})
		if res.Error != nil {
			return res.Error
		}
		affected += res.RowsAffected

		res = tx.Delete(&userModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// rolls back the dependent deletes above
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
