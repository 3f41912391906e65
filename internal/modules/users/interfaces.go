package users

import (
	"context"

	"mediashare/internal/domain"
)

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Update(ctx context.Context, id int64, username, email, passwordHash string) error
	DeleteCascade(ctx context.Context, id int64) (int64, error)
}
