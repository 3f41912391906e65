package users

import (
	"context"
	"errors"
	"log"

	"mediashare/internal/authz"
	"mediashare/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	list, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, s.storeErr("list", err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, s.storeErr("get", err)
	}
	return user, nil
}

// Update lets a user change their own username, email and password.
// Resolution happens before the ownership check so a missing target is
// reported as not found, never as forbidden.
func (s *Service) Update(ctx context.Context, actorID, id int64, req UpdateUserRequest) error {
	target, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if d := authz.Authorize(actorID, authz.ActionUpdate, authz.User{ID: target.ID}); !d.Allowed {
		return domain.ErrForbidden
	}

	var hash string
	if req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hash = string(h)
	}

	if err := s.users.Update(ctx, id, req.Username, req.Email, hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return s.storeErr("update", err)
	}
	return nil
}

// Delete removes the user and cascades over their media, comments and
// tag links. Only the user themselves may do this.
func (s *Service) Delete(ctx context.Context, actorID, id int64) (int64, error) {
	target, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	if d := authz.Authorize(actorID, authz.ActionDelete, authz.User{ID: target.ID}); !d.Allowed {
		return 0, domain.ErrForbidden
	}

	affected, err := s.users.DeleteCascade(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// lost the race with a concurrent delete
			return 0, domain.ErrNotFound
		}
		return 0, s.storeErr("delete cascade", err)
	}
	return affected, nil
}

func (s *Service) storeErr(op string, err error) error {
	log.Printf("users: %s: %v", op, err)
	return domain.ErrStoreUnavailable
}
