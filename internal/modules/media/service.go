package media

import (
	"context"
	"errors"
	"log"

	"mediashare/internal/authz"
	"mediashare/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	media MediaRepositoryInterface
	tags  TagRepositoryInterface
}

func NewService(media MediaRepositoryInterface, tags TagRepositoryInterface) *Service {
	return &Service{media: media, tags: tags}
}

func (s *Service) List(ctx context.Context, userID int64, limit, offset int) ([]domain.MediaItem, error) {
	var (
		list []domain.MediaItem
		err  error
	)
	if userID > 0 {
		list, err = s.media.ListByUser(ctx, userID, limit, offset)
	} else {
		list, err = s.media.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, s.storeErr("list", err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.MediaItem, error) {
	item, err := s.media.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, s.storeErr("get", err)
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateMediaRequest, up Upload) (*domain.MediaItem, error) {
	item := &domain.MediaItem{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Filename:    up.Filename,
		Filesize:    up.Size,
		MediaType:   up.MimeType,
	}

	if err := s.media.Create(ctx, item); err != nil {
		return nil, s.storeErr("create", err)
	}
	return item, nil
}

// Update changes title and description. The owner id never comes from
// the request; it is read from the stored row and checked against the
// actor.
func (s *Service) Update(ctx context.Context, actorID, id int64, req UpdateMediaRequest) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if d := authz.Authorize(actorID, authz.ActionUpdate, authz.MediaItem{ID: item.ID, OwnerID: item.OwnerID}); !d.Allowed {
		return domain.ErrForbidden
	}

	if err := s.media.Update(ctx, id, req.Title, req.Description); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return s.storeErr("update", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, actorID, id int64) (int64, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	if d := authz.Authorize(actorID, authz.ActionDelete, authz.MediaItem{ID: item.ID, OwnerID: item.OwnerID}); !d.Allowed {
		return 0, domain.ErrForbidden
	}

	affected, err := s.media.DeleteCascade(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, s.storeErr("delete cascade", err)
	}
	return affected, nil
}

func (s *Service) ListTags(ctx context.Context, mediaID int64) ([]domain.Tag, error) {
	if _, err := s.Get(ctx, mediaID); err != nil {
		return nil, err
	}

	tags, err := s.tags.ListByMedia(ctx, mediaID)
	if err != nil {
		return nil, s.storeErr("list tags", err)
	}
	return tags, nil
}

func (s *Service) AddTag(ctx context.Context, actorID, mediaID int64, name string) (*domain.Tag, error) {
	item, err := s.Get(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	if d := authz.Authorize(actorID, authz.ActionUpdate, authz.MediaItem{ID: item.ID, OwnerID: item.OwnerID}); !d.Allowed {
		return nil, domain.ErrForbidden
	}

	tag, err := s.tags.GetOrCreate(ctx, name)
	if err != nil {
		return nil, s.storeErr("get or create tag", err)
	}
	if err := s.tags.Link(ctx, mediaID, tag.ID); err != nil {
		return nil, s.storeErr("link tag", err)
	}
	return tag, nil
}

func (s *Service) RemoveTag(ctx context.Context, actorID, mediaID, tagID int64) error {
	item, err := s.Get(ctx, mediaID)
	if err != nil {
		return err
	}

	if d := authz.Authorize(actorID, authz.ActionUpdate, authz.MediaItem{ID: item.ID, OwnerID: item.OwnerID}); !d.Allowed {
		return domain.ErrForbidden
	}

	if err := s.tags.Unlink(ctx, mediaID, tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return s.storeErr("unlink tag", err)
	}
	return nil
}

func (s *Service) storeErr(op string, err error) error {
	log.Printf("media: %s: %v", op, err)
	return domain.ErrStoreUnavailable
}
