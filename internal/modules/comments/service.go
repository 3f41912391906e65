package comments

import (
	"context"
	"errors"
	"log"

	"mediashare/internal/authz"
	"mediashare/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrMediaGone marks a comment whose media item vanished between
// lookup and the ownership check. Treated as not found by handlers.
var ErrMediaGone = errors.New("comments: media item no longer exists")

type Service struct {
	comments CommentRepositoryInterface
	media    MediaReader
}

func NewService(comments CommentRepositoryInterface, media MediaReader) *Service {
	return &Service{comments: comments, media: media}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Comment, error) {
	list, err := s.comments.List(ctx, limit, offset)
	if err != nil {
		return nil, s.storeErr("list", err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, s.storeErr("get", err)
	}
	return c, nil
}

func (s *Service) ListByMedia(ctx context.Context, mediaID int64, limit, offset int) ([]domain.Comment, error) {
	if _, err := s.media.GetByID(ctx, mediaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, s.storeErr("list by media", err)
	}

	list, err := s.comments.ListByMedia(ctx, mediaID, limit, offset)
	if err != nil {
		return nil, s.storeErr("list by media", err)
	}
	return list, nil
}

func (s *Service) ListByAuthor(ctx context.Context, userID int64, limit, offset int) ([]domain.Comment, error) {
	list, err := s.comments.ListByAuthor(ctx, userID, limit, offset)
	if err != nil {
		return nil, s.storeErr("list by author", err)
	}
	return list, nil
}

// Create checks the target media exists before inserting so the caller
// gets a 404 instead of a bare constraint error.
func (s *Service) Create(ctx context.Context, authorID int64, req CreateCommentRequest) (*domain.Comment, error) {
	if _, err := s.media.GetByID(ctx, req.MediaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, s.storeErr("create", err)
	}

	c := &domain.Comment{
		AuthorID: authorID,
		MediaID:  req.MediaID,
		Text:     req.Text,
	}

	if err := s.comments.Create(ctx, c); err != nil {
		// media deleted between the existence check and the insert
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, s.storeErr("create", err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, actorID, id int64, req UpdateCommentRequest) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if d := authz.Authorize(actorID, authz.ActionUpdate, authz.Comment{ID: c.ID, AuthorID: c.AuthorID}); !d.Allowed {
		return domain.ErrForbidden
	}

	if err := s.comments.UpdateText(ctx, id, req.Text); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return s.storeErr("update", err)
	}
	return nil
}

// Delete is allowed for the comment's author and for the owner of the
// media the comment sits under.
func (s *Service) Delete(ctx context.Context, actorID, id int64) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	item, err := s.media.GetByID(ctx, c.MediaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMediaGone
		}
		return s.storeErr("delete", err)
	}

	res := authz.Comment{ID: c.ID, AuthorID: c.AuthorID, MediaOwnerID: item.OwnerID}
	if d := authz.Authorize(actorID, authz.ActionDelete, res); !d.Allowed {
		return domain.ErrForbidden
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return s.storeErr("delete", err)
	}
	return nil
}

func (s *Service) storeErr(op string, err error) error {
	log.Printf("comments: %s: %v", op, err)
	return domain.ErrStoreUnavailable
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
