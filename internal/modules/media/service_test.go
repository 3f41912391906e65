package media

import (
	"context"
	"testing"

	"mediashare/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(ctx context.Context, item *domain.MediaItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMediaRepository) GetByID(ctx context.Context, id int64) (*domain.MediaItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MediaItem), args.Error(1)
}

func (m *MockMediaRepository) List(ctx context.Context, limit, offset int) ([]domain.MediaItem, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *MockMediaRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.MediaItem, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *MockMediaRepository) Update(ctx context.Context, id int64, title, description string) error {
	args := m.Called(ctx, id, title, description)
	return args.Error(0)
}

func (m *MockMediaRepository) DeleteCascade(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) GetOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) ListByMedia(ctx context.Context, mediaID int64) ([]domain.Tag, error) {
	args := m.Called(ctx, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagRepository) Link(ctx context.Context, mediaID, tagID int64) error {
	args := m.Called(ctx, mediaID, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) Unlink(ctx context.Context, mediaID, tagID int64) error {
	args := m.Called(ctx, mediaID, tagID)
	return args.Error(0)
}

func aliceItem() *domain.MediaItem {
	return &domain.MediaItem{ID: 10, OwnerID: 1, Title: "Sunset", Filename: "abc.jpg"}
}

func TestService_Create_SetsOwnerFromActor(t *testing.T) {
	mockMedia := new(MockMediaRepository)
	mockMedia.On("Create", mock.Anything, mock.MatchedBy(func(item *domain.MediaItem) bool {
		return item.OwnerID == 1 && item.Title == "Sunset" && item.Filename == "abc.jpg"
	})).Return(nil)

	service := NewService(mockMedia, new(MockTagRepository))

	item, err := service.Create(context.Background(), 1, CreateMediaRequest{Title: "Sunset"}, Upload{
		Filename: "abc.jpg",
		Size:     1024,
		MimeType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.OwnerID)
}

func TestService_Update_OwnerAllowed(t *testing.T) {
	mockMedia := new(MockMediaRepository)
	mockMedia.On("GetByID", mock.Anything, int64(10)).Return(aliceItem(), nil)
	mockMedia.On("Update", mock.Anything, int64(10), "Dusk", "warmer").Return(nil)

	service := NewService(mockMedia, new(MockTagRepository))

	err := service.Update(context.Background(), 1, 10, UpdateMediaRequest{Title: "Dusk", Description: "warmer"})
	assert.NoError(t, err)
}

func TestService_Update_NonOwnerForbidden(t *testing.T) {
	mockMedia := new(MockMediaRepository)
	mockMedia.On("GetByID", mock.Anything, int64(10)).Return(aliceItem(), nil)

	service := NewService(mockMedia, new(MockTagRepository))

	err := service.Update(context.Background(), 2, 10, UpdateMediaRequest{Title: "Stolen"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	mockMedia.AssertNotCalled(t, "Update")
}

func TestService_Update_MissingItemIsNotFound(t *testing.T) {
	mockMedia := new(MockMediaRepository)
	mockMedia.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockMedia, new(MockTagRepository))

	err := service.Update(context.Background(), 2, 99, UpdateMediaRequest{Title: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Delete_OwnerCascades(t *testing.T) {
	mockMedia := new(MockMediaRepository)
	mockMedia.On("GetByID", mock.Anything, int64(10)).Return(aliceItem(), nil)
	mockMedia.On("DeleteCascade", mock.Anything, int64(10)).Return(int64(5), nil)

	service := NewService(mockMedia, new(MockTagRepository))

	affected, err := service.Delete(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), affected)
}

func TestService_Delete_NonOwnerForbidden(t *testing.T) {
	mockMedia := new(MockMediaRepository)
	mockMedia.On("GetByID", mock.Anything, int64(10)).Return(aliceItem(), nil)

	service := NewService(mockMedia, new(MockTagRepository))

	_, err := service.Delete(context.Background(), 2, 10)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	mockMedia.AssertNotCalled(t, "DeleteCascade")
}

func TestService_Delete_RaceReportsNotFound(t *testing.T) {
	mockMedia := new(MockMediaRepository)
	mockMedia.On("GetByID", mock.Anything, int64(10)).Return(aliceItem(), nil)
	mockMedia.On("DeleteCascade", mock.Anything, int64(10)).Return(int64(0), gorm.ErrRecordNotFound)

	service := NewService(mockMedia, new(MockTagRepository))

	_, err := service.Delete(context.Background(), 1, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_AddTag_OwnerLinks(t *testing.T) {
	mockMedia := new(MockMediaRepository)
	mockMedia.On("GetByID", mock.Anything, int64(10)).Return(aliceItem(), nil)

	mockTags := new(MockTagRepository)
	mockTags.On("GetOrCreate", mock.Anything, "nature").Return(&domain.Tag{ID: 3, Name: "nature"}, nil)
	mockTags.On("Link", mock.Anything, int64(10), int64(3)).Return(nil)

	service := NewService(mockMedia, mockTags)

	tag, err := service.AddTag(context.Background(), 1, 10, "nature")
	require.NoError(t, err)
	assert.Equal(t, int64(3), tag.ID)
}

func TestService_AddTag_NonOwnerForbidden(t *testing.T) {
	mockMedia := new(MockMediaRepository)
	mockMedia.On("GetByID", mock.Anything, int64(10)).Return(aliceItem(), nil)

	mockTags := new(MockTagRepository)

	service := NewService(mockMedia, mockTags)

	_, err := service.AddTag(context.Background(), 2, 10, "nature")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	mockTags.AssertNotCalled(t, "GetOrCreate")
}

func TestService_RemoveTag_MissingLinkIsNotFound(t *testing.T) {
	mockMedia := new(MockMediaRepository)
	mockMedia.On("GetByID", mock.Anything, int64(10)).Return(aliceItem(), nil)

	mockTags := new(MockTagRepository)
	mockTags.On("Unlink", mock.Anything, int64(10), int64(3)).Return(gorm.ErrRecordNotFound)

	service := NewService(mockMedia, mockTags)

	err := service.RemoveTag(context.Background(), 1, 10, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
