package service

import (
	"context"
	"errors"
	"testing"

	"fanhub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockEpisodeRepo mocks the EpisodeRepository interface
type MockEpisodeRepo struct {
	mock.Mock
}

func (m *MockEpisodeRepo) GetAll(ctx context.Context) ([]models.Episode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *MockEpisodeRepo) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *MockEpisodeRepo) GetByShowID(ctx context.Context, showID int64) ([]models.Episode, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *MockEpisodeRepo) GetBySeasonID(ctx context.Context, seasonID int64) ([]models.Episode, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *MockEpisodeRepo) Create(ctx context.Context, ep *models.Episode) error {
	args := m.Called(ctx, ep)
	return args.Error(0)
}

func (m *MockEpisodeRepo) Update(ctx context.Context, id int64, ep *models.Episode) error {
	args := m.Called(ctx, id, ep)
	return args.Error(0)
}

func (m *MockEpisodeRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestGetBySeasonID_FirstSeasonOwnsTheCache(t *testing.T) {
	repo := new(MockEpisodeRepo)
	svc := NewEpisodeService(repo)
	ctx := context.Background()

	season1 := []models.Episode{
		{ID: 1, SeasonID: 1, EpisodeNumber: 1, Title: "Pilot"},
		{ID: 2, SeasonID: 1, EpisodeNumber: 2, Title: "Cat's in the Bag..."},
	}

	// only the first call may reach the store
	repo.On("GetBySeasonID", ctx, int64(1)).Return(season1, nil).Once()

	first, err := svc.GetBySeasonID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, season1, first)

	// a different season id still returns season 1's rows
	second, err := svc.GetBySeasonID(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, season1, second)

	// and so does asking for season 1 again
	third, err := svc.GetBySeasonID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, season1, third)

	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "GetBySeasonID", 1)
}

func TestGetBySeasonID_ErrorDoesNotPopulateCache(t *testing.T) {
	repo := new(MockEpisodeRepo)
	svc := NewEpisodeService(repo)
	ctx := context.Background()

	storeErr := errors.New("connection reset")
	repo.On("GetBySeasonID", ctx, int64(3)).Return(nil, storeErr).Once()

	_, err := svc.GetBySeasonID(ctx, 3)
	assert.ErrorIs(t, err, storeErr)

	// next call goes back to the store
	season3 := []models.Episode{{ID: 9, SeasonID: 3, EpisodeNumber: 1}}
	repo.On("GetBySeasonID", ctx, int64(3)).Return(season3, nil).Once()

	list, err := svc.GetBySeasonID(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, season3, list)

	repo.AssertExpectations(t)
}

func TestEpisodeGetByID_MissingRowIsNilNil(t *testing.T) {
	repo := new(MockEpisodeRepo)
	svc := NewEpisodeService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	ep, err := svc.GetByID(ctx, 42)
	assert.NoError(t, err)
	assert.Nil(t, ep)

	repo.AssertExpectations(t)
}

func TestEpisodeCreate_DoesNotInvalidateSeasonCache(t *testing.T) {
	repo := new(MockEpisodeRepo)
	svc := NewEpisodeService(repo)
	ctx := context.Background()

	season1 := []models.Episode{{ID: 1, SeasonID: 1, EpisodeNumber: 1}}
	repo.On("GetBySeasonID", ctx, int64(1)).Return(season1, nil).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*models.Episode")).Return(nil)

	_, err := svc.GetBySeasonID(ctx, 1)
	assert.NoError(t, err)

	err = svc.Create(ctx, &models.Episode{SeasonID: 1, EpisodeNumber: 2})
	assert.NoError(t, err)

	// the slot still holds the pre-create result
	list, err := svc.GetBySeasonID(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	repo.AssertExpectations(t)
}
