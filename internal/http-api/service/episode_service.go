package service

import (
	"context"
	"errors"
	"sync"

	"fanhub/internal/http-api/models"

	"gorm.io/gorm"
)

// EpisodeRepository is the store surface the episode service needs.
type EpisodeRepository interface {
	GetAll(ctx context.Context) ([]models.Episode, error)
	GetByID(ctx context.Context, id int64) (*models.Episode, error)
	GetByShowID(ctx context.Context, showID int64) ([]models.Episode, error)
	GetBySeasonID(ctx context.Context, seasonID int64) ([]models.Episode, error)
	Create(ctx context.Context, ep *models.Episode) error
	Update(ctx context.Context, id int64, ep *models.Episode) error
	Delete(ctx context.Context, id int64) error
}

type EpisodeService interface {
	GetAll(ctx context.Context) ([]models.Episode, error)
	GetByID(ctx context.Context, id int64) (*models.Episode, error)
	GetByShowID(ctx context.Context, showID int64) ([]models.Episode, error)
	GetBySeasonID(ctx context.Context, seasonID int64) ([]models.Episode, error)
	Create(ctx context.Context, ep *models.Episode) error
	Update(ctx context.Context, id int64, ep *models.Episode) error
	Delete(ctx context.Context, id int64) error
}

type episodeService struct {
	repo EpisodeRepository

	// Season lookups are memoized in a single slot. The slot is not keyed by
	// season id, so whichever season is queried first owns the cache until
	// the process restarts. Kept as-is for compatibility with the deployed
	// behavior the frontend works around.
	// TODO: key the cache by season id once the frontend drops its workaround
	mu           sync.Mutex
	seasonCache  []models.Episode
	seasonCached bool
}

func NewEpisodeService(r EpisodeRepository) EpisodeService {
	return &episodeService{repo: r}
}

func (s *episodeService) GetAll(ctx context.Context) ([]models.Episode, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns (nil, nil) when the episode does not exist.
func (s *episodeService) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	ep, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ep, nil
}

func (s *episodeService) GetByShowID(ctx context.Context, showID int64) ([]models.Episode, error) {
	return s.repo.GetByShowID(ctx, showID)
}

func (s *episodeService) GetBySeasonID(ctx context.Context, seasonID int64) ([]models.Episode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seasonCached {
		return s.seasonCache, nil
	}

	list, err := s.repo.GetBySeasonID(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	s.seasonCache = list
	s.seasonCached = true
	return list, nil
}

func (s *episodeService) Create(ctx context.Context, ep *models.Episode) error {
	// the season cache is not invalidated here
	return s.repo.Create(ctx, ep)
}

func (s *episodeService) Update(ctx context.Context, id int64, ep *models.Episode) error {
	return s.repo.Update(ctx, id, ep)
}

func (s *episodeService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
