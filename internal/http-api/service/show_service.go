package service

import (
	"context"
	"errors"

	"fanhub/internal/http-api/models"
	"fanhub/internal/http-api/repository"

	"gorm.io/gorm"
)

type ShowService interface {
	GetAll(ctx context.Context) ([]models.Show, error)
	GetByID(ctx context.Context, id int64) (*models.Show, error)
	Create(ctx context.Context, s *models.Show) error
	Update(ctx context.Context, id int64, s *models.Show) error
	Delete(ctx context.Context, id int64) error
}

type showService struct {
	repo *repository.ShowRepo
}

func NewShowService(r *repository.ShowRepo) ShowService {
	return &showService{repo: r}
}

func (s *showService) GetAll(ctx context.Context) ([]models.Show, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns (nil, nil) for a missing show; the handler decides how to
// report absence. Other store errors pass through.
func (s *showService) GetByID(ctx context.Context, id int64) (*models.Show, error) {
	show, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return show, nil
}

func (s *showService) Create(ctx context.Context, show *models.Show) error {
	// no title check: empty-titled shows are accepted
	return s.repo.Create(ctx, show)
}

func (s *showService) Update(ctx context.Context, id int64, show *models.Show) error {
	return s.repo.Update(ctx, id, show)
}

func (s *showService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
