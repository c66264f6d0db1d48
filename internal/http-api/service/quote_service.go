package service

import (
	"context"
	"errors"
	"fmt"

	"fanhub/internal/http-api/models"

	"gorm.io/gorm"
)

// QuoteRepository is the store surface the quote service needs.
type QuoteRepository interface {
	GetAll(ctx context.Context) ([]models.Quote, error)
	GetByID(ctx context.Context, id int64) (*models.Quote, error)
	GetByCharacterID(ctx context.Context, characterID int64) ([]models.Quote, error)
	GetByShowID(ctx context.Context, showID int64) ([]models.Quote, error)
	Create(ctx context.Context, q *models.Quote) error
	Update(ctx context.Context, id int64, q *models.Quote) error
	Save(ctx context.Context, q *models.Quote) error
	Delete(ctx context.Context, id int64) error
}

type QuoteService interface {
	GetAll(ctx context.Context) ([]models.Quote, error)
	GetByID(ctx context.Context, id int64) (*models.Quote, error)
	GetByCharacterID(ctx context.Context, characterID int64) ([]models.Quote, error)
	GetByShowID(ctx context.Context, showID int64) ([]models.Quote, error)
	Create(ctx context.Context, q *models.Quote) error
	Update(ctx context.Context, id int64, q *models.Quote) error
	Delete(ctx context.Context, id int64) error
	Like(ctx context.Context, id int64) (*models.Quote, error)
}

type quoteService struct {
	repo QuoteRepository
}

func NewQuoteService(r QuoteRepository) QuoteService {
	return &quoteService{repo: r}
}

func (s *quoteService) GetAll(ctx context.Context) ([]models.Quote, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns (nil, nil) for a missing quote; the handler serializes
// that as a literal null body.
func (s *quoteService) GetByID(ctx context.Context, id int64) (*models.Quote, error) {
	q, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (s *quoteService) GetByCharacterID(ctx context.Context, characterID int64) ([]models.Quote, error) {
	return s.repo.GetByCharacterID(ctx, characterID)
}

func (s *quoteService) GetByShowID(ctx context.Context, showID int64) ([]models.Quote, error) {
	return s.repo.GetByShowID(ctx, showID)
}

func (s *quoteService) Create(ctx context.Context, q *models.Quote) error {
	return s.repo.Create(ctx, q)
}

// Update is not routed; no quote edit endpoint exists.
func (s *quoteService) Update(ctx context.Context, id int64, q *models.Quote) error {
	return s.repo.Update(ctx, id, q)
}

func (s *quoteService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Like increments likes_count by one. It fails outright on a missing quote
// and on legacy rows where likes_count is NULL.
func (s *quoteService) Like(ctx context.Context, id int64) (*models.Quote, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.LikesCount == nil {
		return nil, fmt.Errorf("quote %d has no likes count", id)
	}
	likes := *q.LikesCount + 1
	q.LikesCount = &likes
	if err := s.repo.Save(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}
