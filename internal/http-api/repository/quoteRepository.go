package repository

import (
	"context"
	"fmt"

	"fanhub/internal/http-api/models"

	"gorm.io/gorm"
)

type QuoteRepo struct {
	db *gorm.DB
}

func NewQuoteRepo(db *gorm.DB) *QuoteRepo {
	return &QuoteRepo{db: db}
}

func (r *QuoteRepo) GetAll(ctx context.Context) ([]models.Quote, error) {
	var list []models.Quote
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *QuoteRepo) GetByID(ctx context.Context, id int64) (*models.Quote, error) {
	var q models.Quote
	if err := r.db.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuoteRepo) GetByCharacterID(ctx context.Context, characterID int64) ([]models.Quote, error) {
	var list []models.Quote
	if err := r.db.WithContext(ctx).Where("character_id = ?", characterID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *QuoteRepo) GetByShowID(ctx context.Context, showID int64) ([]models.Quote, error) {
	var list []models.Quote
	if err := r.db.WithContext(ctx).Where("show_id = ?", showID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *QuoteRepo) Create(ctx context.Context, q *models.Quote) error {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		return fmt.Errorf("create quote: %w", err)
	}
	return nil
}

func (r *QuoteRepo) Update(ctx context.Context, id int64, q *models.Quote) error {
	q.ID = id
	if err := r.db.WithContext(ctx).Save(q).Error; err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// Save persists the quote as-is, keeping its current id. Used by the like
// path after mutating likes_count in memory.
func (r *QuoteRepo) Save(ctx context.Context, q *models.Quote) error {
	if err := r.db.WithContext(ctx).Save(q).Error; err != nil {
		return fmt.Errorf("save quote: %w", err)
	}
	return nil
}

func (r *QuoteRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Quote{}, id).Error; err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}
