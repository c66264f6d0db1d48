package repository

import (
	"context"
	"fmt"

	"fanhub/internal/http-api/models"

	"gorm.io/gorm"
)

type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

func (r *ShowRepo) GetAll(ctx context.Context) ([]models.Show, error) {
	var list []models.Show
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ShowRepo) GetByID(ctx context.Context, id int64) (*models.Show, error) {
	var s models.Show
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShowRepo) Create(ctx context.Context, s *models.Show) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create show: %w", err)
	}
	return nil
}

// Update is a full-row save: fields missing from s fall back to their zero
// value, and a nonexistent id becomes an insert with that id.
func (r *ShowRepo) Update(ctx context.Context, id int64, s *models.Show) error {
	s.ID = id
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return fmt.Errorf("update show: %w", err)
	}
	return nil
}

func (r *ShowRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Show{}, id).Error; err != nil {
		return fmt.Errorf("delete show: %w", err)
	}
	return nil
}
