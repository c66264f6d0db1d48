package repository

import (
	"context"
	"fmt"

	"fanhub/internal/http-api/models"

	"gorm.io/gorm"
)

type EpisodeRepo struct {
	db *gorm.DB
}

func NewEpisodeRepo(db *gorm.DB) *EpisodeRepo {
	return &EpisodeRepo{db: db}
}

func (r *EpisodeRepo) GetAll(ctx context.Context) ([]models.Episode, error) {
	var list []models.Episode
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *EpisodeRepo) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	var ep models.Episode
	if err := r.db.WithContext(ctx).First(&ep, id).Error; err != nil {
		return nil, err
	}
	return &ep, nil
}

func (r *EpisodeRepo) GetByShowID(ctx context.Context, showID int64) ([]models.Episode, error) {
	var list []models.Episode
	if err := r.db.WithContext(ctx).Where("show_id = ?", showID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *EpisodeRepo) GetBySeasonID(ctx context.Context, seasonID int64) ([]models.Episode, error) {
	var list []models.Episode
	if err := r.db.WithContext(ctx).Where("season_id = ?", seasonID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *EpisodeRepo) Create(ctx context.Context, ep *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(ep).Error; err != nil {
		return fmt.Errorf("create episode: %w", err)
	}
	return nil
}

func (r *EpisodeRepo) Update(ctx context.Context, id int64, ep *models.Episode) error {
	ep.ID = id
	if err := r.db.WithContext(ctx).Save(ep).Error; err != nil {
		return fmt.Errorf("update episode: %w", err)
	}
	return nil
}

func (r *EpisodeRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Episode{}, id).Error; err != nil {
		return fmt.Errorf("delete episode: %w", err)
	}
	return nil
}
