package repository

import (
	"context"
	"fmt"

	"fanhub/internal/http-api/models"

	"gorm.io/gorm"
)

type CharacterRepo struct {
	db *gorm.DB
}

func NewCharacterRepo(db *gorm.DB) *CharacterRepo {
	return &CharacterRepo{db: db}
}

func (r *CharacterRepo) GetAll(ctx context.Context) ([]models.Character, error) {
	var list []models.Character
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID returns the raw store error on a missing row; callers that want a
// soft not-found have to check for gorm.ErrRecordNotFound themselves.
func (r *CharacterRepo) GetByID(ctx context.Context, id int64) (*models.Character, error) {
	var ch models.Character
	if err := r.db.WithContext(ctx).First(&ch, id).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *CharacterRepo) GetByShowID(ctx context.Context, showID int64) ([]models.Character, error) {
	var list []models.Character
	if err := r.db.WithContext(ctx).Where("show_id = ?", showID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// SearchByName does a case-insensitive substring match on the name column.
// A blank query matches every row.
func (r *CharacterRepo) SearchByName(ctx context.Context, query string) ([]models.Character, error) {
	var list []models.Character
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", pattern).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search characters by name: %w", err)
	}
	return list, nil
}

func (r *CharacterRepo) Create(ctx context.Context, ch *models.Character) error {
	if err := r.db.WithContext(ctx).Create(ch).Error; err != nil {
		return fmt.Errorf("create character: %w", err)
	}
	return nil
}

func (r *CharacterRepo) Update(ctx context.Context, id int64, ch *models.Character) error {
	ch.ID = id
	if err := r.db.WithContext(ctx).Save(ch).Error; err != nil {
		return fmt.Errorf("update character: %w", err)
	}
	return nil
}

func (r *CharacterRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Character{}, id).Error; err != nil {
		return fmt.Errorf("delete character: %w", err)
	}
	return nil
}
