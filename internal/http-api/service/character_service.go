package service

import (
	"context"

	"fanhub/internal/http-api/models"
	"fanhub/internal/http-api/repository"
)

type CharacterService interface {
	GetAll(ctx context.Context) ([]models.Character, error)
	GetByID(ctx context.Context, id int64) (*models.Character, error)
	GetByShowID(ctx context.Context, showID int64) ([]models.Character, error)
	Search(ctx context.Context, query string) ([]models.Character, error)
	Create(ctx context.Context, ch *models.Character) error
	Update(ctx context.Context, id int64, ch *models.Character) error
	Delete(ctx context.Context, id int64) error
}

type characterService struct {
	repo *repository.CharacterRepo
}

func NewCharacterService(r *repository.CharacterRepo) CharacterService {
	return &characterService{repo: r}
}

func (s *characterService) GetAll(ctx context.Context) ([]models.Character, error) {
	return s.repo.GetAll(ctx)
}

// GetByID propagates the store's not-found error as-is, unlike the show
// service. Callers see the raw failure.
func (s *characterService) GetByID(ctx context.Context, id int64) (*models.Character, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *characterService) GetByShowID(ctx context.Context, showID int64) ([]models.Character, error) {
	// no existence check on the show id; an unknown id just filters to nothing
	return s.repo.GetByShowID(ctx, showID)
}

func (s *characterService) Search(ctx context.Context, query string) ([]models.Character, error) {
	// the query goes to the store unguarded; a blank string matches all rows
	return s.repo.SearchByName(ctx, query)
}

func (s *characterService) Create(ctx context.Context, ch *models.Character) error {
	// duplicates are allowed, even two characters with the same name and show
	return s.repo.Create(ctx, ch)
}

func (s *characterService) Update(ctx context.Context, id int64, ch *models.Character) error {
	return s.repo.Update(ctx, id, ch)
}

func (s *characterService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
