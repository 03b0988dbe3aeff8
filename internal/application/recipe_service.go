package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/inventolabs/recipe-catalog/internal/domain/entity"
	repo "github.com/inventolabs/recipe-catalog/internal/domain/repository"
	"github.com/inventolabs/recipe-catalog/pkg/apperr"
)

type RecipeService struct {
	Repo   repo.RecipeRepository
	Logger *logrus.Logger
}

func NewRecipeService(r repo.RecipeRepository, logger *logrus.Logger) *RecipeService {
	return &RecipeService{Repo: r, Logger: logger}
}

func (s *RecipeService) List(ctx context.Context, userID int64, filter repo.RecipeFilter) ([]entity.Recipe, error) {
	return s.Repo.List(ctx, userID, filter)
}

func (s *RecipeService) Get(ctx context.Context, userID, id int64) (*entity.Recipe, error) {
	rec, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr(err, "recipe")
	}
	return rec, nil
}

func (s *RecipeService) Create(ctx context.Context, userID int64, in repo.CreateRecipeInput) (*entity.Recipe, error) {
	if in.Title == "" {
		return nil, apperr.Validationf("title must not be empty")
	}
	if in.TimeMinutes < 0 {
		return nil, apperr.Validationf("time_minutes must not be negative")
	}
	rec, err := s.Repo.Create(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "recipe_id": rec.ID}).Debug("recipe created")
	}
	return rec, nil
}

func (s *RecipeService) Update(ctx context.Context, userID, id int64, in repo.UpdateRecipeInput) (*entity.Recipe, error) {
	if in.Title != nil && *in.Title == "" {
		return nil, apperr.Validationf("title must not be empty")
	}
	if in.TimeMinutes != nil && *in.TimeMinutes < 0 {
		return nil, apperr.Validationf("time_minutes must not be negative")
	}
	rec, err := s.Repo.Update(ctx, userID, id, in)
	if err != nil {
		return nil, mapStoreErr(err, "recipe")
	}
	return rec, nil
}

func (s *RecipeService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return mapStoreErr(err, "recipe")
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "recipe_id": id}).Debug("recipe deleted")
	}
	return nil
}
