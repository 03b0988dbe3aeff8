package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/inventolabs/recipe-catalog/internal/domain/entity"
	"github.com/inventolabs/recipe-catalog/internal/domain/repository"
)

type RecipeRepository struct {
	mock.Mock
}

func (m *RecipeRepository) List(ctx context.Context, userID int64, filter repository.RecipeFilter) ([]entity.Recipe, error) {
	args := m.Called(ctx, userID, filter)
	if rs := args.Get(0); rs != nil {
		return rs.([]entity.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RecipeRepository) Get(ctx context.Context, userID, id int64) (*entity.Recipe, error) {
	args := m.Called(ctx, userID, id)
	if r := args.Get(0); r != nil {
		return r.(*entity.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RecipeRepository) Create(ctx context.Context, userID int64, in repository.CreateRecipeInput) (*entity.Recipe, error) {
	args := m.Called(ctx, userID, in)
	if r := args.Get(0); r != nil {
		return r.(*entity.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RecipeRepository) Update(ctx context.Context, userID, id int64, in repository.UpdateRecipeInput) (*entity.Recipe, error) {
	args := m.Called(ctx, userID, id, in)
	if r := args.Get(0); r != nil {
		return r.(*entity.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RecipeRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
