package application_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inventolabs/recipe-catalog/internal/application"
	"github.com/inventolabs/recipe-catalog/internal/domain/entity"
	"github.com/inventolabs/recipe-catalog/internal/domain/repository"
	"github.com/inventolabs/recipe-catalog/internal/domain/repository/mocks"
	"github.com/inventolabs/recipe-catalog/pkg/apperr"
)

func sampleCreateInput() repository.CreateRecipeInput {
	return repository.CreateRecipeInput{
		Title:       "Sample recipe title",
		TimeMinutes: 22,
		Price:       decimal.RequireFromString("5.25"),
		Description: "Sample description",
		Link:        "http://example.com/recipe.pdf",
	}
}

func TestRecipeCreateValidation(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	svc := application.NewRecipeService(repo, nil)
	ctx := context.Background()

	in := sampleCreateInput()
	in.Title = ""
	_, err := svc.Create(ctx, 1, in)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	in = sampleCreateInput()
	in.TimeMinutes = -1
	_, err = svc.Create(ctx, 1, in)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecipeCreatePassesThrough(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	svc := application.NewRecipeService(repo, nil)
	ctx := context.Background()

	in := sampleCreateInput()
	in.Tags = []string{"Dinner"}
	created := &entity.Recipe{ID: 10, Title: in.Title, Price: in.Price}
	repo.On("Create", ctx, int64(1), in).Return(created, nil).Once()

	rec, err := svc.Create(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, int64(10), rec.ID)
	assert.True(t, rec.Price.Equal(decimal.RequireFromString("5.25")))
	repo.AssertExpectations(t)
}

func TestRecipeUpdateValidation(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	svc := application.NewRecipeService(repo, nil)
	ctx := context.Background()

	empty := ""
	_, err := svc.Update(ctx, 1, 10, repository.UpdateRecipeInput{Title: &empty})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	negative := -5
	_, err = svc.Update(ctx, 1, 10, repository.UpdateRecipeInput{TimeMinutes: &negative})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecipeUnownedMapsToNotFound(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	svc := application.NewRecipeService(repo, nil)
	ctx := context.Background()

	repo.On("Get", ctx, int64(2), int64(10)).Return(nil, repository.ErrNotFound)
	repo.On("Update", ctx, int64(2), int64(10), mock.Anything).Return(nil, repository.ErrNotFound)
	repo.On("Delete", ctx, int64(2), int64(10)).Return(repository.ErrNotFound)

	_, err := svc.Get(ctx, 2, 10)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Update(ctx, 2, 10, repository.UpdateRecipeInput{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = svc.Delete(ctx, 2, 10)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRecipeListForwardsFilter(t *testing.T) {
	repo := new(mocks.RecipeRepository)
	svc := application.NewRecipeService(repo, nil)
	ctx := context.Background()

	filter := repository.RecipeFilter{TagIDs: []int64{1, 2}, IngredientIDs: []int64{3}}
	repo.On("List", ctx, int64(1), filter).Return([]entity.Recipe{{ID: 5}}, nil).Once()

	recipes, err := svc.List(ctx, 1, filter)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, int64(5), recipes[0].ID)
	repo.AssertExpectations(t)
}
