package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inventolabs/recipe-catalog/internal/application"
	"github.com/inventolabs/recipe-catalog/internal/domain/entity"
	"github.com/inventolabs/recipe-catalog/internal/domain/repository"
	"github.com/inventolabs/recipe-catalog/internal/domain/repository/mocks"
	"github.com/inventolabs/recipe-catalog/pkg/apperr"
)

func TestLabelListRoutesOnAssignedOnly(t *testing.T) {
	repo := new(mocks.LabelRepository)
	svc := application.NewLabelService(repo, "tag", nil)
	ctx := context.Background()

	all := []entity.Label{{ID: 2, Name: "Veg"}, {ID: 1, Name: "Non-Veg"}}
	assigned := []entity.Label{{ID: 1, Name: "Non-Veg"}}

	repo.On("ListForUser", ctx, int64(1)).Return(all, nil).Once()
	repo.On("ListAssignedOnly", ctx, int64(1)).Return(assigned, nil).Once()

	got, err := svc.List(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	got, err = svc.List(ctx, 1, true)
	require.NoError(t, err)
	assert.Equal(t, assigned, got)

	repo.AssertExpectations(t)
}

func TestLabelCreateEmptyNameFailsValidation(t *testing.T) {
	repo := new(mocks.LabelRepository)
	svc := application.NewLabelService(repo, "tag", nil)

	_, err := svc.Create(context.Background(), 1, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestLabelCreateDuplicateConflicts(t *testing.T) {
	repo := new(mocks.LabelRepository)
	svc := application.NewLabelService(repo, "ingredient", nil)
	ctx := context.Background()

	repo.On("Create", ctx, int64(1), "Salt").Return(nil, repository.ErrConflict).Once()

	_, err := svc.Create(ctx, 1, "Salt")
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Contains(t, err.Error(), "ingredient")
}

func TestLabelUpdateUnownedIsNotFound(t *testing.T) {
	repo := new(mocks.LabelRepository)
	svc := application.NewLabelService(repo, "tag", nil)
	ctx := context.Background()

	repo.On("Update", ctx, int64(1), int64(99), "Thai").Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Update(ctx, 1, 99, "Thai")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLabelDeleteUnownedIsNotFound(t *testing.T) {
	repo := new(mocks.LabelRepository)
	svc := application.NewLabelService(repo, "tag", nil)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(1), int64(99)).Return(repository.ErrNotFound).Once()

	err := svc.Delete(ctx, 1, 99)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
