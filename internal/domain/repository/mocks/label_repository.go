package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/inventolabs/recipe-catalog/internal/domain/entity"
)

type LabelRepository struct {
	mock.Mock
}

func (m *LabelRepository) ListForUser(ctx context.Context, userID int64) ([]entity.Label, error) {
	args := m.Called(ctx, userID)
	if ls := args.Get(0); ls != nil {
		return ls.([]entity.Label), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LabelRepository) ListAssignedOnly(ctx context.Context, userID int64) ([]entity.Label, error) {
	args := m.Called(ctx, userID)
	if ls := args.Get(0); ls != nil {
		return ls.([]entity.Label), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LabelRepository) Create(ctx context.Context, userID int64, name string) (*entity.Label, error) {
	args := m.Called(ctx, userID, name)
	if l := args.Get(0); l != nil {
		return l.(*entity.Label), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LabelRepository) GetOrCreate(ctx context.Context, userID int64, name string) (*entity.Label, error) {
	args := m.Called(ctx, userID, name)
	if l := args.Get(0); l != nil {
		return l.(*entity.Label), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LabelRepository) Update(ctx context.Context, userID, id int64, name string) (*entity.Label, error) {
	args := m.Called(ctx, userID, id, name)
	if l := args.Get(0); l != nil {
		return l.(*entity.Label), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LabelRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
