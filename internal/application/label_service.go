package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inventolabs/recipe-catalog/internal/domain/entity"
	repo "github.com/inventolabs/recipe-catalog/internal/domain/repository"
	"github.com/inventolabs/recipe-catalog/pkg/apperr"
)

// LabelService fronts one label store (tags or ingredients). Kind names the
// resource in logs and error messages.
type LabelService struct {
	Repo   repo.LabelRepository
	Kind   string
	Logger *logrus.Logger
}

func NewLabelService(r repo.LabelRepository, kind string, logger *logrus.Logger) *LabelService {
	return &LabelService{Repo: r, Kind: kind, Logger: logger}
}

// List returns the user's labels; assignedOnly restricts the result to
// labels attached to at least one of the user's recipes.
func (s *LabelService) List(ctx context.Context, userID int64, assignedOnly bool) ([]entity.Label, error) {
	if assignedOnly {
		return s.Repo.ListAssignedOnly(ctx, userID)
	}
	return s.Repo.ListForUser(ctx, userID)
}

func (s *LabelService) Create(ctx context.Context, userID int64, name string) (*entity.Label, error) {
	if name == "" {
		return nil, apperr.Validationf("name must not be empty")
	}
	l, err := s.Repo.Create(ctx, userID, name)
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, fmt.Errorf("%w: %s %q already exists", apperr.ErrConflict, s.Kind, name)
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, s.Kind + "_id": l.ID}).Debug(s.Kind + " created")
	}
	return l, nil
}

func (s *LabelService) Update(ctx context.Context, userID, id int64, name string) (*entity.Label, error) {
	if name == "" {
		return nil, apperr.Validationf("name must not be empty")
	}
	l, err := s.Repo.Update(ctx, userID, id, name)
	if err != nil {
		return nil, mapStoreErr(err, s.Kind)
	}
	return l, nil
}

func (s *LabelService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return mapStoreErr(err, s.Kind)
	}
	return nil
}

// mapStoreErr translates repository sentinels into the API taxonomy.
func mapStoreErr(err error, kind string) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return fmt.Errorf("%w: %s", apperr.ErrNotFound, kind)
	case errors.Is(err, repo.ErrConflict):
		return fmt.Errorf("%w: %s", apperr.ErrConflict, kind)
	default:
		return err
	}
}
