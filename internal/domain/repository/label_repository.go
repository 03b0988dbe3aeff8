package repository

import (
	"context"

	"github.com/inventolabs/recipe-catalog/internal/domain/entity"
)

// LabelRepository is the store contract shared by tags and ingredients.
// Every operation is scoped to the owning user; operations on labels the
// user does not own return ErrNotFound.
type LabelRepository interface {
	// ListForUser returns the user's labels ordered by name descending
	// (id descending breaks ties for a stable order).
	ListForUser(ctx context.Context, userID int64) ([]entity.Label, error)

	// ListAssignedOnly returns only labels attached to at least one of the
	// user's recipes, deduplicated, same ordering as ListForUser.
	ListAssignedOnly(ctx context.Context, userID int64) ([]entity.Label, error)

	// Create inserts a new label; a duplicate (user, name) yields ErrConflict.
	Create(ctx context.Context, userID int64, name string) (*entity.Label, error)

	// GetOrCreate returns the label with the exact (userID, name) key,
	// creating it if absent. Safe under concurrent identical calls: exactly
	// one row results.
	GetOrCreate(ctx context.Context, userID int64, name string) (*entity.Label, error)

	Update(ctx context.Context, userID, id int64, name string) (*entity.Label, error)
	Delete(ctx context.Context, userID, id int64) error
}
