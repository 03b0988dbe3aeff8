package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/inventolabs/recipe-catalog/internal/domain/entity"
)

// CreateRecipeInput carries the fields for a new recipe. Tag and ingredient
// names are resolved with get-or-create semantics inside the same
// transaction as the recipe insert.
type CreateRecipeInput struct {
	Title       string
	TimeMinutes int
	Price       decimal.Decimal
	Description string
	Link        string
	Tags        []string
	Ingredients []string
}

// UpdateRecipeInput is a partial patch: nil fields are left untouched.
// A non-nil Tags or Ingredients slice replaces the association set
// entirely (an empty slice clears it).
type UpdateRecipeInput struct {
	Title       *string
	TimeMinutes *int
	Price       *decimal.Decimal
	Description *string
	Link        *string
	Tags        *[]string
	Ingredients *[]string
}

// RecipeFilter narrows List results. IDs within one axis are OR'ed;
// both axes present means both must match (AND).
type RecipeFilter struct {
	TagIDs        []int64
	IngredientIDs []int64
}

// RecipeRepository owns recipe rows and their label associations.
type RecipeRepository interface {
	// List returns the user's recipes ordered by id descending, hydrated
	// with tags and ingredients, without duplicates even when a recipe
	// matches a filter through several labels.
	List(ctx context.Context, userID int64, filter RecipeFilter) ([]entity.Recipe, error)

	Get(ctx context.Context, userID, id int64) (*entity.Recipe, error)

	// Create persists the recipe and its associations atomically.
	Create(ctx context.Context, userID int64, in CreateRecipeInput) (*entity.Recipe, error)

	// Update applies a partial patch atomically; supplied label name lists
	// replace the current association sets.
	Update(ctx context.Context, userID, id int64, in UpdateRecipeInput) (*entity.Recipe, error)

	// Delete removes the recipe and its association rows; labels survive.
	Delete(ctx context.Context, userID, id int64) error
}
