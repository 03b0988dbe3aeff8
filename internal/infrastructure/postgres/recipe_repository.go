package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inventolabs/recipe-catalog/internal/domain/entity"
	"github.com/inventolabs/recipe-catalog/internal/domain/repository"
)

// RecipeRepository owns recipe rows and the recipe_tags / recipe_ingredients
// join tables. All label resolution goes through the label repositories'
// get-or-create on the mutation's own transaction, so a recipe and its
// associations commit or roll back together.
type RecipeRepository struct {
	pool        *pgxpool.Pool
	tags        *LabelRepository
	ingredients *LabelRepository
}

func NewRecipeRepository(pool *pgxpool.Pool, tags, ingredients *LabelRepository) *RecipeRepository {
	return &RecipeRepository{pool: pool, tags: tags, ingredients: ingredients}
}

const recipeColumns = `id, user_id, title, time_minutes, price, description, link, created_at, updated_at`

func (r *RecipeRepository) List(ctx context.Context, userID int64, filter repository.RecipeFilter) ([]entity.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE user_id = $1`
	args := []any{userID}

	if len(filter.TagIDs) > 0 {
		args = append(args, filter.TagIDs)
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM recipe_tags rt WHERE rt.recipe_id = recipes.id AND rt.tag_id = ANY($%d))`, len(args))
	}
	if len(filter.IngredientIDs) > 0 {
		args = append(args, filter.IngredientIDs)
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM recipe_ingredients ri WHERE ri.recipe_id = recipes.id AND ri.ingredient_id = ANY($%d))`, len(args))
	}
	query += ` ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes, err := scanRecipes(rows)
	if err != nil {
		return nil, err
	}
	if err := r.hydrate(ctx, r.pool, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepository) Get(ctx context.Context, userID, id int64) (*entity.Recipe, error) {
	return r.get(ctx, r.pool, userID, id)
}

func (r *RecipeRepository) get(ctx context.Context, q querier, userID, id int64) (*entity.Recipe, error) {
	row := q.QueryRow(ctx, `
		SELECT `+recipeColumns+` FROM recipes WHERE id = $1 AND user_id = $2
	`, id, userID)

	rec, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	recs := []entity.Recipe{*rec}
	if err := r.hydrate(ctx, q, recs); err != nil {
		return nil, err
	}
	return &recs[0], nil
}

func (r *RecipeRepository) Create(ctx context.Context, userID int64, in repository.CreateRecipeInput) (*entity.Recipe, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	rec := &entity.Recipe{
		UserID:      userID,
		Title:       in.Title,
		TimeMinutes: in.TimeMinutes,
		Price:       in.Price,
		Description: in.Description,
		Link:        in.Link,
	}
	row := tx.QueryRow(ctx, `
		INSERT INTO recipes (user_id, title, time_minutes, price, description, link)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, userID, in.Title, in.TimeMinutes, in.Price, in.Description, in.Link)
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}

	if err := r.setLabels(ctx, tx, r.tags, rec.ID, userID, in.Tags); err != nil {
		return nil, err
	}
	if err := r.setLabels(ctx, tx, r.ingredients, rec.ID, userID, in.Ingredients); err != nil {
		return nil, err
	}

	recs := []entity.Recipe{*rec}
	if err := r.hydrate(ctx, tx, recs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &recs[0], nil
}

func (r *RecipeRepository) Update(ctx context.Context, userID, id int64, in repository.UpdateRecipeInput) (*entity.Recipe, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock the row for the duration of the patch; also the ownership check.
	row := tx.QueryRow(ctx, `
		SELECT `+recipeColumns+` FROM recipes WHERE id = $1 AND user_id = $2 FOR UPDATE
	`, id, userID)
	rec, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if in.Title != nil {
		rec.Title = *in.Title
	}
	if in.TimeMinutes != nil {
		rec.TimeMinutes = *in.TimeMinutes
	}
	if in.Price != nil {
		rec.Price = *in.Price
	}
	if in.Description != nil {
		rec.Description = *in.Description
	}
	if in.Link != nil {
		rec.Link = *in.Link
	}
	rec.UpdatedAt = time.Now()

	if _, err := tx.Exec(ctx, `
		UPDATE recipes
		SET title = $1, time_minutes = $2, price = $3, description = $4, link = $5, updated_at = $6
		WHERE id = $7
	`, rec.Title, rec.TimeMinutes, rec.Price, rec.Description, rec.Link, rec.UpdatedAt, id); err != nil {
		return nil, err
	}

	// A supplied list replaces the association set, it never merges.
	if in.Tags != nil {
		if err := r.clearLabels(ctx, tx, r.tags, id); err != nil {
			return nil, err
		}
		if err := r.setLabels(ctx, tx, r.tags, id, userID, *in.Tags); err != nil {
			return nil, err
		}
	}
	if in.Ingredients != nil {
		if err := r.clearLabels(ctx, tx, r.ingredients, id); err != nil {
			return nil, err
		}
		if err := r.setLabels(ctx, tx, r.ingredients, id, userID, *in.Ingredients); err != nil {
			return nil, err
		}
	}

	recs := []entity.Recipe{*rec}
	if err := r.hydrate(ctx, tx, recs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &recs[0], nil
}

func (r *RecipeRepository) Delete(ctx context.Context, userID, id int64) error {
	// Join rows go with the recipe (FK cascade); labels are kept.
	res, err := r.pool.Exec(ctx, `
		DELETE FROM recipes WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RecipeRepository) clearLabels(ctx context.Context, q querier, lr *LabelRepository, recipeID int64) error {
	_, err := q.Exec(ctx, `DELETE FROM `+lr.joinTable+` WHERE recipe_id = $1`, recipeID)
	return err
}

func (r *RecipeRepository) setLabels(ctx context.Context, q querier, lr *LabelRepository, recipeID, userID int64, names []string) error {
	for _, name := range names {
		l, err := lr.getOrCreate(ctx, q, userID, name)
		if err != nil {
			return err
		}
		// ON CONFLICT: the payload may repeat a name.
		if _, err := q.Exec(ctx, `
			INSERT INTO `+lr.joinTable+` (recipe_id, `+lr.joinColumn+`)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, recipeID, l.ID); err != nil {
			return err
		}
	}
	return nil
}

// hydrate fills Tags and Ingredients for the given recipes in two batch
// queries instead of one pair per recipe.
func (r *RecipeRepository) hydrate(ctx context.Context, q querier, recipes []entity.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	ids := make([]int64, len(recipes))
	index := make(map[int64]*entity.Recipe, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
		index[recipes[i].ID] = &recipes[i]
		recipes[i].Tags = []entity.Label{}
		recipes[i].Ingredients = []entity.Label{}
	}

	tags, err := loadAttached(ctx, q, r.tags, ids)
	if err != nil {
		return err
	}
	for rid, ls := range tags {
		index[rid].Tags = ls
	}

	ingredients, err := loadAttached(ctx, q, r.ingredients, ids)
	if err != nil {
		return err
	}
	for rid, ls := range ingredients {
		index[rid].Ingredients = ls
	}
	return nil
}

func loadAttached(ctx context.Context, q querier, lr *LabelRepository, recipeIDs []int64) (map[int64][]entity.Label, error) {
	rows, err := q.Query(ctx, `
		SELECT j.recipe_id, l.id, l.user_id, l.name
		FROM `+lr.joinTable+` j
		JOIN `+lr.table+` l ON l.id = j.`+lr.joinColumn+`
		WHERE j.recipe_id = ANY($1)
		ORDER BY l.name DESC, l.id DESC
	`, recipeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]entity.Label)
	for rows.Next() {
		var rid int64
		var l entity.Label
		if err := rows.Scan(&rid, &l.ID, &l.UserID, &l.Name); err != nil {
			return nil, err
		}
		out[rid] = append(out[rid], l)
	}
	return out, rows.Err()
}

func scanRecipe(row pgx.Row) (*entity.Recipe, error) {
	rec := &entity.Recipe{}
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.TimeMinutes, &rec.Price,
		&rec.Description, &rec.Link, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func scanRecipes(rows pgx.Rows) ([]entity.Recipe, error) {
	recipes := make([]entity.Recipe, 0)
	for rows.Next() {
		rec := entity.Recipe{}
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.TimeMinutes, &rec.Price,
			&rec.Description, &rec.Link, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

var _ repository.RecipeRepository = (*RecipeRepository)(nil)
