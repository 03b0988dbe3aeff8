package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inventolabs/recipe-catalog/internal/domain/entity"
	"github.com/inventolabs/recipe-catalog/internal/domain/repository"
)

// LabelRepository serves both tags and ingredients; the two stores have
// identical rules and differ only in table names. The UNIQUE (user_id, name)
// constraint makes GetOrCreate race-free without retries.
type LabelRepository struct {
	pool       *pgxpool.Pool
	table      string
	joinTable  string
	joinColumn string
}

func NewTagRepository(pool *pgxpool.Pool) *LabelRepository {
	return &LabelRepository{pool: pool, table: "tags", joinTable: "recipe_tags", joinColumn: "tag_id"}
}

func NewIngredientRepository(pool *pgxpool.Pool) *LabelRepository {
	return &LabelRepository{pool: pool, table: "ingredients", joinTable: "recipe_ingredients", joinColumn: "ingredient_id"}
}

func (r *LabelRepository) ListForUser(ctx context.Context, userID int64) ([]entity.Label, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name
		FROM `+r.table+`
		WHERE user_id = $1
		ORDER BY name DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLabels(rows)
}

func (r *LabelRepository) ListAssignedOnly(ctx context.Context, userID int64) ([]entity.Label, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT l.id, l.user_id, l.name
		FROM `+r.table+` l
		JOIN `+r.joinTable+` j ON j.`+r.joinColumn+` = l.id
		WHERE l.user_id = $1
		ORDER BY l.name DESC, l.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLabels(rows)
}

func (r *LabelRepository) Create(ctx context.Context, userID int64, name string) (*entity.Label, error) {
	l := &entity.Label{UserID: userID, Name: name}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO `+r.table+` (user_id, name)
		VALUES ($1, $2)
		RETURNING id
	`, userID, name).Scan(&l.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrConflict
		}
		return nil, err
	}
	return l, nil
}

func (r *LabelRepository) GetOrCreate(ctx context.Context, userID int64, name string) (*entity.Label, error) {
	return r.getOrCreate(ctx, r.pool, userID, name)
}

// getOrCreate runs on the caller's querier so recipe mutations can resolve
// labels inside their own transaction. A concurrent identical insert blocks
// on the unique constraint until the winner commits, after which the insert
// becomes a no-op and the re-select finds the committed row.
func (r *LabelRepository) getOrCreate(ctx context.Context, q querier, userID int64, name string) (*entity.Label, error) {
	l := &entity.Label{UserID: userID, Name: name}
	err := q.QueryRow(ctx, `
		INSERT INTO `+r.table+` (user_id, name)
		VALUES ($1, $2)
		ON CONFLICT (user_id, name) DO NOTHING
		RETURNING id
	`, userID, name).Scan(&l.ID)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// Conflict: the row already exists, exact case-sensitive match.
	err = q.QueryRow(ctx, `
		SELECT id FROM `+r.table+` WHERE user_id = $1 AND name = $2
	`, userID, name).Scan(&l.ID)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LabelRepository) Update(ctx context.Context, userID, id int64, name string) (*entity.Label, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE `+r.table+` SET name = $1 WHERE id = $2 AND user_id = $3
	`, name, id, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrConflict
		}
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return &entity.Label{ID: id, UserID: userID, Name: name}, nil
}

func (r *LabelRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM `+r.table+` WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanLabels(rows pgx.Rows) ([]entity.Label, error) {
	labels := make([]entity.Label, 0)
	for rows.Next() {
		var l entity.Label
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name); err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

var _ repository.LabelRepository = (*LabelRepository)(nil)
