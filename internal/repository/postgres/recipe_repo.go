package postgres

import (
	"context"
	"fmt"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recipeRepo struct {
	db *pgxpool.Pool
}

func NewRecipeRepository(db *pgxpool.Pool) domain.RecipeRepository {
	return &recipeRepo{db: db}
}

const recipeColumns = `id, recipe_name, recipe_choice, recipe_method, prep_time_in_min, created_by, created_at, updated_at`

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var (
		rec      domain.Recipe
		category string
	)
	err := row.Scan(&rec.ID, &rec.Name, &category, &rec.Method, &rec.PrepTimeInMin, &rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rec.Category = domain.RecipeCategory(category)
	return &rec, nil
}

func (r *recipeRepo) Create(ctx context.Context, rec *domain.Recipe) error {
	query := `INSERT INTO recipes (recipe_name, recipe_choice, recipe_method, prep_time_in_min, created_by, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		rec.Name, string(rec.Category), rec.Method, rec.PrepTimeInMin, rec.CreatedBy, rec.CreatedAt, rec.UpdatedAt,
	).Scan(&rec.ID)
	return mapError(err, "create recipe")
}

func (r *recipeRepo) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	rec, err := scanRecipe(r.db.QueryRow(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "get recipe")
	}
	return rec, nil
}

func (r *recipeRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError(err, "fetch recipes")
	}
	defer rows.Close()

	recipes := make([]domain.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, mapError(err, "scan recipe")
		}
		recipes = append(recipes, *rec)
	}
	return recipes, mapError(rows.Err(), "fetch recipes")
}

func (r *recipeRepo) Update(ctx context.Context, rec *domain.Recipe) error {
	query := `UPDATE recipes
              SET recipe_name = $2, recipe_choice = $3, recipe_method = $4, prep_time_in_min = $5, updated_at = $6
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, rec.ID, rec.Name, string(rec.Category), rec.Method, rec.PrepTimeInMin, rec.UpdatedAt)
	if err != nil {
		return mapError(err, "update recipe")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update recipe %d: %w", rec.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *recipeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete recipe")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete recipe %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
