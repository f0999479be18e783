package repository

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/model"
	"github.com/pkg/errors"
)

type CategoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	categories, err := collectRows[model.Category](ctx, r.db, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (model.Category, error) {
	category, err := collectOne[model.Category](ctx, r.db,
		`SELECT id, name FROM categories WHERE id = $1`, id)
	if err != nil {
		return model.Category{}, errors.Wrap(err, "table:categories")
	}
	return category, nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id)
	return found, errors.Wrap(err, "category exists")
}

func (r *CategoryRepository) NameExists(ctx context.Context, name string) (bool, error) {
	found, err := exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE upper(btrim(name)) = upper(btrim($1)))`, name)
	return found, errors.Wrap(err, "category name exists")
}

// GetPokemonByCategoryID lists the pokemon linked to a category.
func (r *CategoryRepository) GetPokemonByCategoryID(ctx context.Context, categoryID int64) ([]model.Pokemon, error) {
	pokemon, err := collectRows[model.Pokemon](ctx, r.db, `
		SELECT p.id, p.name, p.birth_date
		FROM pokemon p
		JOIN pokemon_categories pc ON pc.pokemon_id = p.id
		WHERE pc.category_id = $1`, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "list pokemon by category")
	}
	return pokemon, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, c.Name)
	if err != nil {
		return model.Category{}, errors.Wrap(err, "insert category")
	}
	c.ID = id
	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c model.Category) error {
	err := execSaved(ctx, r.db, `UPDATE categories SET name = $1 WHERE id = $2`, c.Name, c.ID)
	return errors.Wrap(err, "update category")
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	err := execSaved(ctx, r.db, `DELETE FROM categories WHERE id = $1`, id)
	return errors.Wrap(err, "delete category")
}
