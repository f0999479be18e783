package repository

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type PokemonRepository struct {
	db DBTX
}

func NewPokemonRepository(db DBTX) *PokemonRepository {
	return &PokemonRepository{db: db}
}

// GetAll returns every pokemon ordered by id.
func (r *PokemonRepository) GetAll(ctx context.Context) ([]model.Pokemon, error) {
	pokemon, err := collectRows[model.Pokemon](ctx, r.db,
		`SELECT id, name, birth_date FROM pokemon ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list pokemon")
	}
	return pokemon, nil
}

func (r *PokemonRepository) GetByID(ctx context.Context, id int64) (model.Pokemon, error) {
	pokemon, err := collectOne[model.Pokemon](ctx, r.db,
		`SELECT id, name, birth_date FROM pokemon WHERE id = $1`, id)
	if err != nil {
		return model.Pokemon{}, errors.Wrap(err, "table:pokemon")
	}
	return pokemon, nil
}

func (r *PokemonRepository) Exists(ctx context.Context, id int64) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM pokemon WHERE id = $1)`, id)
	return found, errors.Wrap(err, "pokemon exists")
}

// NameExists compares names case-insensitively after trimming.
func (r *PokemonRepository) NameExists(ctx context.Context, name string) (bool, error) {
	found, err := exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM pokemon WHERE upper(btrim(name)) = upper(btrim($1)))`, name)
	return found, errors.Wrap(err, "pokemon name exists")
}

// GetPokemonRating returns the mean review rating and the number of reviews.
// The rating is zero when the pokemon has no reviews.
func (r *PokemonRepository) GetPokemonRating(ctx context.Context, id int64) (decimal.Decimal, int64, error) {
	var sum, count int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(rating), 0)::BIGINT, COUNT(*) FROM reviews WHERE pokemon_id = $1`, id,
	).Scan(&sum, &count)
	if err != nil {
		return decimal.Zero, 0, errors.Wrap(err, "pokemon rating")
	}

	if count == 0 {
		return decimal.Zero, 0, nil
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(count)), count, nil
}

// Create inserts the pokemon and links it to the owner and category. All
// three rows are written in one transaction.
func (r *PokemonRepository) Create(ctx context.Context, ownerID, categoryID int64, p model.Pokemon) (model.Pokemon, error) {
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		id, err := insertReturningID(ctx, tx,
			`INSERT INTO pokemon (name, birth_date) VALUES ($1, $2) RETURNING id`, p.Name, p.BirthDate)
		if err != nil {
			return errors.Wrap(err, "insert pokemon")
		}
		p.ID = id

		if err := execSaved(ctx, tx,
			`INSERT INTO pokemon_owners (pokemon_id, owner_id) VALUES ($1, $2)`, id, ownerID); err != nil {
			return errors.Wrap(err, "insert pokemon owner")
		}

		if err := execSaved(ctx, tx,
			`INSERT INTO pokemon_categories (pokemon_id, category_id) VALUES ($1, $2)`, id, categoryID); err != nil {
			return errors.Wrap(err, "insert pokemon category")
		}
		return nil
	})
	if err != nil {
		return model.Pokemon{}, err
	}
	return p, nil
}

func (r *PokemonRepository) Update(ctx context.Context, p model.Pokemon) error {
	err := execSaved(ctx, r.db,
		`UPDATE pokemon SET name = $1, birth_date = $2 WHERE id = $3`, p.Name, p.BirthDate, p.ID)
	return errors.Wrap(err, "update pokemon")
}

// Delete removes the pokemon. Join rows go with it; reviews must be removed first.
func (r *PokemonRepository) Delete(ctx context.Context, id int64) error {
	err := execSaved(ctx, r.db, `DELETE FROM pokemon WHERE id = $1`, id)
	return errors.Wrap(err, "delete pokemon")
}
