package repository

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/model"
	"github.com/pkg/errors"
)

type OwnerRepository struct {
	db DBTX
}

func NewOwnerRepository(db DBTX) *OwnerRepository {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) GetAll(ctx context.Context) ([]model.Owner, error) {
	owners, err := collectRows[model.Owner](ctx, r.db,
		`SELECT id, first_name, last_name, country_id FROM owners ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list owners")
	}
	return owners, nil
}

func (r *OwnerRepository) GetByID(ctx context.Context, id int64) (model.Owner, error) {
	owner, err := collectOne[model.Owner](ctx, r.db,
		`SELECT id, first_name, last_name, country_id FROM owners WHERE id = $1`, id)
	if err != nil {
		return model.Owner{}, errors.Wrap(err, "table:owners")
	}
	return owner, nil
}

func (r *OwnerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM owners WHERE id = $1)`, id)
	return found, errors.Wrap(err, "owner exists")
}

// NameExists compares "first last" case-insensitively after trimming.
func (r *OwnerRepository) NameExists(ctx context.Context, fullName string) (bool, error) {
	found, err := exists(ctx, r.db, `
		SELECT EXISTS (
			SELECT 1 FROM owners
			WHERE upper(btrim(first_name || ' ' || last_name)) = upper(btrim($1))
		)`, fullName)
	return found, errors.Wrap(err, "owner name exists")
}

func (r *OwnerRepository) GetPokemonByOwner(ctx context.Context, ownerID int64) ([]model.Pokemon, error) {
	pokemon, err := collectRows[model.Pokemon](ctx, r.db, `
		SELECT p.id, p.name, p.birth_date
		FROM pokemon p
		JOIN pokemon_owners po ON po.pokemon_id = p.id
		WHERE po.owner_id = $1`, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "list pokemon by owner")
	}
	return pokemon, nil
}

func (r *OwnerRepository) GetOwnersOfAPokemon(ctx context.Context, pokemonID int64) ([]model.Owner, error) {
	owners, err := collectRows[model.Owner](ctx, r.db, `
		SELECT o.id, o.first_name, o.last_name, o.country_id
		FROM owners o
		JOIN pokemon_owners po ON po.owner_id = o.id
		WHERE po.pokemon_id = $1`, pokemonID)
	if err != nil {
		return nil, errors.Wrap(err, "list owners of pokemon")
	}
	return owners, nil
}

func (r *OwnerRepository) Create(ctx context.Context, o model.Owner) (model.Owner, error) {
	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO owners (first_name, last_name, country_id) VALUES ($1, $2, $3) RETURNING id`,
		o.FirstName, o.LastName, o.CountryID)
	if err != nil {
		return model.Owner{}, errors.Wrap(err, "insert owner")
	}
	o.ID = id
	return o, nil
}

// Update replaces the owner's names. The country link is left unchanged.
func (r *OwnerRepository) Update(ctx context.Context, o model.Owner) error {
	err := execSaved(ctx, r.db,
		`UPDATE owners SET first_name = $1, last_name = $2 WHERE id = $3`, o.FirstName, o.LastName, o.ID)
	return errors.Wrap(err, "update owner")
}

func (r *OwnerRepository) Delete(ctx context.Context, id int64) error {
	err := execSaved(ctx, r.db, `DELETE FROM owners WHERE id = $1`, id)
	return errors.Wrap(err, "delete owner")
}
