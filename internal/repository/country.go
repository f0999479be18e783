package repository

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/model"
	"github.com/pkg/errors"
)

type CountryRepository struct {
	db DBTX
}

func NewCountryRepository(db DBTX) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) GetAll(ctx context.Context) ([]model.Country, error) {
	countries, err := collectRows[model.Country](ctx, r.db, `SELECT id, name FROM countries ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list countries")
	}
	return countries, nil
}

func (r *CountryRepository) GetByID(ctx context.Context, id int64) (model.Country, error) {
	country, err := collectOne[model.Country](ctx, r.db,
		`SELECT id, name FROM countries WHERE id = $1`, id)
	if err != nil {
		return model.Country{}, errors.Wrap(err, "table:countries")
	}
	return country, nil
}

func (r *CountryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM countries WHERE id = $1)`, id)
	return found, errors.Wrap(err, "country exists")
}

func (r *CountryRepository) NameExists(ctx context.Context, name string) (bool, error) {
	found, err := exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM countries WHERE upper(btrim(name)) = upper(btrim($1)))`, name)
	return found, errors.Wrap(err, "country name exists")
}

// GetCountryByOwnerID returns pgx.ErrNoRows when the owner has no country.
func (r *CountryRepository) GetCountryByOwnerID(ctx context.Context, ownerID int64) (model.Country, error) {
	country, err := collectOne[model.Country](ctx, r.db, `
		SELECT c.id, c.name
		FROM countries c
		JOIN owners o ON o.country_id = c.id
		WHERE o.id = $1`, ownerID)
	if err != nil {
		return model.Country{}, errors.Wrap(err, "table:countries")
	}
	return country, nil
}

func (r *CountryRepository) GetOwnersFromCountry(ctx context.Context, countryID int64) ([]model.Owner, error) {
	owners, err := collectRows[model.Owner](ctx, r.db,
		`SELECT id, first_name, last_name, country_id FROM owners WHERE country_id = $1`, countryID)
	if err != nil {
		return nil, errors.Wrap(err, "list owners by country")
	}
	return owners, nil
}

func (r *CountryRepository) Create(ctx context.Context, c model.Country) (model.Country, error) {
	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO countries (name) VALUES ($1) RETURNING id`, c.Name)
	if err != nil {
		return model.Country{}, errors.Wrap(err, "insert country")
	}
	c.ID = id
	return c, nil
}

func (r *CountryRepository) Update(ctx context.Context, c model.Country) error {
	err := execSaved(ctx, r.db, `UPDATE countries SET name = $1 WHERE id = $2`, c.Name, c.ID)
	return errors.Wrap(err, "update country")
}

// Delete removes the country; its owners keep existing without one.
func (r *CountryRepository) Delete(ctx context.Context, id int64) error {
	err := execSaved(ctx, r.db, `DELETE FROM countries WHERE id = $1`, id)
	return errors.Wrap(err, "delete country")
}
