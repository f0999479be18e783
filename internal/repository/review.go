package repository

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const reviewColumns = `id, title, text, rating, pokemon_id, reviewer_id`

type ReviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) GetAll(ctx context.Context) ([]model.Review, error) {
	reviews, err := collectRows[model.Review](ctx, r.db, `SELECT `+reviewColumns+` FROM reviews ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list reviews")
	}
	return reviews, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (model.Review, error) {
	review, err := collectOne[model.Review](ctx, r.db,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
	if err != nil {
		return model.Review{}, errors.Wrap(err, "table:reviews")
	}
	return review, nil
}

func (r *ReviewRepository) Exists(ctx context.Context, id int64) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM reviews WHERE id = $1)`, id)
	return found, errors.Wrap(err, "review exists")
}

func (r *ReviewRepository) TitleExists(ctx context.Context, title string) (bool, error) {
	found, err := exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE upper(btrim(title)) = upper(btrim($1)))`, title)
	return found, errors.Wrap(err, "review title exists")
}

func (r *ReviewRepository) GetReviewsOfAPokemon(ctx context.Context, pokemonID int64) ([]model.Review, error) {
	reviews, err := collectRows[model.Review](ctx, r.db,
		`SELECT `+reviewColumns+` FROM reviews WHERE pokemon_id = $1`, pokemonID)
	if err != nil {
		return nil, errors.Wrap(err, "list reviews of pokemon")
	}
	return reviews, nil
}

func (r *ReviewRepository) Create(ctx context.Context, rv model.Review) (model.Review, error) {
	id, err := insertReturningID(ctx, r.db, `
		INSERT INTO reviews (title, text, rating, pokemon_id, reviewer_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		rv.Title, rv.Text, rv.Rating, rv.PokemonID, rv.ReviewerID)
	if err != nil {
		return model.Review{}, errors.Wrap(err, "insert review")
	}
	rv.ID = id
	return rv, nil
}

// Update replaces the review's content. The pokemon and reviewer links are kept.
func (r *ReviewRepository) Update(ctx context.Context, rv model.Review) error {
	err := execSaved(ctx, r.db,
		`UPDATE reviews SET title = $1, text = $2, rating = $3 WHERE id = $4`,
		rv.Title, rv.Text, rv.Rating, rv.ID)
	return errors.Wrap(err, "update review")
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	err := execSaved(ctx, r.db, `DELETE FROM reviews WHERE id = $1`, id)
	return errors.Wrap(err, "delete review")
}

// DeleteByPokemon removes every review of the pokemon. Zero rows is not an error.
func (r *ReviewRepository) DeleteByPokemon(ctx context.Context, pokemonID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE pokemon_id = $1`, pokemonID)
	if err != nil {
		return 0, errors.Wrap(err, "delete reviews of pokemon")
	}
	return tag.RowsAffected(), nil
}

// DeleteByReviewer removes every review written by the reviewer and returns
// the distinct pokemon ids those reviews belonged to. Zero rows is not an error.
func (r *ReviewRepository) DeleteByReviewer(ctx context.Context, reviewerID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		WITH deleted AS (
			DELETE FROM reviews WHERE reviewer_id = $1 RETURNING pokemon_id
		)
		SELECT DISTINCT pokemon_id FROM deleted ORDER BY pokemon_id`, reviewerID)
	if err != nil {
		return nil, errors.Wrap(err, "delete reviews by reviewer")
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	return ids, errors.Wrap(err, "delete reviews by reviewer")
}
