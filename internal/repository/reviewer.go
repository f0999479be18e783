package repository

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/model"
	"github.com/pkg/errors"
)

type ReviewerRepository struct {
	db DBTX
}

func NewReviewerRepository(db DBTX) *ReviewerRepository {
	return &ReviewerRepository{db: db}
}

func (r *ReviewerRepository) GetAll(ctx context.Context) ([]model.Reviewer, error) {
	reviewers, err := collectRows[model.Reviewer](ctx, r.db,
		`SELECT id, first_name, last_name FROM reviewers ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list reviewers")
	}
	return reviewers, nil
}

func (r *ReviewerRepository) GetByID(ctx context.Context, id int64) (model.Reviewer, error) {
	reviewer, err := collectOne[model.Reviewer](ctx, r.db,
		`SELECT id, first_name, last_name FROM reviewers WHERE id = $1`, id)
	if err != nil {
		return model.Reviewer{}, errors.Wrap(err, "table:reviewers")
	}
	return reviewer, nil
}

func (r *ReviewerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM reviewers WHERE id = $1)`, id)
	return found, errors.Wrap(err, "reviewer exists")
}

func (r *ReviewerRepository) NameExists(ctx context.Context, fullName string) (bool, error) {
	found, err := exists(ctx, r.db, `
		SELECT EXISTS (
			SELECT 1 FROM reviewers
			WHERE upper(btrim(first_name || ' ' || last_name)) = upper(btrim($1))
		)`, fullName)
	return found, errors.Wrap(err, "reviewer name exists")
}

func (r *ReviewerRepository) GetReviewsByReviewer(ctx context.Context, reviewerID int64) ([]model.Review, error) {
	reviews, err := collectRows[model.Review](ctx, r.db,
		`SELECT `+reviewColumns+` FROM reviews WHERE reviewer_id = $1`, reviewerID)
	if err != nil {
		return nil, errors.Wrap(err, "list reviews by reviewer")
	}
	return reviews, nil
}

func (r *ReviewerRepository) Create(ctx context.Context, rv model.Reviewer) (model.Reviewer, error) {
	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO reviewers (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		rv.FirstName, rv.LastName)
	if err != nil {
		return model.Reviewer{}, errors.Wrap(err, "insert reviewer")
	}
	rv.ID = id
	return rv, nil
}

func (r *ReviewerRepository) Update(ctx context.Context, rv model.Reviewer) error {
	err := execSaved(ctx, r.db,
		`UPDATE reviewers SET first_name = $1, last_name = $2 WHERE id = $3`,
		rv.FirstName, rv.LastName, rv.ID)
	return errors.Wrap(err, "update reviewer")
}

// Delete removes the reviewer; their reviews must be removed first.
func (r *ReviewerRepository) Delete(ctx context.Context, id int64) error {
	err := execSaved(ctx, r.db, `DELETE FROM reviewers WHERE id = $1`, id)
	return errors.Wrap(err, "delete reviewer")
}
