// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/pokemon-api/internal/errs"
	"github.com/deppfellow/pokemon-api/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

func notFound(entity string) *errs.HTTPError {
	return errs.NewNotFoundError(entity+" not found", true, nil)
}

func alreadyExists(entity string) *errs.HTTPError {
	return errs.NewConflictError(entity+" already exists", true, nil)
}

// ensureExists turns a missing row into a 404 for entity.
func ensureExists(ctx context.Context, entity string, id int64, exists func(context.Context, int64) (bool, error)) error {
	found, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return notFound(entity)
	}
	return nil
}

// writeFailed logs err and returns fallback, except for unique violations
// which lost a race with the duplicate check and are reported as 409.
func writeFailed(ctx context.Context, err error, fallback *errs.HTTPError) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && sqlerr.MapCode(pgErr.Code) == sqlerr.UniqueViolation {
		return sqlerr.HandleError(err)
	}

	zerolog.Ctx(ctx).Error().Stack().Err(err).Msg(fallback.Message)
	return fallback
}

func deleteFailed(ctx context.Context, err error, what string) error {
	return writeFailed(ctx, err, errs.NewDeleteFailedError(what))
}

func saveFailed(ctx context.Context, err error) error {
	return writeFailed(ctx, err, errs.NewSaveFailedError())
}

func pathMismatch(pathID, bodyID int64) error {
	return errs.NewBadRequestError(fmt.Sprintf("Path id %d does not match body id %d", pathID, bodyID), true, nil, nil, nil)
}

func errNotUpdated(what string) *errs.HTTPError {
	return errs.NewInternalServerError().WithMessage("Something went wrong updating " + what)
}
