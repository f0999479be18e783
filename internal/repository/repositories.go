package repository

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/jackc/pgx/v5"
)

// Repositories is a container for all repository instances sharing one DBTX.
type Repositories struct {
	db DBTX

	Pokemon  *PokemonRepository
	Category *CategoryRepository
	Country  *CountryRepository
	Owner    *OwnerRepository
	Review   *ReviewRepository
	Reviewer *ReviewerRepository
}

// New builds every repository on top of db.
func New(db DBTX) *Repositories {
	return &Repositories{
		db:       db,
		Pokemon:  NewPokemonRepository(db),
		Category: NewCategoryRepository(db),
		Country:  NewCountryRepository(db),
		Owner:    NewOwnerRepository(db),
		Review:   NewReviewRepository(db),
		Reviewer: NewReviewerRepository(db),
	}
}

// NewRepositories constructs the repository container over the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// WithTx runs fn with a Repositories bound to a new transaction. The
// transaction is committed when fn returns nil and rolled back otherwise.
func (r *Repositories) WithTx(ctx context.Context, fn func(tx *Repositories) error) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(New(tx))
	})
}
