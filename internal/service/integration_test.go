//go:build integration

package service

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/deppfellow/pokemon-api/internal/database"
	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with: POKEMON_TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/service/
func newIntegrationServices(t *testing.T) *Services {
	t.Helper()

	dsn := os.Getenv("POKEMON_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("POKEMON_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	logger := zerolog.Nop()
	require.NoError(t, database.MigrateDSN(ctx, &logger, dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE pokemon_categories, pokemon_owners, reviews, reviewers,
		pokemon, owners, countries, categories RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	repos := repository.New(pool)
	return &Services{
		Pokemon:  NewPokemonService(repos, nil, nil),
		Category: NewCategoryService(repos),
		Country:  NewCountryService(repos),
		Owner:    NewOwnerService(repos),
		Review:   NewReviewService(repos, nil, nil),
		Reviewer: NewReviewerService(repos, nil, nil),
	}
}

func TestIntegrationLifecycle(t *testing.T) {
	svc := newIntegrationServices(t)
	ctx := context.Background()

	require.NoError(t, svc.Country.CreateCountry(ctx, dto.CountryDTO{Name: "Kanto"}))
	require.NoError(t, svc.Owner.CreateOwner(ctx, 1, dto.OwnerDTO{FirstName: "Ash", LastName: "Ketchum"}))
	require.NoError(t, svc.Category.CreateCategory(ctx, dto.CategoryDTO{Name: "Electric"}))
	require.NoError(t, svc.Pokemon.CreatePokemon(ctx, 1, 1, dto.PokemonDTO{Name: "Pikachu", BirthDate: birth}))
	require.NoError(t, svc.Reviewer.CreateReviewer(ctx, dto.ReviewerDTO{FirstName: "Brock", LastName: "Harrison"}))
	require.NoError(t, svc.Review.CreateReview(ctx, 1, 1, dto.ReviewDTO{Title: "Great", Text: "Fast", Rating: 4}))
	require.NoError(t, svc.Review.CreateReview(ctx, 1, 1, dto.ReviewDTO{Title: "Cute", Text: "Yellow", Rating: 5}))

	t.Run("duplicates are rejected case-insensitively", func(t *testing.T) {
		err := svc.Category.CreateCategory(ctx, dto.CategoryDTO{Name: " electric "})
		requireStatus(t, err, http.StatusConflict)

		err = svc.Owner.CreateOwner(ctx, 0, dto.OwnerDTO{FirstName: "ASH", LastName: "ketchum"})
		requireStatus(t, err, http.StatusConflict)
	})

	t.Run("relationships", func(t *testing.T) {
		country, err := svc.Country.GetCountryByOwnerID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Kanto", country.Name)

		owned, err := svc.Owner.GetPokemonByOwner(ctx, 1)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.Equal(t, "Pikachu", owned[0].Name)

		inCategory, err := svc.Category.GetPokemonByCategoryID(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, inCategory, 1)

		rating, err := svc.Pokemon.GetPokemonRating(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "4.5", rating.Rating.String())
		assert.Equal(t, int64(2), rating.ReviewCount)
	})

	t.Run("deleting a reviewer removes their reviews", func(t *testing.T) {
		require.NoError(t, svc.Reviewer.DeleteReviewer(ctx, 1))

		reviews, err := svc.Review.GetReviewsOfAPokemon(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, reviews)

		rating, err := svc.Pokemon.GetPokemonRating(ctx, 1)
		require.NoError(t, err)
		assert.True(t, rating.Rating.IsZero())
	})

	t.Run("deleting a country unsets owner country", func(t *testing.T) {
		require.NoError(t, svc.Country.DeleteCountry(ctx, 1))

		_, err := svc.Country.GetCountryByOwnerID(ctx, 1)
		requireStatus(t, err, http.StatusNotFound)

		_, err = svc.Owner.GetOwner(ctx, 1)
		require.NoError(t, err)
	})

	t.Run("deleting a category unlinks its pokemon", func(t *testing.T) {
		require.NoError(t, svc.Category.DeleteCategory(ctx, 1))

		_, err := svc.Pokemon.GetPokemon(ctx, 1)
		require.NoError(t, err)
	})

	t.Run("deleting a pokemon", func(t *testing.T) {
		require.NoError(t, svc.Pokemon.DeletePokemon(ctx, 1))

		_, err := svc.Pokemon.GetPokemon(ctx, 1)
		requireStatus(t, err, http.StatusNotFound)

		owned, err := svc.Owner.GetPokemonByOwner(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, owned)
	})
}
