package service

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/mapper"
	"github.com/deppfellow/pokemon-api/internal/repository"
	"github.com/rs/zerolog"
)

// RatingWarmer schedules a background recomputation of a pokemon's rating.
type RatingWarmer interface {
	EnqueueRatingWarm(ctx context.Context, pokemonID int64) error
}

type PokemonService struct {
	repos  *repository.Repositories
	cache  *RatingCache
	warmer RatingWarmer
}

// NewPokemonService accepts a nil cache and a nil warmer.
func NewPokemonService(repos *repository.Repositories, cache *RatingCache, warmer RatingWarmer) *PokemonService {
	return &PokemonService{repos: repos, cache: cache, warmer: warmer}
}

func (s *PokemonService) GetPokemons(ctx context.Context) ([]dto.PokemonDTO, error) {
	pokemon, err := s.repos.Pokemon.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(pokemon, mapper.PokemonToDTO), nil
}

func (s *PokemonService) GetPokemon(ctx context.Context, id int64) (dto.PokemonDTO, error) {
	if err := ensureExists(ctx, "Pokemon", id, s.repos.Pokemon.Exists); err != nil {
		return dto.PokemonDTO{}, err
	}

	pokemon, err := s.repos.Pokemon.GetByID(ctx, id)
	if err != nil {
		return dto.PokemonDTO{}, err
	}
	return mapper.PokemonToDTO(pokemon), nil
}

// GetPokemonRating returns the mean review rating, served from the cache when possible.
func (s *PokemonService) GetPokemonRating(ctx context.Context, id int64) (dto.PokemonRatingDTO, error) {
	if err := ensureExists(ctx, "Pokemon", id, s.repos.Pokemon.Exists); err != nil {
		return dto.PokemonRatingDTO{}, err
	}

	if rating, ok := s.cache.Get(ctx, id); ok {
		return rating, nil
	}

	gen := s.cache.Generation(ctx, id)
	rating, err := s.computeRating(ctx, id)
	if err != nil {
		return dto.PokemonRatingDTO{}, err
	}

	s.cache.Set(ctx, rating, gen)
	return rating, nil
}

func (s *PokemonService) computeRating(ctx context.Context, id int64) (dto.PokemonRatingDTO, error) {
	rating, count, err := s.repos.Pokemon.GetPokemonRating(ctx, id)
	if err != nil {
		return dto.PokemonRatingDTO{}, err
	}

	return dto.PokemonRatingDTO{
		PokemonID:   id,
		Rating:      rating,
		ReviewCount: count,
	}, nil
}

// WarmRating recomputes the rating of id and stores it in the cache. A
// pokemon deleted in the meantime is skipped, as is everything when caching
// is off.
func (s *PokemonService) WarmRating(ctx context.Context, id int64) error {
	if s.cache == nil {
		return nil
	}

	found, err := s.repos.Pokemon.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	gen := s.cache.Generation(ctx, id)
	rating, err := s.computeRating(ctx, id)
	if err != nil {
		return err
	}

	s.cache.Set(ctx, rating, gen)
	return nil
}

// CreatePokemon links the new pokemon to an existing owner and category.
func (s *PokemonService) CreatePokemon(ctx context.Context, ownerID, categoryID int64, in dto.PokemonDTO) error {
	duplicate, err := s.repos.Pokemon.NameExists(ctx, in.Name)
	if err != nil {
		return err
	}
	if duplicate {
		return alreadyExists("Pokemon")
	}

	if err := ensureExists(ctx, "Owner", ownerID, s.repos.Owner.Exists); err != nil {
		return err
	}
	if err := ensureExists(ctx, "Category", categoryID, s.repos.Category.Exists); err != nil {
		return err
	}

	created, err := s.repos.Pokemon.Create(ctx, ownerID, categoryID, mapper.PokemonFromDTO(in))
	if err != nil {
		return saveFailed(ctx, err)
	}

	zerolog.Ctx(ctx).Info().Int64("pokemon_id", created.ID).Msg("pokemon created")
	return nil
}

func (s *PokemonService) UpdatePokemon(ctx context.Context, id int64, in dto.PokemonDTO) error {
	if id != in.ID {
		return pathMismatch(id, in.ID)
	}
	if err := ensureExists(ctx, "Pokemon", id, s.repos.Pokemon.Exists); err != nil {
		return err
	}

	if err := s.repos.Pokemon.Update(ctx, mapper.PokemonFromDTO(in)); err != nil {
		return writeFailed(ctx, err, errNotUpdated("pokemon"))
	}
	return nil
}

// DeletePokemon removes the pokemon and all its reviews in one transaction.
func (s *PokemonService) DeletePokemon(ctx context.Context, id int64) error {
	if err := ensureExists(ctx, "Pokemon", id, s.repos.Pokemon.Exists); err != nil {
		return err
	}

	err := s.repos.WithTx(ctx, func(tx *repository.Repositories) error {
		removed, err := tx.Review.DeleteByPokemon(ctx, id)
		if err != nil {
			return err
		}
		zerolog.Ctx(ctx).Debug().Int64("pokemon_id", id).Int64("reviews", removed).Msg("deleted reviews of pokemon")

		return tx.Pokemon.Delete(ctx, id)
	})
	if err != nil {
		return deleteFailed(ctx, err, "pokemon")
	}

	s.cache.Invalidate(ctx, id)
	return nil
}
