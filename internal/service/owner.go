package service

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/mapper"
	"github.com/deppfellow/pokemon-api/internal/repository"
	"github.com/rs/zerolog"
)

type OwnerService struct {
	repos *repository.Repositories
}

func NewOwnerService(repos *repository.Repositories) *OwnerService {
	return &OwnerService{repos: repos}
}

func (s *OwnerService) GetOwners(ctx context.Context) ([]dto.OwnerDTO, error) {
	owners, err := s.repos.Owner.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(owners, mapper.OwnerToDTO), nil
}

func (s *OwnerService) GetOwner(ctx context.Context, id int64) (dto.OwnerDTO, error) {
	if err := ensureExists(ctx, "Owner", id, s.repos.Owner.Exists); err != nil {
		return dto.OwnerDTO{}, err
	}

	owner, err := s.repos.Owner.GetByID(ctx, id)
	if err != nil {
		return dto.OwnerDTO{}, err
	}
	return mapper.OwnerToDTO(owner), nil
}

func (s *OwnerService) GetPokemonByOwner(ctx context.Context, ownerID int64) ([]dto.PokemonDTO, error) {
	if err := ensureExists(ctx, "Owner", ownerID, s.repos.Owner.Exists); err != nil {
		return nil, err
	}

	pokemon, err := s.repos.Owner.GetPokemonByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(pokemon, mapper.PokemonToDTO), nil
}

// GetOwnersOfAPokemon returns 404 when the pokemon does not exist.
func (s *OwnerService) GetOwnersOfAPokemon(ctx context.Context, pokemonID int64) ([]dto.OwnerDTO, error) {
	if err := ensureExists(ctx, "Pokemon", pokemonID, s.repos.Pokemon.Exists); err != nil {
		return nil, err
	}

	owners, err := s.repos.Owner.GetOwnersOfAPokemon(ctx, pokemonID)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(owners, mapper.OwnerToDTO), nil
}

// CreateOwner links the owner to countryID when that country exists. A zero
// or unknown countryID creates the owner without a country.
func (s *OwnerService) CreateOwner(ctx context.Context, countryID int64, in dto.OwnerDTO) error {
	owner := mapper.OwnerFromDTO(in)

	duplicate, err := s.repos.Owner.NameExists(ctx, owner.FullName())
	if err != nil {
		return err
	}
	if duplicate {
		return alreadyExists("Owner")
	}

	if countryID != 0 {
		found, err := s.repos.Country.Exists(ctx, countryID)
		if err != nil {
			return err
		}
		if found {
			owner.CountryID = &countryID
		} else {
			zerolog.Ctx(ctx).Debug().Int64("country_id", countryID).Msg("unknown country, owner created without one")
		}
	}

	if _, err := s.repos.Owner.Create(ctx, owner); err != nil {
		return saveFailed(ctx, err)
	}
	return nil
}

func (s *OwnerService) UpdateOwner(ctx context.Context, id int64, in dto.OwnerDTO) error {
	if id != in.ID {
		return pathMismatch(id, in.ID)
	}
	if err := ensureExists(ctx, "Owner", id, s.repos.Owner.Exists); err != nil {
		return err
	}

	if err := s.repos.Owner.Update(ctx, mapper.OwnerFromDTO(in)); err != nil {
		return writeFailed(ctx, err, errNotUpdated("owner"))
	}
	return nil
}

func (s *OwnerService) DeleteOwner(ctx context.Context, id int64) error {
	if err := ensureExists(ctx, "Owner", id, s.repos.Owner.Exists); err != nil {
		return err
	}

	if err := s.repos.Owner.Delete(ctx, id); err != nil {
		return deleteFailed(ctx, err, "owner")
	}
	return nil
}
