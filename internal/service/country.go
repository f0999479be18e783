package service

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/mapper"
	"github.com/deppfellow/pokemon-api/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type CountryService struct {
	repos *repository.Repositories
}

func NewCountryService(repos *repository.Repositories) *CountryService {
	return &CountryService{repos: repos}
}

func (s *CountryService) GetCountries(ctx context.Context) ([]dto.CountryDTO, error) {
	countries, err := s.repos.Country.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(countries, mapper.CountryToDTO), nil
}

func (s *CountryService) GetCountry(ctx context.Context, id int64) (dto.CountryDTO, error) {
	if err := ensureExists(ctx, "Country", id, s.repos.Country.Exists); err != nil {
		return dto.CountryDTO{}, err
	}

	country, err := s.repos.Country.GetByID(ctx, id)
	if err != nil {
		return dto.CountryDTO{}, err
	}
	return mapper.CountryToDTO(country), nil
}

// GetCountryByOwnerID returns 404 both for an unknown owner and for an owner
// without a country.
func (s *CountryService) GetCountryByOwnerID(ctx context.Context, ownerID int64) (dto.CountryDTO, error) {
	if err := ensureExists(ctx, "Owner", ownerID, s.repos.Owner.Exists); err != nil {
		return dto.CountryDTO{}, err
	}

	country, err := s.repos.Country.GetCountryByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.CountryDTO{}, notFound("Country")
		}
		return dto.CountryDTO{}, err
	}
	return mapper.CountryToDTO(country), nil
}

func (s *CountryService) GetOwnersFromCountry(ctx context.Context, countryID int64) ([]dto.OwnerDTO, error) {
	if err := ensureExists(ctx, "Country", countryID, s.repos.Country.Exists); err != nil {
		return nil, err
	}

	owners, err := s.repos.Country.GetOwnersFromCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(owners, mapper.OwnerToDTO), nil
}

func (s *CountryService) CreateCountry(ctx context.Context, in dto.CountryDTO) error {
	duplicate, err := s.repos.Country.NameExists(ctx, in.Name)
	if err != nil {
		return err
	}
	if duplicate {
		return alreadyExists("Country")
	}

	if _, err := s.repos.Country.Create(ctx, mapper.CountryFromDTO(in)); err != nil {
		return saveFailed(ctx, err)
	}
	return nil
}

func (s *CountryService) UpdateCountry(ctx context.Context, id int64, in dto.CountryDTO) error {
	if id != in.ID {
		return pathMismatch(id, in.ID)
	}
	if err := ensureExists(ctx, "Country", id, s.repos.Country.Exists); err != nil {
		return err
	}

	if err := s.repos.Country.Update(ctx, mapper.CountryFromDTO(in)); err != nil {
		return writeFailed(ctx, err, errNotUpdated("country"))
	}
	return nil
}

// DeleteCountry leaves the country's owners in place without a country.
func (s *CountryService) DeleteCountry(ctx context.Context, id int64) error {
	if err := ensureExists(ctx, "Country", id, s.repos.Country.Exists); err != nil {
		return err
	}

	if err := s.repos.Country.Delete(ctx, id); err != nil {
		return deleteFailed(ctx, err, "country")
	}
	return nil
}
