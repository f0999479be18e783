package service

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/mapper"
	"github.com/deppfellow/pokemon-api/internal/repository"
)

type CategoryService struct {
	repos *repository.Repositories
}

func NewCategoryService(repos *repository.Repositories) *CategoryService {
	return &CategoryService{repos: repos}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := s.repos.Category.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(categories, mapper.CategoryToDTO), nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (dto.CategoryDTO, error) {
	if err := ensureExists(ctx, "Category", id, s.repos.Category.Exists); err != nil {
		return dto.CategoryDTO{}, err
	}

	category, err := s.repos.Category.GetByID(ctx, id)
	if err != nil {
		return dto.CategoryDTO{}, err
	}
	return mapper.CategoryToDTO(category), nil
}

func (s *CategoryService) GetPokemonByCategoryID(ctx context.Context, id int64) ([]dto.PokemonDTO, error) {
	if err := ensureExists(ctx, "Category", id, s.repos.Category.Exists); err != nil {
		return nil, err
	}

	pokemon, err := s.repos.Category.GetPokemonByCategoryID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(pokemon, mapper.PokemonToDTO), nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, in dto.CategoryDTO) error {
	duplicate, err := s.repos.Category.NameExists(ctx, in.Name)
	if err != nil {
		return err
	}
	if duplicate {
		return alreadyExists("Category")
	}

	if _, err := s.repos.Category.Create(ctx, mapper.CategoryFromDTO(in)); err != nil {
		return saveFailed(ctx, err)
	}
	return nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, in dto.CategoryDTO) error {
	if id != in.ID {
		return pathMismatch(id, in.ID)
	}
	if err := ensureExists(ctx, "Category", id, s.repos.Category.Exists); err != nil {
		return err
	}

	if err := s.repos.Category.Update(ctx, mapper.CategoryFromDTO(in)); err != nil {
		return writeFailed(ctx, err, errNotUpdated("category"))
	}
	return nil
}

// DeleteCategory unlinks the category from its pokemon; the pokemon stay.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := ensureExists(ctx, "Category", id, s.repos.Category.Exists); err != nil {
		return err
	}

	if err := s.repos.Category.Delete(ctx, id); err != nil {
		return deleteFailed(ctx, err, "category")
	}
	return nil
}
