package handler

import (
	"net/http"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/deppfellow/pokemon-api/internal/service"
	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	Handler
	categoryService *service.CategoryService
}

func NewCategoryHandler(s *server.Server, categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		Handler:         NewHandler(s),
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) GetCategories(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]dto.CategoryDTO, error) {
		return h.categoryService.GetCategories(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CategoryIDRequest) (dto.CategoryDTO, error) {
		return h.categoryService.GetCategory(c.Request().Context(), req.CategoryID)
	}, http.StatusOK, &CategoryIDRequest{})(c)
}

func (h *CategoryHandler) GetPokemonByCategoryID(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CategoryIDRequest) ([]dto.PokemonDTO, error) {
		return h.categoryService.GetPokemonByCategoryID(c.Request().Context(), req.CategoryID)
	}, http.StatusOK, &CategoryIDRequest{})(c)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreateCategoryRequest) (string, error) {
		in := dto.CategoryDTO{ID: req.ID, Name: req.Name}
		if err := h.categoryService.CreateCategory(c.Request().Context(), in); err != nil {
			return "", err
		}
		return dto.Created, nil
	}, http.StatusOK, &CreateCategoryRequest{})(c)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *UpdateCategoryRequest) error {
		in := dto.CategoryDTO{ID: req.ID, Name: req.Name}
		return h.categoryService.UpdateCategory(c.Request().Context(), req.CategoryID, in)
	}, http.StatusNoContent, &UpdateCategoryRequest{})(c)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *CategoryIDRequest) error {
		return h.categoryService.DeleteCategory(c.Request().Context(), req.CategoryID)
	}, http.StatusNoContent, &CategoryIDRequest{})(c)
}
