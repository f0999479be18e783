package handler

import (
	"net/http"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/deppfellow/pokemon-api/internal/service"
	"github.com/labstack/echo/v4"
)

type OwnerHandler struct {
	Handler
	ownerService *service.OwnerService
}

func NewOwnerHandler(s *server.Server, ownerService *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{
		Handler:      NewHandler(s),
		ownerService: ownerService,
	}
}

func (h *OwnerHandler) GetOwners(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]dto.OwnerDTO, error) {
		return h.ownerService.GetOwners(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *OwnerHandler) GetOwner(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *OwnerIDRequest) (dto.OwnerDTO, error) {
		return h.ownerService.GetOwner(c.Request().Context(), req.OwnerID)
	}, http.StatusOK, &OwnerIDRequest{})(c)
}

func (h *OwnerHandler) GetPokemonByOwner(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *OwnerIDRequest) ([]dto.PokemonDTO, error) {
		return h.ownerService.GetPokemonByOwner(c.Request().Context(), req.OwnerID)
	}, http.StatusOK, &OwnerIDRequest{})(c)
}

func (h *OwnerHandler) GetOwnersOfAPokemon(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *PokemonIDRequest) ([]dto.OwnerDTO, error) {
		return h.ownerService.GetOwnersOfAPokemon(c.Request().Context(), req.PokeID)
	}, http.StatusOK, &PokemonIDRequest{})(c)
}

func (h *OwnerHandler) CreateOwner(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreateOwnerRequest) (string, error) {
		in := dto.OwnerDTO{ID: req.ID, FirstName: req.FirstName, LastName: req.LastName}
		if err := h.ownerService.CreateOwner(c.Request().Context(), req.CountryID, in); err != nil {
			return "", err
		}
		return dto.Created, nil
	}, http.StatusOK, &CreateOwnerRequest{})(c)
}

func (h *OwnerHandler) UpdateOwner(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *UpdateOwnerRequest) error {
		in := dto.OwnerDTO{ID: req.ID, FirstName: req.FirstName, LastName: req.LastName}
		return h.ownerService.UpdateOwner(c.Request().Context(), req.OwnerID, in)
	}, http.StatusNoContent, &UpdateOwnerRequest{})(c)
}

func (h *OwnerHandler) DeleteOwner(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *OwnerIDRequest) error {
		return h.ownerService.DeleteOwner(c.Request().Context(), req.OwnerID)
	}, http.StatusNoContent, &OwnerIDRequest{})(c)
}
