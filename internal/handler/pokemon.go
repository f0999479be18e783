package handler

import (
	"net/http"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/deppfellow/pokemon-api/internal/service"
	"github.com/labstack/echo/v4"
)

type PokemonHandler struct {
	Handler
	pokemonService *service.PokemonService
}

func NewPokemonHandler(s *server.Server, pokemonService *service.PokemonService) *PokemonHandler {
	return &PokemonHandler{
		Handler:        NewHandler(s),
		pokemonService: pokemonService,
	}
}

func (h *PokemonHandler) GetPokemons(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]dto.PokemonDTO, error) {
		return h.pokemonService.GetPokemons(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *PokemonHandler) GetPokemon(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *PokemonIDRequest) (dto.PokemonDTO, error) {
		return h.pokemonService.GetPokemon(c.Request().Context(), req.PokeID)
	}, http.StatusOK, &PokemonIDRequest{})(c)
}

func (h *PokemonHandler) GetPokemonRating(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *PokemonIDRequest) (dto.PokemonRatingDTO, error) {
		return h.pokemonService.GetPokemonRating(c.Request().Context(), req.PokeID)
	}, http.StatusOK, &PokemonIDRequest{})(c)
}

func (h *PokemonHandler) CreatePokemon(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreatePokemonRequest) (string, error) {
		in := dto.PokemonDTO{ID: req.ID, Name: req.Name, BirthDate: req.BirthDate}
		if err := h.pokemonService.CreatePokemon(c.Request().Context(), req.OwnerID, req.CategoryID, in); err != nil {
			return "", err
		}
		return dto.Created, nil
	}, http.StatusOK, &CreatePokemonRequest{})(c)
}

func (h *PokemonHandler) UpdatePokemon(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *UpdatePokemonRequest) error {
		in := dto.PokemonDTO{ID: req.ID, Name: req.Name, BirthDate: req.BirthDate}
		return h.pokemonService.UpdatePokemon(c.Request().Context(), req.PokeID, in)
	}, http.StatusNoContent, &UpdatePokemonRequest{})(c)
}

func (h *PokemonHandler) DeletePokemon(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *PokemonIDRequest) error {
		return h.pokemonService.DeletePokemon(c.Request().Context(), req.PokeID)
	}, http.StatusNoContent, &PokemonIDRequest{})(c)
}
