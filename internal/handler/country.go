package handler

import (
	"net/http"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/deppfellow/pokemon-api/internal/service"
	"github.com/labstack/echo/v4"
)

type CountryHandler struct {
	Handler
	countryService *service.CountryService
}

func NewCountryHandler(s *server.Server, countryService *service.CountryService) *CountryHandler {
	return &CountryHandler{
		Handler:        NewHandler(s),
		countryService: countryService,
	}
}

func (h *CountryHandler) GetCountries(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]dto.CountryDTO, error) {
		return h.countryService.GetCountries(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *CountryHandler) GetCountry(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CountryIDRequest) (dto.CountryDTO, error) {
		return h.countryService.GetCountry(c.Request().Context(), req.CountryID)
	}, http.StatusOK, &CountryIDRequest{})(c)
}

func (h *CountryHandler) GetCountryOfAnOwner(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *OwnerIDRequest) (dto.CountryDTO, error) {
		return h.countryService.GetCountryByOwnerID(c.Request().Context(), req.OwnerID)
	}, http.StatusOK, &OwnerIDRequest{})(c)
}

func (h *CountryHandler) GetOwnersFromCountry(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CountryIDRequest) ([]dto.OwnerDTO, error) {
		return h.countryService.GetOwnersFromCountry(c.Request().Context(), req.CountryID)
	}, http.StatusOK, &CountryIDRequest{})(c)
}

func (h *CountryHandler) CreateCountry(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreateCountryRequest) (string, error) {
		in := dto.CountryDTO{ID: req.ID, Name: req.Name}
		if err := h.countryService.CreateCountry(c.Request().Context(), in); err != nil {
			return "", err
		}
		return dto.Created, nil
	}, http.StatusOK, &CreateCountryRequest{})(c)
}

func (h *CountryHandler) UpdateCountry(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *UpdateCountryRequest) error {
		in := dto.CountryDTO{ID: req.ID, Name: req.Name}
		return h.countryService.UpdateCountry(c.Request().Context(), req.CountryID, in)
	}, http.StatusNoContent, &UpdateCountryRequest{})(c)
}

func (h *CountryHandler) DeleteCountry(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *CountryIDRequest) error {
		return h.countryService.DeleteCountry(c.Request().Context(), req.CountryID)
	}, http.StatusNoContent, &CountryIDRequest{})(c)
}
