package handler

import (
	"net/http"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/deppfellow/pokemon-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	Handler
	reviewService *service.ReviewService
}

func NewReviewHandler(s *server.Server, reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		Handler:       NewHandler(s),
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]dto.ReviewDTO, error) {
		return h.reviewService.GetReviews(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *ReviewIDRequest) (dto.ReviewDTO, error) {
		return h.reviewService.GetReview(c.Request().Context(), req.ReviewID)
	}, http.StatusOK, &ReviewIDRequest{})(c)
}

func (h *ReviewHandler) GetReviewsOfAPokemon(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *PokemonIDRequest) ([]dto.ReviewDTO, error) {
		return h.reviewService.GetReviewsOfAPokemon(c.Request().Context(), req.PokeID)
	}, http.StatusOK, &PokemonIDRequest{})(c)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreateReviewRequest) (string, error) {
		in := dto.ReviewDTO{ID: req.ID, Title: req.Title, Text: req.Text, Rating: req.Rating}
		if err := h.reviewService.CreateReview(c.Request().Context(), req.ReviewerID, req.PokeID, in); err != nil {
			return "", err
		}
		return dto.Created, nil
	}, http.StatusOK, &CreateReviewRequest{})(c)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *UpdateReviewRequest) error {
		in := dto.ReviewDTO{ID: req.ID, Title: req.Title, Text: req.Text, Rating: req.Rating}
		return h.reviewService.UpdateReview(c.Request().Context(), req.ReviewID, in)
	}, http.StatusNoContent, &UpdateReviewRequest{})(c)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *ReviewIDRequest) error {
		return h.reviewService.DeleteReview(c.Request().Context(), req.ReviewID)
	}, http.StatusNoContent, &ReviewIDRequest{})(c)
}

func (h *ReviewHandler) DeleteReviewsByReviewer(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *ReviewerIDRequest) error {
		return h.reviewService.DeleteReviewsByReviewer(c.Request().Context(), req.ReviewerID)
	}, http.StatusNoContent, &ReviewerIDRequest{})(c)
}
