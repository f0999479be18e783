package handler

import (
	"net/http"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/deppfellow/pokemon-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewerHandler struct {
	Handler
	reviewerService *service.ReviewerService
}

func NewReviewerHandler(s *server.Server, reviewerService *service.ReviewerService) *ReviewerHandler {
	return &ReviewerHandler{
		Handler:         NewHandler(s),
		reviewerService: reviewerService,
	}
}

func (h *ReviewerHandler) GetReviewers(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *ListRequest) ([]dto.ReviewerDTO, error) {
		return h.reviewerService.GetReviewers(c.Request().Context())
	}, http.StatusOK, &ListRequest{})(c)
}

func (h *ReviewerHandler) GetReviewer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *ReviewerIDRequest) (dto.ReviewerDTO, error) {
		return h.reviewerService.GetReviewer(c.Request().Context(), req.ReviewerID)
	}, http.StatusOK, &ReviewerIDRequest{})(c)
}

func (h *ReviewerHandler) GetReviewsByReviewer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *ReviewerIDRequest) ([]dto.ReviewDTO, error) {
		return h.reviewerService.GetReviewsByReviewer(c.Request().Context(), req.ReviewerID)
	}, http.StatusOK, &ReviewerIDRequest{})(c)
}

func (h *ReviewerHandler) CreateReviewer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *CreateReviewerRequest) (string, error) {
		in := dto.ReviewerDTO{ID: req.ID, FirstName: req.FirstName, LastName: req.LastName}
		if err := h.reviewerService.CreateReviewer(c.Request().Context(), in); err != nil {
			return "", err
		}
		return dto.Created, nil
	}, http.StatusOK, &CreateReviewerRequest{})(c)
}

func (h *ReviewerHandler) UpdateReviewer(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *UpdateReviewerRequest) error {
		in := dto.ReviewerDTO{ID: req.ID, FirstName: req.FirstName, LastName: req.LastName}
		return h.reviewerService.UpdateReviewer(c.Request().Context(), req.ReviewerID, in)
	}, http.StatusNoContent, &UpdateReviewerRequest{})(c)
}

// DeleteReviewer also deletes every review the reviewer wrote.
func (h *ReviewerHandler) DeleteReviewer(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *ReviewerIDRequest) error {
		return h.reviewerService.DeleteReviewer(c.Request().Context(), req.ReviewerID)
	}, http.StatusNoContent, &ReviewerIDRequest{})(c)
}
