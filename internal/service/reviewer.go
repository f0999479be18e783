package service

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/mapper"
	"github.com/deppfellow/pokemon-api/internal/repository"
)

type ReviewerService struct {
	ratingRefresher
	repos *repository.Repositories
}

func NewReviewerService(repos *repository.Repositories, cache *RatingCache, warmer RatingWarmer) *ReviewerService {
	return &ReviewerService{
		ratingRefresher: ratingRefresher{cache: cache, warmer: warmer},
		repos:           repos,
	}
}

func (s *ReviewerService) GetReviewers(ctx context.Context) ([]dto.ReviewerDTO, error) {
	reviewers, err := s.repos.Reviewer.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(reviewers, mapper.ReviewerToDTO), nil
}

func (s *ReviewerService) GetReviewer(ctx context.Context, id int64) (dto.ReviewerDTO, error) {
	if err := ensureExists(ctx, "Reviewer", id, s.repos.Reviewer.Exists); err != nil {
		return dto.ReviewerDTO{}, err
	}

	reviewer, err := s.repos.Reviewer.GetByID(ctx, id)
	if err != nil {
		return dto.ReviewerDTO{}, err
	}
	return mapper.ReviewerToDTO(reviewer), nil
}

func (s *ReviewerService) GetReviewsByReviewer(ctx context.Context, id int64) ([]dto.ReviewDTO, error) {
	if err := ensureExists(ctx, "Reviewer", id, s.repos.Reviewer.Exists); err != nil {
		return nil, err
	}

	reviews, err := s.repos.Reviewer.GetReviewsByReviewer(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(reviews, mapper.ReviewToDTO), nil
}

// CreateReviewer rejects a reviewer whose full name is already taken.
func (s *ReviewerService) CreateReviewer(ctx context.Context, in dto.ReviewerDTO) error {
	reviewer := mapper.ReviewerFromDTO(in)

	duplicate, err := s.repos.Reviewer.NameExists(ctx, reviewer.FullName())
	if err != nil {
		return err
	}
	if duplicate {
		return alreadyExists("Reviewer")
	}

	if _, err := s.repos.Reviewer.Create(ctx, reviewer); err != nil {
		return saveFailed(ctx, err)
	}
	return nil
}

func (s *ReviewerService) UpdateReviewer(ctx context.Context, id int64, in dto.ReviewerDTO) error {
	if id != in.ID {
		return pathMismatch(id, in.ID)
	}
	if err := ensureExists(ctx, "Reviewer", id, s.repos.Reviewer.Exists); err != nil {
		return err
	}

	if err := s.repos.Reviewer.Update(ctx, mapper.ReviewerFromDTO(in)); err != nil {
		return writeFailed(ctx, err, errNotUpdated("reviewer"))
	}
	return nil
}

// DeleteReviewer removes the reviewer and all their reviews in one transaction.
func (s *ReviewerService) DeleteReviewer(ctx context.Context, id int64) error {
	if err := ensureExists(ctx, "Reviewer", id, s.repos.Reviewer.Exists); err != nil {
		return err
	}

	var affected []int64
	err := s.repos.WithTx(ctx, func(tx *repository.Repositories) error {
		ids, err := tx.Review.DeleteByReviewer(ctx, id)
		if err != nil {
			return err
		}
		affected = ids
		return tx.Reviewer.Delete(ctx, id)
	})
	if err != nil {
		return deleteFailed(ctx, err, "reviewer")
	}

	s.refresh(ctx, affected...)
	return nil
}
