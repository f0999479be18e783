package service

import (
	"context"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/mapper"
	"github.com/deppfellow/pokemon-api/internal/repository"
	"github.com/rs/zerolog"
)

// ratingRefresher drops cached ratings after review writes and schedules
// their recomputation.
type ratingRefresher struct {
	cache  *RatingCache
	warmer RatingWarmer
}

func (r ratingRefresher) refresh(ctx context.Context, pokemonIDs ...int64) {
	r.cache.Invalidate(ctx, pokemonIDs...)

	if r.warmer == nil {
		return
	}
	for _, id := range pokemonIDs {
		if err := r.warmer.EnqueueRatingWarm(ctx, id); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Int64("pokemon_id", id).Msg("could not schedule rating warm-up")
		}
	}
}

type ReviewService struct {
	ratingRefresher
	repos *repository.Repositories
}

func NewReviewService(repos *repository.Repositories, cache *RatingCache, warmer RatingWarmer) *ReviewService {
	return &ReviewService{
		ratingRefresher: ratingRefresher{cache: cache, warmer: warmer},
		repos:           repos,
	}
}

func (s *ReviewService) GetReviews(ctx context.Context) ([]dto.ReviewDTO, error) {
	reviews, err := s.repos.Review.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(reviews, mapper.ReviewToDTO), nil
}

func (s *ReviewService) GetReview(ctx context.Context, id int64) (dto.ReviewDTO, error) {
	if err := ensureExists(ctx, "Review", id, s.repos.Review.Exists); err != nil {
		return dto.ReviewDTO{}, err
	}

	review, err := s.repos.Review.GetByID(ctx, id)
	if err != nil {
		return dto.ReviewDTO{}, err
	}
	return mapper.ReviewToDTO(review), nil
}

func (s *ReviewService) GetReviewsOfAPokemon(ctx context.Context, pokemonID int64) ([]dto.ReviewDTO, error) {
	if err := ensureExists(ctx, "Pokemon", pokemonID, s.repos.Pokemon.Exists); err != nil {
		return nil, err
	}

	reviews, err := s.repos.Review.GetReviewsOfAPokemon(ctx, pokemonID)
	if err != nil {
		return nil, err
	}
	return mapper.Slice(reviews, mapper.ReviewToDTO), nil
}

// CreateReview attaches the review to an existing reviewer and pokemon.
func (s *ReviewService) CreateReview(ctx context.Context, reviewerID, pokemonID int64, in dto.ReviewDTO) error {
	duplicate, err := s.repos.Review.TitleExists(ctx, in.Title)
	if err != nil {
		return err
	}
	if duplicate {
		return alreadyExists("Review")
	}

	if err := ensureExists(ctx, "Reviewer", reviewerID, s.repos.Reviewer.Exists); err != nil {
		return err
	}
	if err := ensureExists(ctx, "Pokemon", pokemonID, s.repos.Pokemon.Exists); err != nil {
		return err
	}

	review := mapper.ReviewFromDTO(in)
	review.PokemonID = pokemonID
	review.ReviewerID = reviewerID

	if _, err := s.repos.Review.Create(ctx, review); err != nil {
		return saveFailed(ctx, err)
	}

	s.refresh(ctx, pokemonID)
	return nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, id int64, in dto.ReviewDTO) error {
	if id != in.ID {
		return pathMismatch(id, in.ID)
	}
	if err := ensureExists(ctx, "Review", id, s.repos.Review.Exists); err != nil {
		return err
	}

	current, err := s.repos.Review.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repos.Review.Update(ctx, mapper.ReviewFromDTO(in)); err != nil {
		return writeFailed(ctx, err, errNotUpdated("review"))
	}

	s.refresh(ctx, current.PokemonID)
	return nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id int64) error {
	if err := ensureExists(ctx, "Review", id, s.repos.Review.Exists); err != nil {
		return err
	}

	current, err := s.repos.Review.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repos.Review.Delete(ctx, id); err != nil {
		return deleteFailed(ctx, err, "review")
	}

	s.refresh(ctx, current.PokemonID)
	return nil
}

// DeleteReviewsByReviewer removes every review of the reviewer with a single statement.
func (s *ReviewService) DeleteReviewsByReviewer(ctx context.Context, reviewerID int64) error {
	if err := ensureExists(ctx, "Reviewer", reviewerID, s.repos.Reviewer.Exists); err != nil {
		return err
	}

	affected, err := s.repos.Review.DeleteByReviewer(ctx, reviewerID)
	if err != nil {
		return deleteFailed(ctx, err, "reviews")
	}

	s.refresh(ctx, affected...)
	return nil
}
