package service

import (
	"github.com/deppfellow/pokemon-api/internal/lib/job"
	"github.com/deppfellow/pokemon-api/internal/repository"
	"github.com/deppfellow/pokemon-api/internal/server"
)

type Services struct {
	Pokemon  *PokemonService
	Category *CategoryService
	Country  *CountryService
	Owner    *OwnerService
	Review   *ReviewService
	Reviewer *ReviewerService
	Job      *job.JobService
}

// NewService wires the services and registers the background job handlers.
// The job server must be started afterwards.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var cache *RatingCache
	if s.Config.Cache.Enabled {
		cache = NewRatingCache(s.Redis, s.Config.Cache.RatingTTL)
	}

	warmer := ratingWarmer(cache, s.Job)

	pokemonService := NewPokemonService(repos, cache, warmer)

	if s.Job != nil {
		s.Job.HandleRatingWarm(pokemonService.WarmRating)
	}

	return &Services{
		Pokemon:  pokemonService,
		Category: NewCategoryService(repos),
		Country:  NewCountryService(repos),
		Owner:    NewOwnerService(repos),
		Review:   NewReviewService(repos, cache, warmer),
		Reviewer: NewReviewerService(repos, cache, warmer),
		Job:      s.Job,
	}, nil
}

// ratingWarmer returns jobs as the warmer only when there is a cache to warm.
// A nil *job.JobService must not become a non-nil interface.
func ratingWarmer(cache *RatingCache, jobs *job.JobService) RatingWarmer {
	if cache == nil || jobs == nil {
		return nil
	}
	return jobs
}
