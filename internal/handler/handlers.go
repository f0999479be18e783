package handler

import (
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/deppfellow/pokemon-api/internal/service"
)

// Handlers groups all HTTP handlers so the router receives a single value.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Pokemon  *PokemonHandler
	Category *CategoryHandler
	Country  *CountryHandler
	Owner    *OwnerHandler
	Review   *ReviewHandler
	Reviewer *ReviewerHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Pokemon:  NewPokemonHandler(s, services.Pokemon),
		Category: NewCategoryHandler(s, services.Category),
		Country:  NewCountryHandler(s, services.Country),
		Owner:    NewOwnerHandler(s, services.Owner),
		Review:   NewReviewHandler(s, services.Review),
		Reviewer: NewReviewerHandler(s, services.Reviewer),
	}
}
