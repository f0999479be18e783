package router

import (
	"github.com/deppfellow/pokemon-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerPokemonRoutes(api *echo.Group, h *handler.PokemonHandler) {
	g := api.Group("/pokemon")
	g.GET("", h.GetPokemons)
	g.POST("", h.CreatePokemon)
	g.GET("/:pokeId", h.GetPokemon)
	g.PUT("/:pokeId", h.UpdatePokemon)
	g.DELETE("/:pokeId", h.DeletePokemon)
	g.GET("/:pokeId/rating", h.GetPokemonRating)
}

func registerCategoryRoutes(api *echo.Group, h *handler.CategoryHandler) {
	g := api.Group("/category")
	g.GET("", h.GetCategories)
	g.POST("", h.CreateCategory)
	g.GET("/:categoryId", h.GetCategory)
	g.PUT("/:categoryId", h.UpdateCategory)
	g.DELETE("/:categoryId", h.DeleteCategory)
	g.GET("/pokemon/:categoryId", h.GetPokemonByCategoryID)
}

func registerCountryRoutes(api *echo.Group, h *handler.CountryHandler) {
	g := api.Group("/country")
	g.GET("", h.GetCountries)
	g.POST("", h.CreateCountry)
	g.GET("/:countryId", h.GetCountry)
	g.PUT("/:countryId", h.UpdateCountry)
	g.DELETE("/:countryId", h.DeleteCountry)
	g.GET("/:countryId/owners", h.GetOwnersFromCountry)
	g.GET("/owners/:ownerId", h.GetCountryOfAnOwner)
}

// The :pokeId segment of /owner/:pokeId/owners shares a tree node with
// :ownerId; Echo keeps parameter names per route.
func registerOwnerRoutes(api *echo.Group, h *handler.OwnerHandler) {
	g := api.Group("/owner")
	g.GET("", h.GetOwners)
	g.POST("", h.CreateOwner)
	g.GET("/:ownerId", h.GetOwner)
	g.PUT("/:ownerId", h.UpdateOwner)
	g.DELETE("/:ownerId", h.DeleteOwner)
	g.GET("/:ownerId/pokemon", h.GetPokemonByOwner)
	g.GET("/:pokeId/owners", h.GetOwnersOfAPokemon)
}

func registerReviewRoutes(api *echo.Group, h *handler.ReviewHandler) {
	g := api.Group("/review")
	g.GET("", h.GetReviews)
	g.POST("", h.CreateReview)
	g.GET("/:reviewId", h.GetReview)
	g.PUT("/:reviewId", h.UpdateReview)
	g.DELETE("/:reviewId", h.DeleteReview)
	g.GET("/pokemon/:pokeId", h.GetReviewsOfAPokemon)
	g.DELETE("/delete-reviews-by-reviewer/:reviewerId", h.DeleteReviewsByReviewer)
}

func registerReviewerRoutes(api *echo.Group, h *handler.ReviewerHandler) {
	g := api.Group("/reviewer")
	g.GET("", h.GetReviewers)
	g.POST("", h.CreateReviewer)
	g.GET("/:reviewerId", h.GetReviewer)
	g.PUT("/:reviewerId", h.UpdateReviewer)
	g.DELETE("/:reviewerId", h.DeleteReviewer)
	g.GET("/:reviewerId/reviews", h.GetReviewsByReviewer)
}
