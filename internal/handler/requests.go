package handler

import (
	"time"

	"github.com/deppfellow/pokemon-api/internal/validation"
)

// ListRequest is the payload of list endpoints; they take no input.
type ListRequest struct{}

func (r *ListRequest) Validate() error { return nil }

// ---- pokemon ----

type PokemonIDRequest struct {
	PokeID int64 `param:"pokeId" json:"-"`
}

func (r *PokemonIDRequest) Validate() error { return validation.Struct(r) }

type CreatePokemonRequest struct {
	OwnerID    int64     `query:"ownerId" json:"-" validate:"required"`
	CategoryID int64     `query:"categoryId" json:"-" validate:"required"`
	ID         int64     `json:"id"`
	Name       string    `json:"name" validate:"required"`
	BirthDate  time.Time `json:"birthDate"`
}

func (r *CreatePokemonRequest) Validate() error { return validation.Struct(r) }

type UpdatePokemonRequest struct {
	PokeID    int64     `param:"pokeId" json:"-"`
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	BirthDate time.Time `json:"birthDate"`
}

func (r *UpdatePokemonRequest) Validate() error { return validation.Struct(r) }

// ---- category ----

type CategoryIDRequest struct {
	CategoryID int64 `param:"categoryId" json:"-"`
}

func (r *CategoryIDRequest) Validate() error { return validation.Struct(r) }

type CreateCategoryRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

func (r *CreateCategoryRequest) Validate() error { return validation.Struct(r) }

type UpdateCategoryRequest struct {
	CategoryID int64  `param:"categoryId" json:"-"`
	ID         int64  `json:"id"`
	Name       string `json:"name" validate:"required"`
}

func (r *UpdateCategoryRequest) Validate() error { return validation.Struct(r) }

// ---- country ----

type CountryIDRequest struct {
	CountryID int64 `param:"countryId" json:"-"`
}

func (r *CountryIDRequest) Validate() error { return validation.Struct(r) }

type CreateCountryRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

func (r *CreateCountryRequest) Validate() error { return validation.Struct(r) }

type UpdateCountryRequest struct {
	CountryID int64  `param:"countryId" json:"-"`
	ID        int64  `json:"id"`
	Name      string `json:"name" validate:"required"`
}

func (r *UpdateCountryRequest) Validate() error { return validation.Struct(r) }

// ---- owner ----

type OwnerIDRequest struct {
	OwnerID int64 `param:"ownerId" json:"-"`
}

func (r *OwnerIDRequest) Validate() error { return validation.Struct(r) }

// CreateOwnerRequest takes an optional countryId query parameter.
type CreateOwnerRequest struct {
	CountryID int64  `query:"countryId" json:"-"`
	ID        int64  `json:"id"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

func (r *CreateOwnerRequest) Validate() error { return validation.Struct(r) }

type UpdateOwnerRequest struct {
	OwnerID   int64  `param:"ownerId" json:"-"`
	ID        int64  `json:"id"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

func (r *UpdateOwnerRequest) Validate() error { return validation.Struct(r) }

// ---- review ----

type ReviewIDRequest struct {
	ReviewID int64 `param:"reviewId" json:"-"`
}

func (r *ReviewIDRequest) Validate() error { return validation.Struct(r) }

type CreateReviewRequest struct {
	ReviewerID int64  `query:"reviewerId" json:"-" validate:"required"`
	PokeID     int64  `query:"pokeId" json:"-" validate:"required"`
	ID         int64  `json:"id"`
	Title      string `json:"title" validate:"required"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
}

func (r *CreateReviewRequest) Validate() error { return validation.Struct(r) }

type UpdateReviewRequest struct {
	ReviewID int64  `param:"reviewId" json:"-"`
	ID       int64  `json:"id"`
	Title    string `json:"title" validate:"required"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
}

func (r *UpdateReviewRequest) Validate() error { return validation.Struct(r) }

// ---- reviewer ----

type ReviewerIDRequest struct {
	ReviewerID int64 `param:"reviewerId" json:"-"`
}

func (r *ReviewerIDRequest) Validate() error { return validation.Struct(r) }

type CreateReviewerRequest struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

func (r *CreateReviewerRequest) Validate() error { return validation.Struct(r) }

type UpdateReviewerRequest struct {
	ReviewerID int64  `param:"reviewerId" json:"-"`
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
}

func (r *UpdateReviewerRequest) Validate() error { return validation.Struct(r) }
