// Package dto contains the JSON shapes exchanged with API clients.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decimals are written as JSON numbers, not strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type PokemonDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"`
}

type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CountryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OwnerDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ReviewerDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ReviewDTO struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// PokemonRatingDTO is the average review rating of a pokemon.
type PokemonRatingDTO struct {
	PokemonID   int64           `json:"pokemonId"`
	Rating      decimal.Decimal `json:"rating"`
	ReviewCount int64           `json:"reviewCount"`
}

// Created is the body returned by every successful create.
const Created = "Successfully created"
