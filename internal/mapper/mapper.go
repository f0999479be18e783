// Package mapper converts between persistence entities and DTOs.
//
// Conversions are field by field. Relationship fields (an owner's country,
// a review's pokemon) are not carried by DTOs; services set them explicitly.
package mapper

import (
	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/model"
)

// Slice maps every element of in with fn. A nil input yields an empty,
// non-nil slice so lists encode as [] rather than null.
func Slice[In, Out any](in []In, fn func(In) Out) []Out {
	out := make([]Out, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func PokemonToDTO(p model.Pokemon) dto.PokemonDTO {
	return dto.PokemonDTO{ID: p.ID, Name: p.Name, BirthDate: p.BirthDate}
}

func PokemonFromDTO(d dto.PokemonDTO) model.Pokemon {
	return model.Pokemon{ID: d.ID, Name: d.Name, BirthDate: d.BirthDate}
}

func CategoryToDTO(c model.Category) dto.CategoryDTO {
	return dto.CategoryDTO{ID: c.ID, Name: c.Name}
}

func CategoryFromDTO(d dto.CategoryDTO) model.Category {
	return model.Category{ID: d.ID, Name: d.Name}
}

func CountryToDTO(c model.Country) dto.CountryDTO {
	return dto.CountryDTO{ID: c.ID, Name: c.Name}
}

func CountryFromDTO(d dto.CountryDTO) model.Country {
	return model.Country{ID: d.ID, Name: d.Name}
}

func OwnerToDTO(o model.Owner) dto.OwnerDTO {
	return dto.OwnerDTO{ID: o.ID, FirstName: o.FirstName, LastName: o.LastName}
}

// OwnerFromDTO leaves CountryID unset.
func OwnerFromDTO(d dto.OwnerDTO) model.Owner {
	return model.Owner{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName}
}

func ReviewerToDTO(r model.Reviewer) dto.ReviewerDTO {
	return dto.ReviewerDTO{ID: r.ID, FirstName: r.FirstName, LastName: r.LastName}
}

func ReviewerFromDTO(d dto.ReviewerDTO) model.Reviewer {
	return model.Reviewer{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName}
}

func ReviewToDTO(r model.Review) dto.ReviewDTO {
	return dto.ReviewDTO{ID: r.ID, Title: r.Title, Text: r.Text, Rating: r.Rating}
}

// ReviewFromDTO leaves PokemonID and ReviewerID unset.
func ReviewFromDTO(d dto.ReviewDTO) model.Review {
	return model.Review{ID: d.ID, Title: d.Title, Text: d.Text, Rating: d.Rating}
}
