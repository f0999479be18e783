package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/deppfellow/pokemon-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceNilEncodesAsEmptyArray(t *testing.T) {
	out := Slice([]model.Pokemon(nil), PokemonToDTO)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestSlicePreservesOrder(t *testing.T) {
	in := []model.Category{{ID: 3, Name: "Fire"}, {ID: 1, Name: "Water"}}

	assert.Equal(t, []dto.CategoryDTO{{ID: 3, Name: "Fire"}, {ID: 1, Name: "Water"}}, Slice(in, CategoryToDTO))
}

func TestOwnerFromDTODropsCountry(t *testing.T) {
	o := OwnerFromDTO(dto.OwnerDTO{ID: 7, FirstName: "Ash", LastName: "Ketchum"})

	assert.Nil(t, o.CountryID)
	assert.Equal(t, "Ash Ketchum", o.FullName())
}

func TestReviewRoundTripKeepsRating(t *testing.T) {
	r := model.Review{ID: 2, Title: "Great", Text: "Loved it", Rating: 5, PokemonID: 1, ReviewerID: 9}

	back := ReviewFromDTO(ReviewToDTO(r))
	assert.Equal(t, 5, back.Rating)
	assert.Zero(t, back.PokemonID)
	assert.Zero(t, back.ReviewerID)
}

func TestPokemonDTOJSONNames(t *testing.T) {
	birth := time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC)

	raw, err := json.Marshal(PokemonToDTO(model.Pokemon{ID: 1, Name: "Pikachu", BirthDate: birth}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Pikachu","birthDate":"1996-02-27T00:00:00Z"}`, string(raw))
}
