package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPokemonRatingKeepsExactDecimal(t *testing.T) {
	rating := PokemonRatingDTO{
		PokemonID:   1,
		Rating:      decimal.NewFromInt(10).Div(decimal.NewFromInt(4)),
		ReviewCount: 4,
	}

	raw, err := json.Marshal(rating)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pokemonId":1,"rating":2.5,"reviewCount":4}`, string(raw))

	var back PokemonRatingDTO
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, rating.Rating.Equal(back.Rating))
}
