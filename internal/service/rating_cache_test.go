package service

import (
	"context"
	"testing"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingCacheDropsRatingComputedBeforeInvalidate(t *testing.T) {
	mr, cache := newCache(t)
	ctx := context.Background()
	rating := dto.PokemonRatingDTO{PokemonID: 1, Rating: decimal.NewFromInt(4), ReviewCount: 1}

	// A reader reads the generation, then a review write lands before it stores.
	gen := cache.Generation(ctx, 1)
	cache.Invalidate(ctx, 1)
	cache.Set(ctx, rating, gen)

	_, ok := cache.Get(ctx, 1)
	assert.False(t, ok)
	assert.False(t, mr.Exists("pokemon:rating:1"))

	cache.Set(ctx, rating, cache.Generation(ctx, 1))

	cached, ok := cache.Get(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "4", cached.Rating.String())
}

func TestRatingCacheInvalidateBumpsGeneration(t *testing.T) {
	mr, cache := newCache(t)
	ctx := context.Background()

	assert.Zero(t, cache.Generation(ctx, 3))

	cache.Invalidate(ctx, 3, 4)
	cache.Invalidate(ctx, 3)

	assert.Equal(t, int64(2), cache.Generation(ctx, 3))
	assert.Equal(t, int64(1), cache.Generation(ctx, 4))
	assert.Equal(t, generationTTL, mr.TTL("pokemon:rating-gen:3"))
}

func TestRatingCacheStoresRatingAsJSONNumber(t *testing.T) {
	mr, cache := newCache(t)
	ctx := context.Background()

	rating := dto.PokemonRatingDTO{PokemonID: 2, Rating: decimal.NewFromInt(9).Div(decimal.NewFromInt(2)), ReviewCount: 2}
	cache.Set(ctx, rating, cache.Generation(ctx, 2))

	raw, err := mr.Get("pokemon:rating:2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"pokemonId":2,"rating":4.5,"reviewCount":2}`, raw)
}
