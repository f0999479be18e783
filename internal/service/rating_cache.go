package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/pokemon-api/internal/dto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	ratingKeyPrefix     = "pokemon:rating:"
	generationKeyPrefix = "pokemon:rating-gen:"

	// generationTTL must outlive any rating computation.
	generationTTL = 24 * time.Hour
)

var errStaleRating = errors.New("rating invalidated while it was computed")

// RatingCache is a read-through Redis cache of pokemon ratings.
//
// Every Invalidate bumps a per-pokemon generation counter. A rating is only
// stored by Set when the generation it was computed under is still current,
// so a slow reader cannot write back a value that predates a review write.
//
// A nil *RatingCache is valid and caches nothing. Redis failures are logged
// and treated as misses.
type RatingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRatingCache returns nil when client is nil.
func NewRatingCache(client *redis.Client, ttl time.Duration) *RatingCache {
	if client == nil {
		return nil
	}
	return &RatingCache{client: client, ttl: ttl}
}

func ratingKey(pokemonID int64) string {
	return fmt.Sprintf("%s%d", ratingKeyPrefix, pokemonID)
}

func generationKey(pokemonID int64) string {
	return fmt.Sprintf("%s%d", generationKeyPrefix, pokemonID)
}

func (c *RatingCache) Get(ctx context.Context, pokemonID int64) (dto.PokemonRatingDTO, bool) {
	if c == nil {
		return dto.PokemonRatingDTO{}, false
	}

	raw, err := c.client.Get(ctx, ratingKey(pokemonID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			zerolog.Ctx(ctx).Warn().Err(err).Int64("pokemon_id", pokemonID).Msg("rating cache read failed")
		}
		return dto.PokemonRatingDTO{}, false
	}

	var rating dto.PokemonRatingDTO
	if err := json.Unmarshal(raw, &rating); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("pokemon_id", pokemonID).Msg("rating cache entry is corrupt")
		return dto.PokemonRatingDTO{}, false
	}
	return rating, true
}

// Generation returns the invalidation counter of pokemonID. Read it before
// computing a rating and hand it to Set.
func (c *RatingCache) Generation(ctx context.Context, pokemonID int64) int64 {
	if c == nil {
		return 0
	}

	gen, err := c.client.Get(ctx, generationKey(pokemonID)).Int64()
	if err != nil && err != redis.Nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("pokemon_id", pokemonID).Msg("rating generation read failed")
	}
	return gen
}

// Set stores rating if no invalidation happened since gen was read.
func (c *RatingCache) Set(ctx context.Context, rating dto.PokemonRatingDTO, gen int64) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(rating)
	if err != nil {
		return
	}

	key := ratingKey(rating.PokemonID)
	genKey := generationKey(rating.PokemonID)

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if current != gen {
			return errStaleRating
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleRating), errors.Is(err, redis.TxFailedErr):
		zerolog.Ctx(ctx).Debug().Int64("pokemon_id", rating.PokemonID).Msg("rating changed while computed, not cached")
	default:
		zerolog.Ctx(ctx).Warn().Err(err).Int64("pokemon_id", rating.PokemonID).Msg("rating cache write failed")
	}
}

// Invalidate drops the cached ratings and bumps their generations.
func (c *RatingCache) Invalidate(ctx context.Context, pokemonIDs ...int64) {
	if c == nil || len(pokemonIDs) == 0 {
		return
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range pokemonIDs {
			pipe.Incr(ctx, generationKey(id))
			pipe.Expire(ctx, generationKey(id), generationTTL)
			pipe.Del(ctx, ratingKey(id))
		}
		return nil
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Ints64("pokemon_ids", pokemonIDs).Msg("rating cache invalidation failed")
	}
}
