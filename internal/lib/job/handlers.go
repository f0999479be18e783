package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// RatingWarmFunc recomputes and caches the rating of one pokemon.
type RatingWarmFunc func(ctx context.Context, pokemonID int64) error

// HandleRatingWarm registers fn as the TaskRatingWarm handler. It must be
// called before Start.
func (j *JobService) HandleRatingWarm(fn RatingWarmFunc) {
	j.mux.HandleFunc(TaskRatingWarm, func(ctx context.Context, t *asynq.Task) error {
		return j.handleRatingWarmTask(ctx, t, fn)
	})
}

func (j *JobService) handleRatingWarmTask(ctx context.Context, t *asynq.Task, fn RatingWarmFunc) error {
	var p RatingWarmPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A malformed payload will never succeed.
		return fmt.Errorf("failed to unmarshal rating warm payload: %v: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", TaskRatingWarm).
		Int64("pokemon_id", p.PokemonID).
		Msg("Processing rating warm task")

	if err := fn(ctx, p.PokemonID); err != nil {
		j.logger.Error().
			Str("type", TaskRatingWarm).
			Int64("pokemon_id", p.PokemonID).
			Err(err).
			Msg("Failed to warm pokemon rating")
		return err
	}

	return nil
}
