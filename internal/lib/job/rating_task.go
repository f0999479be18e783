package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskRatingWarm recomputes a pokemon's rating and stores it in the cache.
	TaskRatingWarm = "rating:warm"
)

// RatingWarmPayload is the JSON payload of a TaskRatingWarm task.
type RatingWarmPayload struct {
	PokemonID int64 `json:"pokemon_id"`
}

// NewRatingWarmTask builds a low priority task; a lost warm-up only costs a cache miss.
func NewRatingWarmTask(pokemonID int64) (*asynq.Task, error) {
	payload, err := json.Marshal(RatingWarmPayload{PokemonID: pokemonID})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskRatingWarm,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueRatingWarm schedules a cache warm-up for pokemonID.
func (j *JobService) EnqueueRatingWarm(ctx context.Context, pokemonID int64) error {
	task, err := NewRatingWarmTask(pokemonID)
	if err != nil {
		return fmt.Errorf("failed to build rating warm task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue rating warm task: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Int64("pokemon_id", pokemonID).
		Msg("enqueued rating warm task")
	return nil
}
