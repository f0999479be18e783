package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRatingWarmTask(t *testing.T) {
	task, err := NewRatingWarmTask(25)
	require.NoError(t, err)

	assert.Equal(t, TaskRatingWarm, task.Type())

	var p RatingWarmPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, int64(25), p.PokemonID)
}

func TestHandleRatingWarmTask(t *testing.T) {
	logger := zerolog.Nop()
	j := &JobService{mux: asynq.NewServeMux(), logger: &logger}

	var warmed int64
	fn := func(ctx context.Context, pokemonID int64) error {
		warmed = pokemonID
		return nil
	}

	task, err := NewRatingWarmTask(7)
	require.NoError(t, err)

	require.NoError(t, j.handleRatingWarmTask(context.Background(), task, fn))
	assert.Equal(t, int64(7), warmed)
}

func TestHandleRatingWarmTaskBadPayloadSkipsRetry(t *testing.T) {
	logger := zerolog.Nop()
	j := &JobService{mux: asynq.NewServeMux(), logger: &logger}

	err := j.handleRatingWarmTask(context.Background(), asynq.NewTask(TaskRatingWarm, []byte("{")), func(context.Context, int64) error {
		t.Fatal("handler must not run")
		return nil
	})
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleRatingWarmRegistersOnMux(t *testing.T) {
	logger := zerolog.Nop()
	j := &JobService{mux: asynq.NewServeMux(), logger: &logger}

	called := false
	j.HandleRatingWarm(func(context.Context, int64) error {
		called = true
		return nil
	})

	task, err := NewRatingWarmTask(1)
	require.NoError(t, err)
	require.NoError(t, j.mux.ProcessTask(context.Background(), task))
	assert.True(t, called)
}
