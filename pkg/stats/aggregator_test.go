package stats

import (
	"context"
	"errors"
	"sync"
	"testing"

	mocks "github.com/cbodonnell/flagmaster/mocks/github.com/cbodonnell/flagmaster/pkg/repositories"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAggregator_RecordRound(t *testing.T) {
	ctx := context.Background()
	aggregator := NewAggregator(NewKVStore(repositories.NewMemoryRepository()))

	updated, err := aggregator.RecordRound(ctx, types.Outcome{Mode: types.ModeNormal, Score: 100, CorrectCount: 4, ElapsedSeconds: 40, Won: true})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.GamesPlayed)

	updated, err = aggregator.RecordRound(ctx, types.Outcome{Mode: types.ModeNormal, Score: 50, CorrectCount: 2, ElapsedSeconds: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.GamesPlayed)
	assert.Equal(t, 150, updated.TotalScore)
	assert.Equal(t, 100, updated.HighScore)
	assert.Equal(t, 20.0, *updated.FastestGameTime)

	assert.Equal(t, updated, aggregator.Load(ctx, types.ModeNormal))
	assert.Equal(t, Baseline(), aggregator.Load(ctx, types.ModeHard))
}

func TestAggregator_RecordRound_concurrent(t *testing.T) {
	ctx := context.Background()
	aggregator := NewAggregator(NewKVStore(repositories.NewMemoryRepository()))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := aggregator.RecordRound(ctx, types.Outcome{Mode: types.ModeHard, Score: 5, ElapsedSeconds: 100})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got := aggregator.Load(ctx, types.ModeHard)
	assert.Equal(t, 20, got.GamesPlayed)
	assert.Equal(t, 100, got.TotalScore)
}

func TestAggregator_RecordRound_storeFailures(t *testing.T) {
	ctx := context.Background()
	repository := mocks.NewRepository(t)
	repository.EXPECT().Get(mock.Anything, Key(types.ModeNormal)).Return(nil, errors.New("unavailable")).Once()
	repository.EXPECT().Set(mock.Anything, Key(types.ModeNormal), mock.Anything).Return(errors.New("unavailable")).Once()

	aggregator := NewAggregator(NewKVStore(repository))
	updated, err := aggregator.RecordRound(ctx, types.Outcome{Mode: types.ModeNormal, Score: 25, ElapsedSeconds: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.GamesPlayed)
	assert.Equal(t, 25, updated.HighScore)
}

func TestAggregator_nilStore(t *testing.T) {
	aggregator := NewAggregator(nil)
	updated, err := aggregator.RecordRound(context.Background(), types.Outcome{Mode: types.ModeNormal, Score: 25})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.GamesPlayed)
	assert.Equal(t, Baseline(), aggregator.Load(context.Background(), types.ModeNormal))
}

func TestAggregator_RecordRound_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewAggregator(nil).RecordRound(ctx, types.Outcome{Mode: types.ModeNormal})
	assert.ErrorIs(t, err, context.Canceled)
}
