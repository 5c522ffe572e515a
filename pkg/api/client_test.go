package api

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/cbodonnell/flagmaster/pkg/countries"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/repositories"
	"github.com/cbodonnell/flagmaster/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Client {
	t.Helper()
	pool, err := countries.DefaultPool()
	require.NoError(t, err)
	provider, err := countries.NewPoolProvider(countries.NewPoolProviderOptions{Pool: pool, Seed: 1})
	require.NoError(t, err)

	server := httptest.NewServer(NewRouter(NewAPIServerOptions{
		Provider: provider,
		Store:    stats.NewKVStore(repositories.NewMemoryRepository()),
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(NewClientOptions{BaseURL: server.URL + "/"})
	require.NoError(t, err)
	return client
}

func TestNewClient_invalidURL(t *testing.T) {
	_, err := NewClient(NewClientOptions{BaseURL: "ftp://example.com"})
	assert.Error(t, err)
}

func TestClient_GetRandomCountries(t *testing.T) {
	client := newTestServer(t)

	list, err := client.GetRandomCountries(context.Background(), 6)
	require.NoError(t, err)
	assert.NoError(t, countries.Validate(list, 6))

	_, err = client.GetRandomCountries(context.Background(), 60)
	assert.True(t, countries.IsPoolTooSmall(err))
}

func TestClient_stats(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	got, err := client.Load(ctx, types.ModeNormal)
	require.NoError(t, err)
	assert.Nil(t, got)

	s := stats.Baseline().Apply(types.Outcome{
		Mode:           types.ModeNormal,
		Score:          100,
		CorrectCount:   4,
		ElapsedSeconds: 42,
		Won:            true,
	})
	require.NoError(t, client.Save(ctx, types.ModeNormal, s))

	got, err = client.Load(ctx, types.ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	got, err = client.Load(ctx, types.ModeHard)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_usableByAggregator(t *testing.T) {
	client := newTestServer(t)
	agg := stats.NewAggregator(client)

	s, err := agg.RecordRound(context.Background(), types.Outcome{Mode: types.ModeHard, Score: 30, CorrectCount: 2, IncorrectCount: 4, ElapsedSeconds: 180})
	require.NoError(t, err)
	assert.Equal(t, 1, s.GamesPlayed)

	loaded, err := client.Load(context.Background(), types.ModeHard)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}
