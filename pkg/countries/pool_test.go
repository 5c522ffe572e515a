package countries

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPool(t *testing.T) {
	pool, err := DefaultPool()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(pool), 6)

	for _, c := range pool {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.FlagURL)
		assert.NotEmpty(t, c.Continent)
		assert.Equal(t, len([]rune(c.Name)), c.NameLength, c.Name)
	}
	assert.NoError(t, Validate(pool, len(pool)))
}

func TestPoolProvider_GetRandomCountries(t *testing.T) {
	provider, err := NewPoolProvider(NewPoolProviderOptions{Seed: 42})
	require.NoError(t, err)

	for _, count := range []int{0, 4, 6, provider.Size()} {
		got, err := provider.GetRandomCountries(context.Background(), count)
		require.NoError(t, err)
		assert.NoError(t, Validate(got, count))
	}
}

func TestPoolProvider_tooSmall(t *testing.T) {
	provider, err := NewPoolProvider(NewPoolProviderOptions{
		Pool: []Country{
			{ID: 1, Name: "France"},
			{ID: 2, Name: "Japan"},
			{ID: 2, Name: "Japan"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, provider.Size())

	_, err = provider.GetRandomCountries(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, IsPoolTooSmall(err))
}

func TestIsPoolTooSmall(t *testing.T) {
	tooSmall := &ErrPoolTooSmall{Requested: 6, Available: 4}
	assert.True(t, IsPoolTooSmall(tooSmall))
	assert.True(t, IsPoolTooSmall(fmt.Errorf("failed to get countries: %w", tooSmall)))
	assert.False(t, IsPoolTooSmall(fmt.Errorf("failed to get countries: %v", tooSmall)))
	assert.False(t, IsPoolTooSmall(errors.New("offline")))
	assert.False(t, IsPoolTooSmall(nil))
}

func TestPoolProvider_returnsCopies(t *testing.T) {
	provider, err := NewPoolProvider(NewPoolProviderOptions{
		Pool: []Country{{ID: 1, Name: "United States", AlternativeNames: []string{"USA"}}},
	})
	require.NoError(t, err)

	got, err := provider.GetRandomCountries(context.Background(), 1)
	require.NoError(t, err)
	got[0].AlternativeNames[0] = "changed"

	again, err := provider.GetRandomCountries(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "USA", again[0].AlternativeNames[0])
}

func TestPoolProvider_cancelledContext(t *testing.T) {
	provider, err := NewPoolProvider(NewPoolProviderOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = provider.GetRandomCountries(ctx, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		list    []Country
		count   int
		wantErr bool
	}{
		{name: "ok", list: []Country{{ID: 1}, {ID: 2}}, count: 2},
		{name: "short", list: []Country{{ID: 1}}, count: 2, wantErr: true},
		{name: "duplicate", list: []Country{{ID: 1}, {ID: 1}}, count: 2, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.list, tt.count)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
