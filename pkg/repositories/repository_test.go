package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLite(t *testing.T) Repository {
	t.Helper()
	repository, err := NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repository.Close(context.Background()) })
	return repository
}

func TestRepositories_GetSet(t *testing.T) {
	repos := map[string]func(t *testing.T) Repository{
		"memory": func(t *testing.T) Repository { return NewMemoryRepository() },
		"sqlite": newSQLite,
	}

	for name, newRepo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repository := newRepo(t)

			_, err := repository.Get(ctx, "flagGame_normalStats")
			require.Error(t, err)
			assert.True(t, IsNotFound(err))

			require.NoError(t, repository.Set(ctx, "flagGame_normalStats", []byte(`{"gamesPlayed":1}`)))
			got, err := repository.Get(ctx, "flagGame_normalStats")
			require.NoError(t, err)
			assert.Equal(t, `{"gamesPlayed":1}`, string(got))

			require.NoError(t, repository.Set(ctx, "flagGame_normalStats", []byte(`{"gamesPlayed":2}`)))
			got, err = repository.Get(ctx, "flagGame_normalStats")
			require.NoError(t, err)
			assert.Equal(t, `{"gamesPlayed":2}`, string(got))

			_, err = repository.Get(ctx, "flagGame_hardStats")
			assert.True(t, IsNotFound(err))
		})
	}
}

func TestSQLiteRepository_reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stats.db")

	first, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", []byte("v")))
	require.NoError(t, first.Close(ctx))

	second, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)
	defer second.Close(ctx)

	got, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestMemoryRepository_copiesValues(t *testing.T) {
	ctx := context.Background()
	repository := NewMemoryRepository()

	value := []byte("abc")
	require.NoError(t, repository.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := repository.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestQueryBuilders(t *testing.T) {
	q, args, err := selectValue(postgresBuilder, "k")
	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM kv_entries WHERE name = $1", q)
	assert.Equal(t, []interface{}{"k"}, args)

	q, args, err = upsertValue(sqliteBuilder, "k", []byte("v"), "now")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO kv_entries (name,value,updated_at) VALUES (?,?,?) "+upsertSuffix, q)
	assert.Len(t, args, 3)
}

func TestMigrations(t *testing.T) {
	for _, dialect := range []string{"sqlite", "postgres"} {
		scripts, err := migrations(dialect)
		require.NoError(t, err)
		assert.NotEmpty(t, scripts, dialect)
	}

	_, err := migrations("mysql")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	repository, err := Open(ctx, "memory://")
	require.NoError(t, err)
	assert.IsType(t, &MemoryRepository{}, repository)

	repository, err = Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "open.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteRepository{}, repository)
	require.NoError(t, repository.Close(ctx))

	_, err = Open(ctx, "mysql://localhost/db")
	assert.Error(t, err)
}
