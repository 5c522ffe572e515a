package repositories

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/Masterminds/squirrel"
)

// Repository is a namespaced key-value store for persisted game data.
type Repository interface {
	Close(ctx context.Context) error
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}

const entriesTable = "kv_entries"

const upsertSuffix = "ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"

//go:embed migrations
var migrationsFS embed.FS

// migrations returns the embedded migration scripts for dialect in file name order.
func migrations(dialect string) ([]string, error) {
	dir := path.Join("migrations", dialect)
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	scripts := make([]string, 0, len(names))
	for _, name := range names {
		b, err := fs.ReadFile(migrationsFS, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", name, err)
		}
		scripts = append(scripts, string(b))
	}
	return scripts, nil
}

func selectValue(builder squirrel.StatementBuilderType, key string) (string, []interface{}, error) {
	return builder.
		Select("value").
		From(entriesTable).
		Where(squirrel.Eq{"name": key}).
		ToSql()
}

func upsertValue(builder squirrel.StatementBuilderType, key string, value []byte, now interface{}) (string, []interface{}, error) {
	return builder.
		Insert(entriesTable).
		Columns("name", "value", "updated_at").
		Values(key, value, now).
		Suffix(upsertSuffix).
		ToSql()
}
