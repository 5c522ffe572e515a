package repositories

import (
	"context"
	"fmt"
	"net/url"
)

// Open creates a repository from a connection URL. Supported schemes are
// sqlite://<path>, postgresql://... (or postgres://...) and memory://.
func Open(ctx context.Context, connStr string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		path := u.Host + u.Path
		if path == "" {
			return nil, fmt.Errorf("sqlite connection string has no path")
		}
		repository, err := NewSQLiteRepository(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite repository: %v", err)
		}
		return repository, nil
	case "postgresql", "postgres":
		repository, err := NewPostgresRepository(ctx, u.String())
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres repository: %v", err)
		}
		return repository, nil
	case "memory":
		return NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}
