package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

var sqliteBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = &SQLiteRepository{}

// NewSQLiteRepository opens (or creates) the sqlite database at path and applies the embedded migrations.
func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// a single connection keeps ":memory:" databases consistent across queries
	db.SetMaxOpenConns(1)

	scripts, err := migrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, script := range scripts {
		if _, err := db.ExecContext(ctx, script); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	q, args, err := selectValue(sqliteBuilder, key)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %v", err)
	}

	var value []byte
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{Key: key}
		}
		return nil, fmt.Errorf("failed to scan value: %v", err)
	}

	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	q, args, err := upsertValue(sqliteBuilder, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to build query: %v", err)
	}

	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("failed to upsert value: %v", err)
	}

	return nil
}
