package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cbodonnell/flagmaster/pkg/log"
	"github.com/jackc/pgx/v5"
)

var postgresBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type PostgresRepository struct {
	conn *pgx.Conn
}

var _ Repository = &PostgresRepository{}

// NewPostgresRepository connects to the database at connStr and applies the embedded migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	if err := conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}
	log.Info("Connected to %s as %s", database, username)

	scripts, err := migrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for i, script := range scripts {
		if _, err := conn.Exec(ctx, script); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) Get(ctx context.Context, key string) ([]byte, error) {
	q, args, err := selectValue(postgresBuilder, key)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %v", err)
	}

	var value []byte
	if err := r.conn.QueryRow(ctx, q, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{Key: key}
		}
		return nil, fmt.Errorf("failed to scan value: %v", err)
	}

	return value, nil
}

func (r *PostgresRepository) Set(ctx context.Context, key string, value []byte) error {
	q, args, err := upsertValue(postgresBuilder, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to build query: %v", err)
	}

	if _, err := r.conn.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("failed to upsert value: %v", err)
	}

	return nil
}
