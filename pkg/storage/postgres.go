package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresBackend keeps each collection as a single JSONB document in the
// collections table, read and rewritten whole, matching the file backend's
// contract.
type PostgresBackend struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

const collectionsSchema = `
	CREATE TABLE IF NOT EXISTS collections (
		name       TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

func NewPostgresBackend(config utils.DatabaseConfig, log *zap.Logger) (*PostgresBackend, error) {
	connStr := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable host=%s port=%s",
		config.User, config.Password, config.Name, config.Host, config.Port)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	poolConfig.MaxConns = config.MaxConns
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	if _, err := pool.Exec(ctx, collectionsSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create collections table: %w", err)
	}

	return &PostgresBackend{
		pool: pool,
		log:  log.With(zap.String("storage", "postgres")),
	}, nil
}

func (b *PostgresBackend) Read(name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var data []byte
	err := b.pool.QueryRow(ctx, `SELECT data FROM collections WHERE name = $1`, name).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		b.log.Error("Failed to read collection",
			zap.String("collection", name),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorage, name, err)
	}

	return data, nil
}

func (b *PostgresBackend) Write(name string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := `
		INSERT INTO collections (name, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`

	if _, err := b.pool.Exec(ctx, query, name, data); err != nil {
		b.log.Error("Failed to write collection",
			zap.String("collection", name),
			zap.Error(err),
		)
		return fmt.Errorf("%w: write %s: %v", ErrStorage, name, err)
	}

	return nil
}

func (b *PostgresBackend) Close() {
	b.pool.Close()
}
