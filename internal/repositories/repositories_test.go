package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/evgsol/matchpay/internal/logger"
)

// setupPostgres starts a throwaway Postgres container with the full schema.
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS wallets (
			wallet_id UUID PRIMARY KEY,
			user_id UUID NOT NULL UNIQUE,
			balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
			frozen_balance BIGINT NOT NULL DEFAULT 0 CHECK (frozen_balance >= 0),
			currency CHAR(3) NOT NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'active',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id UUID PRIMARY KEY,
			wallet_id UUID NOT NULL REFERENCES wallets(wallet_id),
			type VARCHAR(32) NOT NULL,
			amount BIGINT NOT NULL,
			fee BIGINT NOT NULL DEFAULT 0,
			status VARCHAR(16) NOT NULL,
			reference UUID NOT NULL,
			closed_by UUID,
			metadata JSONB,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			role VARCHAR(16) NOT NULL,
			status VARCHAR(32) NOT NULL DEFAULT 'pending',
			pickup_location VARCHAR(255) NOT NULL,
			delivery_location VARCHAR(255) NOT NULL,
			matched_order_id UUID,
			chat_id UUID,
			escrow_amount BIGINT NOT NULL CHECK (escrow_amount > 0),
			rejected_matches TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_matching
			ON orders (pickup_location, delivery_location, status);`,
		`CREATE TABLE IF NOT EXISTS matches (
			order_id UUID PRIMARY KEY,
			matched_order_id UUID NOT NULL,
			status VARCHAR(32) NOT NULL,
			chat_id UUID,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS channels (
			channel_id UUID PRIMARY KEY,
			user_lo UUID NOT NULL,
			user_hi UUID NOT NULL,
			order_ids TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE (user_lo, user_hi)
		);`,
		`CREATE TABLE IF NOT EXISTS outbox (
			event_id BIGSERIAL PRIMARY KEY,
			aggregate VARCHAR(16) NOT NULL,
			aggregate_id UUID NOT NULL,
			event_type VARCHAR(32) NOT NULL,
			payload JSONB,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			processed_at TIMESTAMP
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}
