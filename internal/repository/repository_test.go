package repository

import (
	"context"
	"testing"
	"time"

	"salon-admin/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer with the application schema applied.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// exec runs a seed statement and fails the test on error.
func exec(t *testing.T, pool *pgxpool.Pool, query string, args ...any) {
	t.Helper()
	_, err := pool.Exec(context.Background(), query, args...)
	require.NoError(t, err)
}

// seedCatalog inserts a small salon catalog.
func seedCatalog(t *testing.T, pool *pgxpool.Pool) {
	exec(t, pool, `
		INSERT INTO services (id, name, selling_price, duration, category_id) VALUES
			('svc-cut', 'Haircut', 100, 45, 'hair'),
			('svc-color', 'Colour', 200, 90, 'hair'),
			('svc-facial', 'Facial', 80, 60, NULL)
	`)
	exec(t, pool, `
		INSERT INTO packages (id, name, price, is_customizable) VALUES
			('pkg-glow', 'Glow Up', 240, FALSE),
			('pkg-custom', 'Build Your Own', 150, TRUE),
			('pkg-empty', 'Empty', 0, FALSE)
	`)
	exec(t, pool, `
		INSERT INTO package_services (package_id, service_id, package_selling_price, position) VALUES
			('pkg-glow', 'svc-color', NULL, 1),
			('pkg-glow', 'svc-cut', NULL, 0),
			('pkg-custom', 'svc-cut', 90, 0),
			('pkg-custom', 'svc-facial', 60, 1)
	`)
	exec(t, pool, `
		INSERT INTO employees (id, name) VALUES
			('emp-2', 'Sam Rivera'),
			('emp-1', 'Alex Kim')
	`)
	exec(t, pool, `
		INSERT INTO customers (id, full_name) VALUES
			('cust-1', 'Jordan Lee')
	`)
}
