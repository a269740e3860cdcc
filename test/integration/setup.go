package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"salon-admin/internal/config"
	"salon-admin/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the application schema applied.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool with the application's pool settings
	dbConfig := config.DatabaseConfig{
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPoolFromURL(ctx, connStr, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.Migrate(ctx, pool, logger); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedSalon inserts a small catalog, one membership and two coupons.
func SeedSalon(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	statements := []string{
		`INSERT INTO services (id, name, selling_price, duration, category_id) VALUES
			('svc-cut', 'Haircut', 100, 45, 'hair'),
			('svc-color', 'Colour', 200, 90, 'hair'),
			('svc-facial', 'Facial', 80, 60, NULL)`,
		`INSERT INTO packages (id, name, price, is_customizable) VALUES
			('pkg-glow', 'Glow Up', 240, FALSE)`,
		`INSERT INTO package_services (package_id, service_id, package_selling_price, position) VALUES
			('pkg-glow', 'svc-cut', NULL, 0),
			('pkg-glow', 'svc-color', NULL, 1)`,
		`INSERT INTO employees (id, name) VALUES ('emp-1', 'Alex Kim')`,
		`INSERT INTO customers (id, full_name) VALUES ('cust-1', 'Jordan Lee')`,
		`INSERT INTO memberships (id, name, validity_period, validity_unit, discount_type, discount_value) VALUES
			('mem-gold', 'Gold', 12, 'months', 'percentage', 10)`,
		`INSERT INTO coupons (id, code, discount_type, discount_value, description, is_active) VALUES
			('c-welcome', 'WELCOME', 'percentage', 10, 'First visit', TRUE),
			('c-old', 'EXPIRED', 'fixed', 50, 'Old promotion', FALSE)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			t.Fatalf("failed to seed salon data: %v", err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{
		"bookings", "appointments", "package_services", "packages",
		"services", "employees", "customers", "memberships", "coupons",
	}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
