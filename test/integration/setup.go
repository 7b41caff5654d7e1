package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"heladeria/internal/handler"
	"heladeria/internal/repository"
	"heladeria/internal/router"
	"heladeria/internal/service"

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
	Repo      repository.HeladoRepository
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and the helados table.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

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

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	logger := zerolog.Nop()
	pool, err := repository.NewPool(ctx, connStr, repository.DefaultDBConfig(), logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	repo := repository.NewHeladoRepository(pool, logger)
	if err := repo.EnsureSchema(ctx); err != nil {
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
		Repo:      repo,
		ConnStr:   connStr,
	}
}

// NewTestServer wires the full handler stack against the test database.
func NewTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	heladoService := service.NewHeladoService(testDB.Repo, logger)
	heladoHandler := handler.NewHeladoHandler(heladoService, logger)

	return router.New(heladoHandler, logger)
}

// CleanupDB empties the helados table and restarts its ID sequence.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "TRUNCATE helados RESTART IDENTITY"); err != nil {
		t.Fatalf("failed to clean helados table: %v", err)
	}
}
