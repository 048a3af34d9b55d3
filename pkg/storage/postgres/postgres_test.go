package postgres_test

import (
	"context"
	"fmt"
	"os"
	"recap/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "recap_test"
)

// shared is migrated once in TestMain and reset by every setupTestDB call.
var shared *postgres.PgSQL //nolint: gochecknoglobals

func startPostgres(ctx context.Context) (testcontainers.Container, *postgres.PgSQL, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return container, nil, fmt.Errorf("could not get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return container, nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	pg, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               host,
		Port:               port.Int(),
		Database:           testDB,
		SslMode:            "disable",
		MaxOpenConnections: 4,
		MaxIdleConnections: 1,
	})
	if err != nil {
		return container, nil, err
	}

	if err := pg.Migrate(ctx); err != nil {
		_ = pg.Close()

		return container, nil, err
	}

	return container, pg, nil
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, pg, err := startPostgres(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if container != nil {
			_ = container.Terminate(ctx)
		}
		os.Exit(1)
	}
	shared = pg

	code := m.Run()

	_ = pg.Close()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

// setupTestDB returns the shared storage with every table emptied. The
// returned func empties them again.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()

	reset := func() {
		_, err := shared.DB.ExecContext(context.Background(), `TRUNCATE options, notifications, river_job`)
		require.NoError(t, err)
	}
	reset()

	return shared, reset
}

func TestMigrate_Idempotent(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	require.NoError(t, pg.Migrate(t.Context()))
}
