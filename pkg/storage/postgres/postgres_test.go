package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"idverify"
	"idverify/pkg/logger"
	"idverify/pkg/storage/postgres"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "postgres"
	pgPassword = "postgres"
	adminDB    = "postgres"
)

// server is the postgres container shared by every test in the package. Each
// test gets its own database on it.
var server struct {
	host string
	port int
}

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not start postgres container:", err)
		os.Exit(1)
	}

	if err := resolveServer(ctx, container); err != nil {
		_ = container.Terminate(ctx)
		fmt.Fprintln(os.Stderr, "could not resolve postgres address:", err)
		os.Exit(1)
	}

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func resolveServer(ctx context.Context, container testcontainers.Container) error {
	host, err := container.Host(ctx)
	if err != nil {
		return err //nolint: wrapcheck
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return err //nolint: wrapcheck
	}
	server.host, server.port = host, port.Int()

	return nil
}

func openAdmin(ctx context.Context) (*sql.DB, error) {
	pool, err := pgxpool.New(ctx, fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, server.host, server.port, adminDB))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return stdlib.OpenDBFromPool(pool), nil
}

// setupTestDB creates a fresh, migrated database and returns a handle to it.
// The returned func closes the handle and drops the database.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	admin, err := openAdmin(ctx)
	require.NoError(t, err)
	name := "idverify_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = admin.ExecContext(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err)

	pg, err := postgres.New(ctx, postgres.Options{
		Username:           pgUser,
		Password:           pgPassword,
		Host:               server.host,
		Port:               server.port,
		Database:           name,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 4,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)

	goose.SetBaseFS(idverify.Migrations)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, pg.DB.(*sql.DB), "migrations"))

	return pg, func() {
		_ = pg.Close()
		_, _ = admin.ExecContext(context.Background(), "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
		_ = admin.Close()
	}
}

func TestPgSQL_Ping(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, pg.Ping(t.Context()))
}
