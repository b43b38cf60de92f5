//go:build e2e

package pgtest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/migrations"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/logger"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	container     *tcpostgres.PostgresContainer
	containerErr  error

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// NewDatabase returns a pool on a freshly migrated database of its own. The
// postgres container is shared across the test process.
func NewDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	info := startContainerOnce(t)
	dbCfg := createDatabase(t, info)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log := logger.Discard()
	pool, cleanup, err := db.Connect(ctx, dbCfg, log)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(cleanup)

	sqlDB, err := db.OpenSQL(dbCfg)
	require.NoError(t, err, "failed to open migration handle")
	defer sqlDB.Close()
	require.NoError(t, migrations.Up(sqlDB, log), "failed to apply migrations")

	return pool, dbCfg
}

func startContainerOnce(t *testing.T) ContainerInfo {
	t.Helper()

	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		container, containerErr = tcpostgres.Run(ctx, "postgres:17",
			tcpostgres.WithDatabase("postgres"),
			tcpostgres.WithUsername(testUser),
			tcpostgres.WithPassword(testPassword),
			testcontainers.CustomizeRequest(testcontainers.GenericContainerRequest{
				ContainerRequest: testcontainers.ContainerRequest{
					// keep data in RAM
					Tmpfs:  map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
					Labels: map[string]string{"purpose": "e2e-tests"},
				},
			}),
			testcontainers.WithWaitStrategy(
				wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
						testUser, testPassword, host, port.Port())
				}).WithStartupTimeout(60*time.Second),
			),
		)
	})
	require.NoError(t, containerErr, "failed to start postgres container")

	ctx := context.Background()
	host, err := container.Host(ctx)
	require.NoError(t, err, "failed to read container host")
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err, "failed to read container port")
	return ContainerInfo{Host: host, Port: port}
}

func createDatabase(t *testing.T, info ContainerInfo) config.DBConfig {
	t.Helper()

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to connect as admin")
	defer adminPool.Close()

	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(min(time.Duration(500+attempt*500)*time.Millisecond, 3*time.Second))
		}
		if _, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName); createErr == nil {
			break
		}
		slog.Warn("retrying test database creation", "attempt", attempt+1, "error", createErr.Error())
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to connect for test database cleanup", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()
		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 16,
	}
}
