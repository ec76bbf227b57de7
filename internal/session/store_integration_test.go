//go:build integration

package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aishuu11/hackathon-2025/internal/config"
)

func TestSQLStore_Postgres(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("nutribot_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://test:test@%s:%s/nutribot_test?sslmode=disable", host, port.Port())

	store, err := OpenSQLStore(ctx, DriverPostgres, dsn)
	require.NoError(t, err)
	defer store.Close()

	m := NewManager(nil, newEngine(t), store, nil)
	res, err := m.Chat(ctx, "", "start")
	require.NoError(t, err)
	_, err = m.Chat(ctx, res.SessionID, "muscle")
	require.NoError(t, err)

	rec, err := store.Load(ctx, res.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Turns)
	assert.Equal(t, 2, rec.Profile.OnboardingStep)
}

func TestCacheStore_Redis(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.4-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	store, err := Open(ctx, redisSessionConfig(fmt.Sprintf("%s:%s", host, port.Port())))
	require.NoError(t, err)
	defer store.Close()

	m := NewManager(nil, newEngine(t), store, nil)
	res, err := m.Chat(ctx, "", "start")
	require.NoError(t, err)

	_, p, err := m.Profile(ctx, res.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.OnboardingStep)

	require.NoError(t, store.(Purger).Purge(ctx))
	_, err = store.Load(ctx, res.SessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func redisSessionConfig(addr string) config.SessionConfig {
	cfg := config.DefaultConfig().Session
	cfg.Driver = "redis"
	cfg.Redis.Addr = addr
	return cfg
}
