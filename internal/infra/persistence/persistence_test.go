package persistence

import (
	"io"
	"log/slog"
	"testing"

	"smartlunch/config"
	"smartlunch/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewAccountStateRepository_Memory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageMemory

	repo, err := NewAccountStateRepository(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, err)
	assert.IsType(t, &memory.AccountStateRepository{}, repo)
}

func TestNewAccountStateRepository_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "redis"

	_, err := NewAccountStateRepository(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestNewAccountStateRepository_PostgresNeedsConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StoragePostgres

	_, err := NewAccountStateRepository(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.ErrorContains(t, err, "postgres config is missing")
}
