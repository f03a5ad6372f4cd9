// Package persistence selects the account state backend from configuration.
package persistence

import (
	"log/slog"

	"smartlunch/config"
	"smartlunch/internal/domain/repository"
	"smartlunch/internal/infra/persistence/memory"
	"smartlunch/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the account state repository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewAccountStateRepository returns the backend named by storage.driver.
func NewAccountStateRepository(params Params) (repository.AccountStateRepository, error) {
	switch params.Config.Storage.Driver {
	case config.StorageMemory, "":
		params.Logger.Info("Using in-memory account state storage")

		return memory.NewAccountStateRepository(), nil
	case config.StoragePostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using PostgreSQL account state storage")

		return postgres.NewAccountStateRepository(db), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAccountStateRepository),
)
