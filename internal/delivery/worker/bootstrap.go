// Package worker restores the configured accounts when the process starts.
package worker

import (
	"context"
	"log/slog"

	"smartlunch/config"
	"smartlunch/internal/delivery"
	domainerrors "smartlunch/internal/domain/errors"
	"smartlunch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BootstrapParams holds dependencies for the bootstrap worker
type BootstrapParams struct {
	fx.In

	Cfg       *config.Config
	Logger    *slog.Logger
	AccountUC usecase.AccountUsecase
}

type bootstrap struct {
	accounts  []string
	logger    *slog.Logger
	accountUC usecase.AccountUsecase
}

// NewBootstrap creates the worker that sets up every account listed in config.
func NewBootstrap(params BootstrapParams) delivery.Delivery {
	return &bootstrap{
		accounts:  params.Cfg.Accounts,
		logger:    params.Logger.With(slog.String("component", "bootstrap")),
		accountUC: params.AccountUC,
	}
}

// Serve sets the accounts up one by one. A missing or rejected session
// leaves the account waiting for re-authentication and never stops the
// process.
func (b *bootstrap) Serve(ctx context.Context) error {
	ready := 0
	for _, email := range b.accounts {
		if ctx.Err() != nil {
			return nil
		}

		err := b.accountUC.Setup(ctx, email)
		switch {
		case err == nil:
			ready++
		case errors.Is(err, domainerrors.ErrAccountExists):
			ready++
		case errors.Is(err, domainerrors.ErrNeedsReauth):
			b.logger.Warn("Account needs re-authentication",
				slog.String("account", email),
				slog.Any("error", err),
			)
		default:
			b.logger.Error("Failed to set up account",
				slog.String("account", email),
				slog.Any("error", err),
			)
		}
	}

	b.logger.Info("Configured accounts processed",
		slog.Int("configured", len(b.accounts)),
		slog.Int("ready", ready),
	)

	return nil
}
