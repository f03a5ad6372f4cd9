package pubsub

import (
	"context"
	"log/slog"

	"smartlunch/config"
	"smartlunch/internal/domain/constants"
	"smartlunch/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher only logs. Accounts needing a new login are still visible
// through the admin API session endpoint.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishReauthRequired(_ context.Context, event *service.ReauthEvent) error {
	p.logger.Warn("Re-authentication required, no publisher configured",
		slog.String("account", event.Account),
		slog.String("level", event.Level),
		slog.String("reason", event.Reason),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type publisherBuilder func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error)

//nolint:gochecknoglobals
var builders = map[string]publisherBuilder{
	constants.PubSubProviderLocal: func(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	},
	constants.PubSubProviderGoogle: func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		switch {
		case cfg.ProjectID == "":
			return nil, errors.New("project ID is required for google provider")
		case cfg.TopicID == "":
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	},
}

// NewEventPublisher picks the ReauthRequired publisher named by config.
// Without a pubsub section events are only logged.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "reauth_events"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, re-authentication events are logged only")

		return &noopPublisher{logger: logger}, nil
	}

	build, ok := builders[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher, err := build(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Re-authentication events enabled",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
		slog.String("endpoint", cfg.LocalEndpoint),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
