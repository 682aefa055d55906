package di

import (
	"context"

	"go.uber.org/zap"

	"clubgraph/application/commands/bus"
	"clubgraph/application/ports"
	querybus "clubgraph/application/queries/bus"
	"clubgraph/infrastructure/cache"
	"clubgraph/infrastructure/config"
	"clubgraph/pkg/auth"
	"clubgraph/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	Cache          *cache.Service
	ClubRepo       ports.ClubRepository
	ConnectionRepo ports.ConnectionRepository
	EventPublisher ports.EventPublisher
	CommandBus     *bus.CommandBus
	QueryBus       *querybus.QueryBus
	JWTValidator   *auth.JWTValidator
	Metrics        *observability.Metrics
	Tracer         *observability.Tracer
	StatsReporter  *observability.CacheStatsReporter
}

// NewContainer builds the full dependency graph by hand. Wire generates
// the same graph for release builds; the manual path keeps local
// iteration free of code generation.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}

	awsCfg, err := ProvideAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	dynamoClient := ProvideDynamoDBClient(awsCfg)
	eventBridgeClient := ProvideEventBridgeClient(awsCfg)
	cloudWatchClient := ProvideCloudWatchClient(awsCfg)

	cacheSvc := ProvideCache(cfg, logger)
	tracer := ProvideTracer(cfg)
	clubRepo := ProvideClubRepository(dynamoClient, cfg, tracer, logger)
	connRepo := ProvideConnectionRepository(dynamoClient, cfg, tracer, logger)
	publisher := ProvideEventPublisher(eventBridgeClient, cfg, logger)
	metrics := ProvideMetrics(cloudWatchClient, cfg, logger)

	validator, err := ProvideJWTValidator(cfg)
	if err != nil {
		return nil, err
	}

	commandBus, err := ProvideCommandBus(clubRepo, connRepo, cacheSvc, publisher, logger)
	if err != nil {
		return nil, err
	}

	queryBus, err := ProvideQueryBus(clubRepo, connRepo, cacheSvc, cfg, logger)
	if err != nil {
		return nil, err
	}

	reporter := observability.NewCacheStatsReporter(metrics, func() observability.CacheStats {
		stats := cacheSvc.Stats()
		return observability.CacheStats{
			Hits:      int64(stats.Hits),
			Misses:    int64(stats.Misses),
			Evictions: int64(stats.Evictions),
			Size:      stats.Items,
		}
	}, 0)
	if cfg.EnableMetrics {
		reporter.Start(ctx)
	}

	return &Container{
		Config:         cfg,
		Logger:         logger,
		Cache:          cacheSvc,
		ClubRepo:       clubRepo,
		ConnectionRepo: connRepo,
		EventPublisher: publisher,
		CommandBus:     commandBus,
		QueryBus:       queryBus,
		JWTValidator:   validator,
		Metrics:        metrics,
		Tracer:         tracer,
		StatsReporter:  reporter,
	}, nil
}

// Shutdown stops background goroutines and flushes the logger.
func (c *Container) Shutdown() {
	if c.Config.EnableMetrics {
		c.StatsReporter.Stop()
	}
	c.Cache.Stop()
	_ = c.Logger.Sync()
}
