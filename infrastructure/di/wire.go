//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"clubgraph/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideCache,
	ProvideClubRepository,
	ProvideConnectionRepository,
	ProvideEventPublisher,
	ProvideMetrics,
	ProvideTracer,
	ProvideJWTValidator,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "Config", "Logger", "Cache", "ClubRepo", "ConnectionRepo", "EventPublisher", "CommandBus", "QueryBus", "JWTValidator", "Metrics", "Tracer"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
