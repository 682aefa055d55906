// Package di wires configuration, AWS clients, repositories, the cache
// and both buses into a runnable container.
package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"clubgraph/application/commands"
	"clubgraph/application/commands/bus"
	commandhandlers "clubgraph/application/commands/handlers"
	"clubgraph/application/ports"
	"clubgraph/application/queries"
	querybus "clubgraph/application/queries/bus"
	queryhandlers "clubgraph/application/queries/handlers"
	"clubgraph/infrastructure/cache"
	"clubgraph/infrastructure/config"
	"clubgraph/infrastructure/messaging/eventbridge"
	ddbrepo "clubgraph/infrastructure/persistence/dynamodb"
	memrepo "clubgraph/infrastructure/persistence/memory"
	"clubgraph/infrastructure/persistence/traced"
	"clubgraph/pkg/auth"
	"clubgraph/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideCache creates the process-wide cache service
func ProvideCache(cfg *config.Config, logger *zap.Logger) *cache.Service {
	return cache.NewService(cfg.CacheDefaultTTL, logger)
}

// ProvideClubRepository selects the club repository by driver and wraps
// it with trace subsegments. A nil tracer leaves the wrapper inert.
func ProvideClubRepository(client *awsdynamodb.Client, cfg *config.Config, tracer *observability.Tracer, logger *zap.Logger) ports.ClubRepository {
	var inner ports.ClubRepository
	if cfg.RepositoryDriver == config.DriverMemory {
		inner = memrepo.NewClubRepository()
	} else {
		inner = ddbrepo.NewClubRepository(client, cfg.DynamoDBTable, cfg.IndexName, logger)
	}
	return traced.NewClubRepository(inner, tracer)
}

// ProvideConnectionRepository selects the connection repository by driver
// and wraps it with trace subsegments.
func ProvideConnectionRepository(client *awsdynamodb.Client, cfg *config.Config, tracer *observability.Tracer, logger *zap.Logger) ports.ConnectionRepository {
	var inner ports.ConnectionRepository
	if cfg.RepositoryDriver == config.DriverMemory {
		inner = memrepo.NewConnectionRepository()
	} else {
		inner = ddbrepo.NewConnectionRepository(client, cfg.DynamoDBTable, cfg.IndexName, logger)
	}
	return traced.NewConnectionRepository(inner, tracer)
}

// ProvideEventPublisher creates the mutation publisher. Without a bus
// name configured, events are dropped.
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return eventbridge.NewNoopPublisher(logger)
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates metrics instance
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	if !cfg.EnableMetrics {
		client = nil
	}
	namespace := fmt.Sprintf("ClubGraph/%s", cfg.Environment)
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideTracer creates the X-Ray tracer; nil disables tracing
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.EnableTracing {
		return nil
	}
	return observability.NewTracer("clubgraph")
}

// ProvideJWTValidator creates the token validator for the HTTP layer
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		Audience:  []string{"clubgraph-api"},
	})
}

// CommandHandlerAdapter lifts a typed handler onto the generic bus interface.
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// QueryHandlerAdapter lifts a typed handler onto the generic bus interface.
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideCommandBus creates a command bus with all mutation handlers registered
func ProvideCommandBus(
	clubRepo ports.ClubRepository,
	connRepo ports.ConnectionRepository,
	cacheSvc *cache.Service,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus()

	createClub := commandhandlers.NewCreateClubHandler(clubRepo, cacheSvc, publisher, logger)
	if err := commandBus.Register(commands.CreateClubCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.CreateClubCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return createClub.Handle(ctx, c)
		},
	}); err != nil {
		return nil, err
	}

	updateClub := commandhandlers.NewUpdateClubHandler(clubRepo, cacheSvc, publisher, logger)
	if err := commandBus.Register(commands.UpdateClubCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.UpdateClubCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return updateClub.Handle(ctx, c)
		},
	}); err != nil {
		return nil, err
	}

	deleteClub := commandhandlers.NewDeleteClubHandler(clubRepo, connRepo, cacheSvc, publisher, logger)
	if err := commandBus.Register(commands.DeleteClubCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.DeleteClubCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return deleteClub.Handle(ctx, c)
		},
	}); err != nil {
		return nil, err
	}

	createConn := commandhandlers.NewCreateConnectionHandler(clubRepo, connRepo, cacheSvc, publisher, logger)
	if err := commandBus.Register(commands.CreateConnectionCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.CreateConnectionCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return createConn.Handle(ctx, c)
		},
	}); err != nil {
		return nil, err
	}

	updateConn := commandhandlers.NewUpdateConnectionHandler(connRepo, cacheSvc, publisher, logger)
	if err := commandBus.Register(commands.UpdateConnectionCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.UpdateConnectionCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return updateConn.Handle(ctx, c)
		},
	}); err != nil {
		return nil, err
	}

	deleteConn := commandhandlers.NewDeleteConnectionHandler(connRepo, cacheSvc, publisher, logger)
	if err := commandBus.Register(commands.DeleteConnectionCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.DeleteConnectionCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return deleteConn.Handle(ctx, c)
		},
	}); err != nil {
		return nil, err
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with all read handlers registered
func ProvideQueryBus(
	clubRepo ports.ClubRepository,
	connRepo ports.ConnectionRepository,
	cacheSvc *cache.Service,
	cfg *config.Config,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	listClubs := queryhandlers.NewListClubsHandler(clubRepo, cacheSvc, cfg.CacheClubsTTL, logger)
	if err := queryBus.Register(queries.ListClubsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.ListClubsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listClubs.Handle(ctx, q)
		},
	}); err != nil {
		return nil, err
	}

	getClub := queryhandlers.NewGetClubHandler(clubRepo, logger)
	if err := queryBus.Register(queries.GetClubQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.GetClubQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getClub.Handle(ctx, q)
		},
	}); err != nil {
		return nil, err
	}

	listConnections := queryhandlers.NewListClubConnectionsHandler(clubRepo, connRepo, cacheSvc, cfg.CacheConnectionsTTL, logger)
	if err := queryBus.Register(queries.ListClubConnectionsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.ListClubConnectionsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listConnections.Handle(ctx, q)
		},
	}); err != nil {
		return nil, err
	}

	graphData := queryhandlers.NewGetGraphDataHandler(clubRepo, connRepo, cacheSvc, cfg.CacheGraphTTL, logger)
	if err := queryBus.Register(queries.GetGraphDataQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.GetGraphDataQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return graphData.Handle(ctx, q)
		},
	}); err != nil {
		return nil, err
	}

	dashboardStats := queryhandlers.NewGetDashboardStatsHandler(clubRepo, connRepo, cacheSvc, cfg.CacheDashboardTTL, logger)
	if err := queryBus.Register(queries.GetDashboardStatsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.GetDashboardStatsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return dashboardStats.Handle(ctx, q)
		},
	}); err != nil {
		return nil, err
	}

	return queryBus, nil
}
