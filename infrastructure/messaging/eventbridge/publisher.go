// Package eventbridge publishes mutation notifications to an AWS
// EventBridge bus so downstream consumers (audit trails, search
// indexers) can react to club and connection changes.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"clubgraph/application/ports"
)

const (
	eventSource = "clubgraph"
	detailType  = "clubgraph.mutation"
)

// mutationDetail is the JSON payload placed on the bus for every mutation.
type mutationDetail struct {
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher implements ports.EventPublisher using AWS EventBridge.
type Publisher struct {
	client       *eventbridge.Client
	eventBusName string
	logger       *zap.Logger
}

// NewPublisher creates an EventBridge-backed mutation publisher.
func NewPublisher(client *eventbridge.Client, eventBusName string, logger *zap.Logger) ports.EventPublisher {
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		logger:       logger,
	}
}

// PublishMutation sends a single mutation notification. The caller treats
// failures as non-fatal; the mutation itself has already been persisted.
func (p *Publisher) PublishMutation(ctx context.Context, entityType, entityID, action string) error {
	detail := mutationDetail{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to marshal mutation detail: %w", err)
	}

	input := &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.eventBusName),
				Source:       aws.String(eventSource),
				DetailType:   aws.String(detailType),
				Detail:       aws.String(string(payload)),
				Time:         aws.Time(detail.OccurredAt),
				Resources: []string{
					fmt.Sprintf("arn:aws:clubgraph::%s/%s", entityType, entityID),
				},
			},
		},
	}

	result, err := p.client.PutEvents(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to publish mutation to EventBridge: %w", err)
	}

	if result.FailedEntryCount > 0 {
		for _, entry := range result.Entries {
			if entry.ErrorCode != nil {
				p.logger.Error("EventBridge rejected mutation event",
					zap.String("entityType", entityType),
					zap.String("entityId", entityID),
					zap.String("action", action),
					zap.String("errorCode", aws.ToString(entry.ErrorCode)),
					zap.String("errorMessage", aws.ToString(entry.ErrorMessage)),
				)
			}
		}
		return fmt.Errorf("mutation event rejected by EventBridge")
	}

	p.logger.Debug("Mutation published",
		zap.String("entityType", entityType),
		zap.String("entityId", entityID),
		zap.String("action", action),
		zap.String("eventBus", p.eventBusName),
	)

	return nil
}

// NoopPublisher discards mutation notifications. Used when no event bus
// is configured, for example in local development.
type NoopPublisher struct {
	logger *zap.Logger
}

// NewNoopPublisher creates a publisher that logs and drops every event.
func NewNoopPublisher(logger *zap.Logger) ports.EventPublisher {
	return &NoopPublisher{logger: logger}
}

// PublishMutation logs the mutation at debug level and returns nil.
func (p *NoopPublisher) PublishMutation(_ context.Context, entityType, entityID, action string) error {
	p.logger.Debug("Mutation event dropped, no event bus configured",
		zap.String("entityType", entityType),
		zap.String("entityId", entityID),
		zap.String("action", action),
	)
	return nil
}
