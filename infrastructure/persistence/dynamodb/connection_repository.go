package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"clubgraph/application/ports"
	"clubgraph/domain/clubs"
	pkgerrors "clubgraph/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ConnectionRepository implements ports.ConnectionRepository using DynamoDB
type ConnectionRepository struct {
	client    *dynamodb.Client
	tableName string
	indexName string
	logger    *zap.Logger
}

// NewConnectionRepository creates a new DynamoDB connection repository
func NewConnectionRepository(client *dynamodb.Client, tableName, indexName string, logger *zap.Logger) *ConnectionRepository {
	return &ConnectionRepository{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		logger:    logger,
	}
}

// connectionItem represents the DynamoDB item structure for a connection
type connectionItem struct {
	PK               string  `dynamodbav:"PK"`
	SK               string  `dynamodbav:"SK"`
	GSI1PK           string  `dynamodbav:"GSI1PK"`
	GSI1SK           string  `dynamodbav:"GSI1SK"`
	EntityType       string  `dynamodbav:"EntityType"`
	ConnectionID     string  `dynamodbav:"ConnectionID"`
	SourceClubID     string  `dynamodbav:"SourceClubID"`
	TargetClubID     string  `dynamodbav:"TargetClubID"`
	Type             string  `dynamodbav:"Type"`
	Strength         int     `dynamodbav:"Strength"`
	ReliabilityScore float64 `dynamodbav:"ReliabilityScore"`
	IsVerified       bool    `dynamodbav:"IsVerified"`
	Notes            string  `dynamodbav:"Notes,omitempty"`
	CreatedAt        string  `dynamodbav:"CreatedAt"`
	UpdatedAt        string  `dynamodbav:"UpdatedAt"`
}

func connectionKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "CONNECTION#" + id},
		"SK": &types.AttributeValueMemberS{Value: metadataSortKey},
	}
}

// Save persists a connection
func (r *ConnectionRepository) Save(ctx context.Context, conn *clubs.Connection) error {
	item := connectionItem{
		PK:               "CONNECTION#" + conn.ID,
		SK:               metadataSortKey,
		GSI1PK:           "ENTITY#" + connectionEntityType,
		GSI1SK:           conn.CreatedAt.UTC().Format(time.RFC3339Nano),
		EntityType:       connectionEntityType,
		ConnectionID:     conn.ID,
		SourceClubID:     conn.SourceClubID,
		TargetClubID:     conn.TargetClubID,
		Type:             string(conn.Type),
		Strength:         conn.Strength,
		ReliabilityScore: conn.ReliabilityScore,
		IsVerified:       conn.IsVerified,
		Notes:            conn.Notes,
		CreatedAt:        conn.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        conn.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal connection", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("Failed to save connection",
			zap.String("connectionID", conn.ID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("save connection", err)
	}

	return nil
}

// FindByID returns the connection or a not-found error
func (r *ConnectionRepository) FindByID(ctx context.Context, id string) (*clubs.Connection, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       connectionKey(id),
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get connection", err)
	}
	if out.Item == nil {
		return nil, pkgerrors.NewNotFoundError("connection")
	}

	var item connectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, pkgerrors.NewDatabaseError("unmarshal connection", err)
	}

	return item.toDomain()
}

// FindPage returns one page of connections matching the filter plus the
// total match count
func (r *ConnectionRepository) FindPage(ctx context.Context, filter ports.ConnectionFilter) ([]*clubs.Connection, int, error) {
	var conds []expression.ConditionBuilder
	if filter.ClubID != "" {
		conds = append(conds, expression.Name("SourceClubID").Equal(expression.Value(filter.ClubID)).
			Or(expression.Name("TargetClubID").Equal(expression.Value(filter.ClubID))))
	}
	if filter.Type != "" {
		conds = append(conds, expression.Name("Type").Equal(expression.Value(string(filter.Type))))
	}

	matched, err := r.queryConnections(ctx, combine(conds))
	if err != nil {
		return nil, 0, err
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := len(matched)
	start := filter.Offset
	if start > total {
		start = total
	}
	end := total
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}

	return matched[start:end], total, nil
}

// FindForClub returns every connection touching the club
func (r *ConnectionRepository) FindForClub(ctx context.Context, clubID string) ([]*clubs.Connection, error) {
	cond := expression.Name("SourceClubID").Equal(expression.Value(clubID)).
		Or(expression.Name("TargetClubID").Equal(expression.Value(clubID)))
	return r.queryConnections(ctx, &cond)
}

// FindAll returns every connection
func (r *ConnectionRepository) FindAll(ctx context.Context) ([]*clubs.Connection, error) {
	return r.queryConnections(ctx, nil)
}

// Delete removes a connection; deleting an absent one is a not-found error
func (r *ConnectionRepository) Delete(ctx context.Context, id string) error {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          connectionKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return pkgerrors.NewDatabaseError("delete connection", err)
	}
	if out.Attributes == nil {
		return pkgerrors.NewNotFoundError("connection")
	}
	return nil
}

func (r *ConnectionRepository) queryConnections(ctx context.Context, filterExpr *expression.ConditionBuilder) ([]*clubs.Connection, error) {
	builder := expression.NewBuilder().
		WithKeyCondition(expression.Key("GSI1PK").Equal(expression.Value("ENTITY#" + connectionEntityType)))
	if filterExpr != nil {
		builder = builder.WithFilter(*filterExpr)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("build connection query", err)
	}

	var result []*clubs.Connection
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(r.indexName),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			r.logger.Error("Failed to query connections", zap.Error(err))
			return nil, pkgerrors.NewDatabaseError("query connections", err)
		}

		var items []connectionItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, pkgerrors.NewDatabaseError("unmarshal connections", err)
		}
		for i := range items {
			conn, err := items[i].toDomain()
			if err != nil {
				return nil, err
			}
			result = append(result, conn)
		}

		lastKey = out.LastEvaluatedKey
		if lastKey == nil {
			break
		}
	}

	return result, nil
}

func combine(conds []expression.ConditionBuilder) *expression.ConditionBuilder {
	if len(conds) == 0 {
		return nil
	}
	combined := conds[0]
	for _, c := range conds[1:] {
		combined = combined.And(c)
	}
	return &combined
}

func (item *connectionItem) toDomain() (*clubs.Connection, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("parse connection timestamps", fmt.Errorf("CreatedAt %q: %w", item.CreatedAt, err))
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, item.UpdatedAt)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("parse connection timestamps", fmt.Errorf("UpdatedAt %q: %w", item.UpdatedAt, err))
	}

	return &clubs.Connection{
		ID:               item.ConnectionID,
		SourceClubID:     item.SourceClubID,
		TargetClubID:     item.TargetClubID,
		Type:             clubs.ConnectionType(item.Type),
		Strength:         item.Strength,
		ReliabilityScore: item.ReliabilityScore,
		IsVerified:       item.IsVerified,
		Notes:            item.Notes,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}
