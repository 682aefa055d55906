// Package dynamodb implements the repository ports on a single
// DynamoDB table. Items share a PK/SK layout and a GSI keyed on entity
// type so list queries can scan one partition per entity kind.
package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"strings"
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

const (
	clubEntityType       = "CLUB"
	connectionEntityType = "CONNECTION"
	metadataSortKey      = "METADATA"
)

// ClubRepository implements ports.ClubRepository using DynamoDB
type ClubRepository struct {
	client    *dynamodb.Client
	tableName string
	indexName string
	logger    *zap.Logger
}

// NewClubRepository creates a new DynamoDB club repository
func NewClubRepository(client *dynamodb.Client, tableName, indexName string, logger *zap.Logger) *ClubRepository {
	return &ClubRepository{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		logger:    logger,
	}
}

// clubItem represents the DynamoDB item structure for a club. The
// Search* attributes carry lowercased copies so filters can match
// case-insensitively without touching the display values.
type clubItem struct {
	PK            string `dynamodbav:"PK"`
	SK            string `dynamodbav:"SK"`
	GSI1PK        string `dynamodbav:"GSI1PK"`
	GSI1SK        string `dynamodbav:"GSI1SK"`
	EntityType    string `dynamodbav:"EntityType"`
	ClubID        string `dynamodbav:"ClubID"`
	Name          string `dynamodbav:"Name"`
	SearchName    string `dynamodbav:"SearchName"`
	ShortName     string `dynamodbav:"ShortName,omitempty"`
	League        string `dynamodbav:"League"`
	City          string `dynamodbav:"City,omitempty"`
	SearchCity    string `dynamodbav:"SearchCity,omitempty"`
	Country       string `dynamodbav:"Country,omitempty"`
	SearchCountry string `dynamodbav:"SearchCountry,omitempty"`
	FoundedYear   int    `dynamodbav:"FoundedYear,omitempty"`
	Stadium       string `dynamodbav:"Stadium,omitempty"`
	CrestURL      string `dynamodbav:"CrestURL,omitempty"`
	IsActive      bool   `dynamodbav:"IsActive"`
	IsVerified    bool   `dynamodbav:"IsVerified"`
	IsFeatured    bool   `dynamodbav:"IsFeatured"`
	CreatedAt     string `dynamodbav:"CreatedAt"`
	UpdatedAt     string `dynamodbav:"UpdatedAt"`
}

func clubKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "CLUB#" + id},
		"SK": &types.AttributeValueMemberS{Value: metadataSortKey},
	}
}

func newClubItem(club *clubs.Club) clubItem {
	return clubItem{
		PK:            "CLUB#" + club.ID,
		SK:            metadataSortKey,
		GSI1PK:        "ENTITY#" + clubEntityType,
		GSI1SK:        strings.ToLower(club.Name),
		EntityType:    clubEntityType,
		ClubID:        club.ID,
		Name:          club.Name,
		SearchName:    strings.ToLower(club.Name),
		ShortName:     club.ShortName,
		League:        string(club.League),
		City:          club.City,
		SearchCity:    strings.ToLower(club.City),
		Country:       club.Country,
		SearchCountry: strings.ToLower(club.Country),
		FoundedYear:   club.FoundedYear,
		Stadium:       club.Stadium,
		CrestURL:      club.CrestURL,
		IsActive:      club.IsActive,
		IsVerified:    club.IsVerified,
		IsFeatured:    club.IsFeatured,
		CreatedAt:     club.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     club.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// Save persists a club
func (r *ClubRepository) Save(ctx context.Context, club *clubs.Club) error {
	av, err := attributevalue.MarshalMap(newClubItem(club))
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal club", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("Failed to save club",
			zap.String("clubID", club.ID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("save club", err)
	}

	return nil
}

// FindByID returns the club or a not-found error
func (r *ClubRepository) FindByID(ctx context.Context, id string) (*clubs.Club, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       clubKey(id),
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get club", err)
	}
	if out.Item == nil {
		return nil, pkgerrors.NewNotFoundError("club")
	}

	var item clubItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, pkgerrors.NewDatabaseError("unmarshal club", err)
	}

	return item.toDomain()
}

// FindPage returns one page of clubs matching the filter plus the total
// match count. Matching rows are collected from the entity-type GSI and
// sorted/sliced in memory: the admin data set is small and DynamoDB has
// no native offset pagination.
func (r *ClubRepository) FindPage(ctx context.Context, filter ports.ClubFilter) ([]*clubs.Club, int, error) {
	matched, err := r.queryClubs(ctx, buildClubFilterExpression(filter))
	if err != nil {
		return nil, 0, err
	}

	sortClubs(matched, filter.SortBy, filter.SortOrder)

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

// FindAll returns every club
func (r *ClubRepository) FindAll(ctx context.Context) ([]*clubs.Club, error) {
	matched, err := r.queryClubs(ctx, nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return matched, nil
}

// Delete removes a club; deleting an absent club is a not-found error
func (r *ClubRepository) Delete(ctx context.Context, id string) error {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          clubKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return pkgerrors.NewDatabaseError("delete club", err)
	}
	if out.Attributes == nil {
		return pkgerrors.NewNotFoundError("club")
	}
	return nil
}

// queryClubs pages through the entity-type GSI, optionally applying a
// filter expression.
func (r *ClubRepository) queryClubs(ctx context.Context, filterExpr *expression.ConditionBuilder) ([]*clubs.Club, error) {
	builder := expression.NewBuilder().
		WithKeyCondition(expression.Key("GSI1PK").Equal(expression.Value("ENTITY#" + clubEntityType)))
	if filterExpr != nil {
		builder = builder.WithFilter(*filterExpr)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("build club query", err)
	}

	var result []*clubs.Club
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
			r.logger.Error("Failed to query clubs", zap.Error(err))
			return nil, pkgerrors.NewDatabaseError("query clubs", err)
		}

		var items []clubItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, pkgerrors.NewDatabaseError("unmarshal clubs", err)
		}
		for i := range items {
			club, err := items[i].toDomain()
			if err != nil {
				return nil, err
			}
			result = append(result, club)
		}

		lastKey = out.LastEvaluatedKey
		if lastKey == nil {
			break
		}
	}

	return result, nil
}

// buildClubFilterExpression translates a ClubFilter into a DynamoDB
// filter expression; nil means no filtering.
func buildClubFilterExpression(filter ports.ClubFilter) *expression.ConditionBuilder {
	var conds []expression.ConditionBuilder

	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		conds = append(conds, expression.Name("SearchName").Contains(search).
			Or(expression.Name("SearchCity").Contains(search)))
	}
	if filter.League != "" {
		conds = append(conds, expression.Name("League").Equal(expression.Value(string(filter.League))))
	}
	if filter.City != "" {
		conds = append(conds, expression.Name("SearchCity").Equal(expression.Value(strings.ToLower(filter.City))))
	}
	if filter.Country != "" {
		conds = append(conds, expression.Name("SearchCountry").Equal(expression.Value(strings.ToLower(filter.Country))))
	}
	if filter.IsActive != nil {
		conds = append(conds, expression.Name("IsActive").Equal(expression.Value(*filter.IsActive)))
	}
	if filter.IsVerified != nil {
		conds = append(conds, expression.Name("IsVerified").Equal(expression.Value(*filter.IsVerified)))
	}
	if filter.IsFeatured != nil {
		conds = append(conds, expression.Name("IsFeatured").Equal(expression.Value(*filter.IsFeatured)))
	}
	if filter.FoundedAfter != 0 {
		conds = append(conds, expression.Name("FoundedYear").GreaterThanEqual(expression.Value(filter.FoundedAfter)))
	}
	if filter.FoundedBefore != 0 {
		conds = append(conds, expression.Name("FoundedYear").LessThanEqual(expression.Value(filter.FoundedBefore)))
	}

	if len(conds) == 0 {
		return nil
	}
	combined := conds[0]
	for _, c := range conds[1:] {
		combined = combined.And(c)
	}
	return &combined
}

func sortClubs(items []*clubs.Club, sortBy, order string) {
	desc := order == "desc"
	sort.SliceStable(items, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "founded_year":
			less = items[i].FoundedYear < items[j].FoundedYear
		case "created_at":
			less = items[i].CreatedAt.Before(items[j].CreatedAt)
		case "updated_at":
			less = items[i].UpdatedAt.Before(items[j].UpdatedAt)
		default:
			less = strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		}
		if desc {
			return !less
		}
		return less
	})
}

func (item *clubItem) toDomain() (*clubs.Club, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("parse club timestamps", fmt.Errorf("CreatedAt %q: %w", item.CreatedAt, err))
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, item.UpdatedAt)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("parse club timestamps", fmt.Errorf("UpdatedAt %q: %w", item.UpdatedAt, err))
	}

	return &clubs.Club{
		ID:          item.ClubID,
		Name:        item.Name,
		ShortName:   item.ShortName,
		League:      clubs.League(item.League),
		City:        item.City,
		Country:     item.Country,
		FoundedYear: item.FoundedYear,
		Stadium:     item.Stadium,
		CrestURL:    item.CrestURL,
		IsActive:    item.IsActive,
		IsVerified:  item.IsVerified,
		IsFeatured:  item.IsFeatured,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
