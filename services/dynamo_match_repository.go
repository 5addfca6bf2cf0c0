package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillswap_server/metrics"
	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// matchStateItem is the DynamoDB item layout: one item per user.
type matchStateItem struct {
	UserID string `dynamodbav:"userId"` // Partition Key (PK)
	models.MatchCollections
	UpdatedAt string `dynamodbav:"updatedAt"`
}

// DynamoMatchRepository stores match records in a DynamoDB table keyed by userId.
type DynamoMatchRepository struct {
	Dynamo    *DynamoService
	TableName string
	Logger    *zap.Logger
}

func NewDynamoMatchRepository(dynamo *DynamoService, tableName string, logger *zap.Logger) *DynamoMatchRepository {
	if tableName == "" {
		tableName = models.MatchStatesTable
	}
	return &DynamoMatchRepository{Dynamo: dynamo, TableName: tableName, Logger: logger}
}

func (r *DynamoMatchRepository) Load(ctx context.Context, userID string, defaults models.MatchCollections) (models.MatchCollections, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := r.Dynamo.GetItem(ctx, r.TableName, key)
	if errors.Is(err, ErrItemNotFound) {
		r.Logger.Info("🌱 No match record yet, seeding defaults", zap.String("userId", userID))
		if err := r.Save(ctx, userID, defaults); err != nil {
			return models.MatchCollections{}, err
		}
		return defaults.Normalized(), nil
	}
	if err != nil {
		return models.MatchCollections{}, fmt.Errorf("failed to load matches for %s: %w", userID, err)
	}

	out := defaults.Normalized()
	var pending []models.PendingMatch
	if r.decodeList(item, "pending", &pending) {
		out.Pending = pending
	}
	var active []models.ActiveMatch
	if r.decodeList(item, "active", &active) {
		out.Active = active
	}
	var completed []models.CompletedMatch
	if r.decodeList(item, "completed", &completed) {
		out.Completed = completed
	}
	return out.Normalized(), nil
}

// decodeList unmarshals item[field] into dst when it is a well-formed list.
func (r *DynamoMatchRepository) decodeList(item map[string]types.AttributeValue, field string, dst interface{}) bool {
	list, ok := item[field].(*types.AttributeValueMemberL)
	if !ok {
		r.Logger.Warn("⚠️ Stored field is not a list, using defaults", zap.String("field", field))
		return false
	}
	if err := attributevalue.Unmarshal(list, dst); err != nil {
		r.Logger.Warn("⚠️ Stored field is malformed, using defaults", zap.String("field", field), zap.Error(err))
		return false
	}
	return true
}

func (r *DynamoMatchRepository) Save(ctx context.Context, userID string, collections models.MatchCollections) error {
	start := time.Now()
	item := matchStateItem{
		UserID:           userID,
		MatchCollections: collections.Normalized(),
		UpdatedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	err := r.Dynamo.PutItem(ctx, r.TableName, item)
	metrics.ObserveRepositorySave("dynamodb", start, err)
	if err != nil {
		return fmt.Errorf("failed to save matches for %s: %w", userID, err)
	}
	return nil
}

func (r *DynamoMatchRepository) Ping(ctx context.Context) error {
	return r.Dynamo.Ping(ctx, r.TableName)
}
