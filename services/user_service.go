package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ErrUserExists is returned when registering an id that is already taken.
var ErrUserExists = errors.New("user already exists")

type UserService struct {
	Dynamo *DynamoService
	Logger *zap.Logger
}

// AddUser registers a user. Existing users are never overwritten.
func (us *UserService) AddUser(ctx context.Context, user models.User) (*models.User, error) {
	if user.ID == "" || user.Email == "" {
		return nil, fmt.Errorf("%w: id and email are required", ErrInvalidInput)
	}
	user.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	err := us.Dynamo.PutItemIfAbsent(ctx, models.UsersTable, user, "id")
	if errors.Is(err, ErrConditionFailed) {
		us.Logger.Info("User already exists", zap.String("userId", user.ID))
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}
	us.Logger.Info("✅ User added", zap.String("userId", user.ID))
	return &user, nil
}

// GetUser retrieves a user by id
func (us *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := us.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// ListUsers returns every registered user, oldest first.
func (us *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	items, err := us.Dynamo.ScanItems(ctx, models.UsersTable)
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := attributevalue.UnmarshalListOfMaps(items, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal users: %w", err)
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt < users[j].CreatedAt
	})
	return users, nil
}
