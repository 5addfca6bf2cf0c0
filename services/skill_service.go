package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SkillService stores the skills users list on their profiles.
type SkillService struct {
	Dynamo *DynamoService
	Logger *zap.Logger
}

func (s *SkillService) AddSkill(ctx context.Context, userID, skill string) (*models.Skill, error) {
	skill = strings.TrimSpace(skill)
	if userID == "" || skill == "" {
		return nil, fmt.Errorf("%w: userId and skill are required", ErrInvalidInput)
	}

	entry := models.Skill{
		UserID:    userID,
		SkillID:   uuid.New().String(),
		Skill:     skill,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, entry.TableName(), entry); err != nil {
		return nil, fmt.Errorf("failed to add skill: %w", err)
	}
	s.Logger.Info("✅ Skill added", zap.String("userId", userID), zap.String("skill", skill))
	return &entry, nil
}

// ListSkills returns the skills of userID, or of everyone when userID is empty.
func (s *SkillService) ListSkills(ctx context.Context, userID string) ([]models.Skill, error) {
	tableName := models.Skill{}.TableName()

	var items []map[string]types.AttributeValue
	var err error
	if userID == "" {
		items, err = s.Dynamo.ScanItems(ctx, tableName)
	} else {
		items, err = s.Dynamo.QueryItems(ctx, tableName, "#userId = :userId",
			map[string]types.AttributeValue{
				":userId": &types.AttributeValueMemberS{Value: userID},
			},
			map[string]string{"#userId": "userId"},
		)
	}
	if err != nil {
		return nil, err
	}

	skills := []models.Skill{}
	if err := attributevalue.UnmarshalListOfMaps(items, &skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	return skills, nil
}
