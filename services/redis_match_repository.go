package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skillswap_server/metrics"
	"skillswap_server/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisMatchRepository stores each user's record as a JSON string under
// <prefix><userId>, e.g. "matches:abc123".
type RedisMatchRepository struct {
	Client    *redis.Client
	KeyPrefix string
	Logger    *zap.Logger
}

func NewRedisMatchRepository(client *redis.Client, keyPrefix string, logger *zap.Logger) *RedisMatchRepository {
	if keyPrefix == "" {
		keyPrefix = "matches:"
	}
	return &RedisMatchRepository{Client: client, KeyPrefix: keyPrefix, Logger: logger}
}

func (r *RedisMatchRepository) key(userID string) string {
	return r.KeyPrefix + userID
}

func (r *RedisMatchRepository) Load(ctx context.Context, userID string, defaults models.MatchCollections) (models.MatchCollections, error) {
	raw, err := r.Client.Get(ctx, r.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.Logger.Info("🌱 No match record yet, seeding defaults", zap.String("userId", userID))
		if err := r.Save(ctx, userID, defaults); err != nil {
			return models.MatchCollections{}, err
		}
		return defaults.Normalized(), nil
	}
	if err != nil {
		return models.MatchCollections{}, fmt.Errorf("failed to load matches for %s: %w", userID, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		r.Logger.Warn("⚠️ Stored match record is not valid JSON, using defaults", zap.String("userId", userID), zap.Error(err))
		return defaults.Normalized(), nil
	}

	out := defaults.Normalized()
	var pending []models.PendingMatch
	if r.decodeList(fields, "pending", &pending) {
		out.Pending = pending
	}
	var active []models.ActiveMatch
	if r.decodeList(fields, "active", &active) {
		out.Active = active
	}
	var completed []models.CompletedMatch
	if r.decodeList(fields, "completed", &completed) {
		out.Completed = completed
	}
	return out.Normalized(), nil
}

// decodeList decodes fields[field] into dst when it is a JSON array.
func (r *RedisMatchRepository) decodeList(fields map[string]json.RawMessage, field string, dst interface{}) bool {
	raw, ok := fields[field]
	if !ok || len(raw) == 0 || raw[0] != '[' {
		r.Logger.Warn("⚠️ Stored field is not a list, using defaults", zap.String("field", field))
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		r.Logger.Warn("⚠️ Stored field is malformed, using defaults", zap.String("field", field), zap.Error(err))
		return false
	}
	return true
}

func (r *RedisMatchRepository) Save(ctx context.Context, userID string, collections models.MatchCollections) error {
	start := time.Now()
	payload, err := json.Marshal(collections.Normalized())
	if err != nil {
		return fmt.Errorf("failed to encode matches: %w", err)
	}
	err = r.Client.Set(ctx, r.key(userID), payload, 0).Err()
	metrics.ObserveRepositorySave("redis", start, err)
	if err != nil {
		return fmt.Errorf("failed to save matches for %s: %w", userID, err)
	}
	return nil
}

func (r *RedisMatchRepository) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
