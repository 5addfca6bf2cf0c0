package services

import (
	"context"
	"encoding/json"
	"testing"

	"skillswap_server/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRedisRepo(t *testing.T) (*RedisMatchRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisMatchRepository(client, "", zap.NewNop()), mr
}

func TestRedisLoadSeedsFirstTime(t *testing.T) {
	repo, mr := setupRedisRepo(t)
	ctx := context.Background()
	defaults := models.DefaultMatchCollections()

	loaded, err := repo.Load(ctx, "u1", defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, loaded)

	raw, err := mr.Get("matches:u1")
	require.NoError(t, err)
	var stored models.MatchCollections
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Len(t, stored.Pending, 2)
	assert.Len(t, stored.Active, 2)
	assert.Len(t, stored.Completed, 2)
}

func TestRedisSaveThenLoad(t *testing.T) {
	repo, mr := setupRedisRepo(t)
	ctx := context.Background()

	want := fixture()
	require.NoError(t, repo.Save(ctx, "u1", want))

	got, err := repo.Load(ctx, "u1", models.DefaultMatchCollections())
	require.NoError(t, err)
	assert.Equal(t, want.Pending, got.Pending)
	assert.Equal(t, want.Active, got.Active)
	assert.Empty(t, got.Completed)

	raw, _ := mr.Get("matches:u1")
	assert.Contains(t, raw, `"completed":[]`)
}

func TestRedisEmptyCollectionsStayEmpty(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "u1", models.MatchCollections{}))

	got, err := repo.Load(ctx, "u1", models.DefaultMatchCollections())
	require.NoError(t, err)
	assert.Empty(t, got.Pending)
	assert.Empty(t, got.Active)
	assert.Empty(t, got.Completed)
}

func TestRedisMalformedFieldFallsBack(t *testing.T) {
	repo, mr := setupRedisRepo(t)
	ctx := context.Background()
	defaults := models.DefaultMatchCollections()

	mr.Set("matches:u1", `{"pending":"oops","active":[{"id":"9","name":"Kim","matchScore":70}],"completed":[{"id":7}]}`)

	got, err := repo.Load(ctx, "u1", defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults.Pending, got.Pending)
	require.Len(t, got.Active, 1)
	assert.Equal(t, "9", got.Active[0].ID)
	assert.Equal(t, defaults.Completed, got.Completed)
}

func TestRedisMissingFieldFallsBack(t *testing.T) {
	repo, mr := setupRedisRepo(t)
	defaults := models.DefaultMatchCollections()

	mr.Set("matches:u1", `{"pending":[]}`)

	got, err := repo.Load(context.Background(), "u1", defaults)
	require.NoError(t, err)
	assert.Empty(t, got.Pending)
	assert.Equal(t, defaults.Active, got.Active)
	assert.Equal(t, defaults.Completed, got.Completed)
}

func TestRedisInvalidJSONUsesDefaults(t *testing.T) {
	repo, mr := setupRedisRepo(t)
	defaults := models.DefaultMatchCollections()

	mr.Set("matches:u1", "not json")

	got, err := repo.Load(context.Background(), "u1", defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, got)
}

func TestRedisUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	repo := NewRedisMatchRepository(client, "matches:", zap.NewNop())
	mr.Close()

	_, err = repo.Load(context.Background(), "u1", models.DefaultMatchCollections())
	assert.Error(t, err)
	assert.Error(t, repo.Ping(context.Background()))
}
