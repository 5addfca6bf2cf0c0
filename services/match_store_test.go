package services

import (
	"context"
	"errors"
	"testing"

	"skillswap_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetIdentitySeedsNewUser(t *testing.T) {
	repo := newFakeRepo()
	store := NewMatchStore(repo, zap.NewNop())

	require.NoError(t, store.SetIdentity(context.Background(), "new-user"))

	c := store.Collections()
	assert.Equal(t, models.DefaultMatchCollections(), c)
	assert.Len(t, c.Pending, 2)
	assert.Len(t, c.Active, 2)
	assert.Len(t, c.Completed, 2)
	assertExactlyOnce(t, c)

	_, stored := repo.record("new-user")
	assert.True(t, stored)
}

func TestSetIdentitySwitchesAndClears(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.records["alice"] = fixture()
	store := NewMatchStore(repo, zap.NewNop())

	require.NoError(t, store.SetIdentity(ctx, "alice"))
	assert.Equal(t, "alice", store.UserID())
	assert.Len(t, store.Collections().Pending, 2)

	require.NoError(t, store.SetIdentity(ctx, ""))
	assert.Equal(t, "", store.UserID())
	c := store.Collections()
	assert.Empty(t, c.Pending)
	assert.Empty(t, c.Active)
	assert.Empty(t, c.Completed)
}

func TestAnonymousChangesAreNotPersisted(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t, "", fixture())

	_, err := store.Accept(ctx, "1")
	require.NoError(t, err)

	assert.Len(t, store.Collections().Active, 2)
	assert.Equal(t, 0, repo.saveCount())
	assert.Empty(t, repo.records)
}

func TestSetIdentityLoadFailureLeavesStoreAnonymous(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.records["alice"] = fixture()
	store := NewMatchStore(repo, zap.NewNop())
	require.NoError(t, store.SetIdentity(ctx, "alice"))

	repo.loadErr = errors.New("connection refused")
	err := store.SetIdentity(ctx, "bob")
	require.Error(t, err)
	assert.Equal(t, "", store.UserID())
	assert.Empty(t, store.Collections().Pending)
}

func TestSetIdentityDropsDuplicateIDs(t *testing.T) {
	repo := newFakeRepo()
	repo.records["u1"] = models.MatchCollections{
		Pending:   []models.PendingMatch{{ID: "1"}, {ID: "2"}},
		Active:    []models.ActiveMatch{{ID: "1"}, {ID: "3"}, {ID: ""}},
		Completed: []models.CompletedMatch{{ID: "2"}, {ID: "4"}},
	}
	store := NewMatchStore(repo, zap.NewNop())
	require.NoError(t, store.SetIdentity(context.Background(), "u1"))

	c := store.Collections()
	assertExactlyOnce(t, c)
	assert.Len(t, c.Pending, 2)
	require.Len(t, c.Active, 1)
	assert.Equal(t, "3", c.Active[0].ID)
	require.Len(t, c.Completed, 1)
	assert.Equal(t, "4", c.Completed[0].ID)
}

func TestSaveFailureIsReported(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t, "u1", fixture())
	repo.saveErr = errors.New("throttled")

	_, err := store.Accept(ctx, "1")
	assert.ErrorContains(t, err, "failed to persist matches")
}

func TestStats(t *testing.T) {
	store, _ := newTestStore(t, "u1", models.DefaultMatchCollections())

	stats := store.Stats()
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 3+1+5+4, stats.SessionsCompleted)
	assert.Equal(t, 4.7, stats.AverageRating)

	empty, _ := newTestStore(t, "u2", models.MatchCollections{})
	assert.Equal(t, float64(0), empty.Stats().AverageRating)
}
