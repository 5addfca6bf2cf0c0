package services

import (
	"context"
	"fmt"
	"math"

	"skillswap_server/models"

	"go.uber.org/zap"
)

// MatchStore holds one identity's pending, active and completed collections
// and applies lifecycle transitions to them. A match id lives in exactly one
// collection at a time.
//
// A MatchStore is not safe for concurrent use; MatchService serializes access
// per user.
type MatchStore struct {
	repo   MatchRepository
	logger *zap.Logger
	seed   func() models.MatchCollections

	userID      string
	collections models.MatchCollections
}

// NewMatchStore returns an anonymous store with empty collections. Call
// SetIdentity to load a user's state.
func NewMatchStore(repo MatchRepository, logger *zap.Logger) *MatchStore {
	return &MatchStore{
		repo:        repo,
		logger:      logger,
		seed:        models.DefaultMatchCollections,
		collections: models.MatchCollections{}.Normalized(),
	}
}

// UserID returns the bound identity, empty when anonymous.
func (s *MatchStore) UserID() string {
	return s.userID
}

// SetIdentity rebinds the store to userID and reloads its collections. An
// empty userID clears the store back to empty, un-seeded collections whose
// changes are never persisted.
func (s *MatchStore) SetIdentity(ctx context.Context, userID string) error {
	if userID == "" {
		s.userID = ""
		s.collections = models.MatchCollections{}.Normalized()
		return nil
	}

	loaded, err := s.repo.Load(ctx, userID, s.seed())
	if err != nil {
		// never keep the previous identity's state under a new id
		s.userID = ""
		s.collections = models.MatchCollections{}.Normalized()
		return fmt.Errorf("failed to load matches: %w", err)
	}

	s.userID = userID
	s.collections = s.dedupe(loaded)
	return nil
}

// dedupe drops every occurrence of an id after the first, scanning pending,
// then active, then completed.
func (s *MatchStore) dedupe(c models.MatchCollections) models.MatchCollections {
	seen := make(map[string]struct{})
	keep := func(id string, state models.MatchState) bool {
		if id == "" {
			s.logger.Warn("⚠️ Dropping stored match without id", zap.String("userId", s.userID), zap.String("state", string(state)))
			return false
		}
		if _, dup := seen[id]; dup {
			s.logger.Warn("⚠️ Dropping duplicate stored match", zap.String("matchId", id), zap.String("state", string(state)))
			return false
		}
		seen[id] = struct{}{}
		return true
	}

	out := models.MatchCollections{}.Normalized()
	for _, m := range c.Pending {
		if keep(m.ID, models.MatchStatePending) {
			out.Pending = append(out.Pending, m)
		}
	}
	for _, m := range c.Active {
		if keep(m.ID, models.MatchStateActive) {
			out.Active = append(out.Active, m)
		}
	}
	for _, m := range c.Completed {
		if keep(m.ID, models.MatchStateCompleted) {
			out.Completed = append(out.Completed, m)
		}
	}
	return out
}

// Collections returns a copy of the current collections.
func (s *MatchStore) Collections() models.MatchCollections {
	return s.collections.Normalized()
}

// Find looks a match up in all three collections.
func (s *MatchStore) Find(id string) (models.Match, bool) {
	return s.collections.Find(id)
}

// Stats summarizes the collections. The average rating covers rated
// completed matches only, rounded to one decimal.
func (s *MatchStore) Stats() models.MatchStats {
	stats := models.MatchStats{
		Pending:   len(s.collections.Pending),
		Active:    len(s.collections.Active),
		Completed: len(s.collections.Completed),
	}

	var sum float64
	var rated int
	for _, m := range s.collections.Completed {
		stats.SessionsCompleted += m.SessionsCompleted
		if m.Rating > 0 {
			sum += m.Rating
			rated++
		}
	}
	for _, m := range s.collections.Active {
		stats.SessionsCompleted += m.SessionsCompleted
	}
	if rated > 0 {
		stats.AverageRating = math.Round(sum/float64(rated)*10) / 10
	}
	return stats
}

// commit installs next and writes the full record. Anonymous stores only
// keep the change in memory.
func (s *MatchStore) commit(ctx context.Context, next models.MatchCollections) error {
	s.collections = next
	if s.userID == "" {
		return nil
	}
	if err := s.repo.Save(ctx, s.userID, next); err != nil {
		return fmt.Errorf("failed to persist matches: %w", err)
	}
	return nil
}

func (s *MatchStore) pendingIndex(id string) int {
	for i, m := range s.collections.Pending {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (s *MatchStore) activeIndex(id string) int {
	for i, m := range s.collections.Active {
		if m.ID == id {
			return i
		}
	}
	return -1
}
