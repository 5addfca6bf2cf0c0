package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"skillswap_server/metrics"
	"skillswap_server/models"

	"go.uber.org/zap"
)

// MatchNotifier is told about every committed change to a user's collections.
type MatchNotifier interface {
	MatchesChanged(userID string, collections models.MatchCollections)
}

// MatchService binds a MatchStore to the calling user for each operation.
// Operations for the same user run one at a time; different users never
// contend.
type MatchService struct {
	Repo     MatchRepository
	Notifier MatchNotifier
	Logger   *zap.Logger

	locks sync.Map // userID -> *sync.Mutex
}

func NewMatchService(repo MatchRepository, notifier MatchNotifier, logger *zap.Logger) *MatchService {
	return &MatchService{Repo: repo, Notifier: notifier, Logger: logger}
}

func (s *MatchService) lock(userID string) func() {
	mu, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// withStore loads userID's collections, runs fn, and returns the resulting
// collections.
func (s *MatchService) withStore(ctx context.Context, userID string, fn func(store *MatchStore) error) (models.MatchCollections, error) {
	if userID == "" {
		return models.MatchCollections{}, ErrAnonymous
	}
	unlock := s.lock(userID)
	defer unlock()

	store := NewMatchStore(s.Repo, s.Logger)
	if err := store.SetIdentity(ctx, userID); err != nil {
		return models.MatchCollections{}, err
	}
	if err := fn(store); err != nil {
		return store.Collections(), err
	}
	return store.Collections(), nil
}

// mutate runs a state-changing operation, records its outcome and notifies
// on success.
func (s *MatchService) mutate(ctx context.Context, operation, userID string, fn func(store *MatchStore) error) (models.MatchCollections, error) {
	collections, err := s.withStore(ctx, userID, fn)
	metrics.ObserveOperation(operation, outcomeOf(err))
	if err != nil {
		s.Logger.Info("Lifecycle operation rejected",
			zap.String("operation", operation), zap.String("userId", userID), zap.Error(err))
		return collections, err
	}
	if s.Notifier != nil {
		s.Notifier.MatchesChanged(userID, collections)
	}
	return collections, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMatchNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrDuplicateMatch):
		return "duplicate"
	case errors.Is(err, ErrAnonymous):
		return "anonymous"
	default:
		return "error"
	}
}

// GetMatches returns the user's collections, seeding them on first use.
func (s *MatchService) GetMatches(ctx context.Context, userID string) (models.MatchCollections, error) {
	return s.withStore(ctx, userID, func(*MatchStore) error { return nil })
}

// GetMatch returns one match from whichever collection holds it.
func (s *MatchService) GetMatch(ctx context.Context, userID, matchID string) (models.Match, error) {
	var found models.Match
	_, err := s.withStore(ctx, userID, func(store *MatchStore) error {
		m, ok := store.Find(matchID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
		}
		found = m
		return nil
	})
	return found, err
}

// GetStats summarizes the user's collections.
func (s *MatchService) GetStats(ctx context.Context, userID string) (models.MatchStats, error) {
	var stats models.MatchStats
	_, err := s.withStore(ctx, userID, func(store *MatchStore) error {
		stats = store.Stats()
		return nil
	})
	return stats, err
}

func (s *MatchService) Propose(ctx context.Context, userID string, match models.PendingMatch) (models.PendingMatch, models.MatchCollections, error) {
	var proposed models.PendingMatch
	collections, err := s.mutate(ctx, "propose", userID, func(store *MatchStore) error {
		var err error
		proposed, err = store.Propose(ctx, match)
		return err
	})
	return proposed, collections, err
}

func (s *MatchService) Accept(ctx context.Context, userID, matchID string) (models.ActiveMatch, models.MatchCollections, error) {
	var accepted models.ActiveMatch
	collections, err := s.mutate(ctx, "accept", userID, func(store *MatchStore) error {
		var err error
		accepted, err = store.Accept(ctx, matchID)
		return err
	})
	return accepted, collections, err
}

func (s *MatchService) Decline(ctx context.Context, userID, matchID string) (models.MatchCollections, error) {
	return s.mutate(ctx, "decline", userID, func(store *MatchStore) error {
		return store.Decline(ctx, matchID)
	})
}

func (s *MatchService) Schedule(ctx context.Context, userID, matchID, date, clock, notes string) (models.ActiveMatch, models.MatchCollections, error) {
	var scheduled models.ActiveMatch
	collections, err := s.mutate(ctx, "schedule", userID, func(store *MatchStore) error {
		var err error
		scheduled, err = store.Schedule(ctx, matchID, date, clock, notes)
		return err
	})
	return scheduled, collections, err
}

func (s *MatchService) SubmitReview(ctx context.Context, userID, matchID string, rating int, feedback string) (models.CompletedMatch, models.MatchCollections, error) {
	var completed models.CompletedMatch
	collections, err := s.mutate(ctx, "review", userID, func(store *MatchStore) error {
		var err error
		completed, err = store.SubmitReview(ctx, matchID, rating, feedback)
		return err
	})
	return completed, collections, err
}

// Ping reports whether match storage is reachable.
func (s *MatchService) Ping(ctx context.Context) error {
	return s.Repo.Ping(ctx)
}
