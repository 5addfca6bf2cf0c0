package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillswap_server/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionLayout renders e.g. "Monday, March 10, 2025, 2:30 PM"
const sessionLayout = "Monday, January 2, 2006, 3:04 PM"

// Propose adds a new pending match from the recommendation source. An empty
// id is replaced by a generated one.
func (s *MatchStore) Propose(ctx context.Context, match models.PendingMatch) (models.PendingMatch, error) {
	if strings.TrimSpace(match.Name) == "" {
		return models.PendingMatch{}, fmt.Errorf("%w: counterpart name is required", ErrInvalidInput)
	}
	if match.MatchScore < 0 || match.MatchScore > 100 {
		return models.PendingMatch{}, fmt.Errorf("%w: matchScore %d outside 0-100", ErrInvalidInput, match.MatchScore)
	}
	if match.ID == "" {
		match.ID = uuid.New().String()
	}
	if s.collections.Contains(match.ID) {
		return models.PendingMatch{}, fmt.Errorf("%w: %s", ErrDuplicateMatch, match.ID)
	}
	if match.RequestedAt == "" {
		match.RequestedAt = models.RecencyJustNow
	}
	if match.Skills == nil {
		match.Skills = []string{}
	}
	if match.LearningGoals == nil {
		match.LearningGoals = []string{}
	}

	next := s.collections.Normalized()
	next.Pending = append(next.Pending, match)
	s.logger.Info("📥 Match proposed", zap.String("userId", s.userID), zap.String("matchId", match.ID))
	return match, s.commit(ctx, next)
}

// Accept moves a pending match to active with a fresh, unscheduled session
// state.
func (s *MatchStore) Accept(ctx context.Context, id string) (models.ActiveMatch, error) {
	idx := s.pendingIndex(id)
	if idx < 0 {
		return models.ActiveMatch{}, fmt.Errorf("%w: %s is not pending", ErrMatchNotFound, id)
	}
	pending := s.collections.Pending[idx]

	accepted := models.ActiveMatch{
		ID:                pending.ID,
		Counterpart:       pending.Counterpart,
		MatchScore:        pending.MatchScore,
		Status:            models.ActiveStatusScheduled,
		NextSession:       models.NextSessionUnscheduled,
		SessionsCompleted: 0,
		Rating:            0,
		LastActivity:      models.RecencyJustNow,
	}

	next := s.collections.Normalized()
	next.Pending = append(next.Pending[:idx:idx], next.Pending[idx+1:]...)
	next.Active = append(next.Active, accepted)
	s.logger.Info("🤝 Match accepted", zap.String("userId", s.userID), zap.String("matchId", id))
	return accepted, s.commit(ctx, next)
}

// Decline drops a pending match. Nothing about it is retained.
func (s *MatchStore) Decline(ctx context.Context, id string) error {
	idx := s.pendingIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s is not pending", ErrMatchNotFound, id)
	}

	next := s.collections.Normalized()
	next.Pending = append(next.Pending[:idx:idx], next.Pending[idx+1:]...)
	s.logger.Info("🚫 Match declined", zap.String("userId", s.userID), zap.String("matchId", id))
	return s.commit(ctx, next)
}

// Schedule sets the next session of an active match. date is YYYY-MM-DD and
// clock is HH:MM; only the formatted result is kept.
func (s *MatchStore) Schedule(ctx context.Context, id, date, clock, notes string) (models.ActiveMatch, error) {
	formatted, err := FormatSession(date, clock)
	if err != nil {
		return models.ActiveMatch{}, err
	}
	idx := s.activeIndex(id)
	if idx < 0 {
		return models.ActiveMatch{}, fmt.Errorf("%w: %s is not active", ErrMatchNotFound, id)
	}

	next := s.collections.Normalized()
	scheduled := next.Active[idx]
	scheduled.NextSession = formatted
	scheduled.Status = models.ActiveStatusScheduled
	scheduled.SessionNotes = strings.TrimSpace(notes)
	next.Active[idx] = scheduled

	s.logger.Info("📅 Session scheduled", zap.String("userId", s.userID), zap.String("matchId", id), zap.String("nextSession", formatted))
	return scheduled, s.commit(ctx, next)
}

// SubmitReview completes an active match with a 1-5 rating. Blank feedback
// is replaced by a placeholder.
func (s *MatchStore) SubmitReview(ctx context.Context, id string, rating int, feedback string) (models.CompletedMatch, error) {
	if rating < 1 || rating > 5 {
		return models.CompletedMatch{}, fmt.Errorf("%w: rating %d outside 1-5", ErrInvalidInput, rating)
	}
	idx := s.activeIndex(id)
	if idx < 0 {
		return models.CompletedMatch{}, fmt.Errorf("%w: %s is not active", ErrMatchNotFound, id)
	}
	active := s.collections.Active[idx]

	if strings.TrimSpace(feedback) == "" {
		feedback = models.DefaultFeedback
	}
	completed := models.CompletedMatch{
		ID:                active.ID,
		Counterpart:       active.Counterpart,
		MatchScore:        active.MatchScore,
		SessionsCompleted: active.SessionsCompleted + 1,
		Rating:            float64(rating),
		Feedback:          feedback,
		CompletedAt:       models.RecencyJustNow,
	}

	next := s.collections.Normalized()
	next.Active = append(next.Active[:idx:idx], next.Active[idx+1:]...)
	next.Completed = append(next.Completed, completed)
	s.logger.Info("⭐ Match reviewed", zap.String("userId", s.userID), zap.String("matchId", id), zap.Int("rating", rating))
	return completed, s.commit(ctx, next)
}

// FormatSession combines a YYYY-MM-DD date and an HH:MM (or HH:MM:SS) time
// into the display string stored as nextSession.
func FormatSession(date, clock string) (string, error) {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return "", fmt.Errorf("%w: date and time are required", ErrInvalidInput)
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, date+" "+clock); err == nil {
			return t.Format(sessionLayout), nil
		}
	}
	return "", fmt.Errorf("%w: cannot parse %q %q", ErrInvalidInput, date, clock)
}
