package services

import (
	"context"

	"skillswap_server/models"
)

// MatchRepository loads and saves a user's three match collections as a
// single record.
type MatchRepository interface {
	// Load returns the stored collections for userID. When nothing is stored
	// yet, defaults are persisted and returned. Fields that are missing or
	// not sequences fall back to the matching defaults field; a record that
	// cannot be decoded at all yields defaults. Errors are reserved for
	// storage failures.
	Load(ctx context.Context, userID string, defaults models.MatchCollections) (models.MatchCollections, error)

	// Save overwrites the whole record for userID.
	Save(ctx context.Context, userID string, collections models.MatchCollections) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
