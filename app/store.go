// Package app provides user entitlement persistence for authenticated requests.
package app

import (
	"context"
	"errors"

	"github.com/HegryLuis/Voice-to-Text/app/models"
)

// ErrUserNotFound is returned when an operation references a user row
// that does not exist.
var ErrUserNotFound = errors.New("user not found")

// Store is the entitlement and usage persistence consumed by the HTTP
// handlers. It is an interface so tests can substitute an in-memory fake.
type Store interface {
	// GetUser loads a user's entitlement record. Returns ErrUserNotFound
	// when no row exists.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// EnsureUser loads a user's entitlement record, creating a default
	// one (free plan, zero usage) if none exists yet. This is the
	// first-touch provisioning step of the transcription flow.
	EnsureUser(ctx context.Context, userID string) (models.User, error)

	// RecordTranscription increments the user's transcription counter and
	// inserts the history row in one transaction. Both writes apply or
	// neither does.
	RecordTranscription(ctx context.Context, userID, text string) error

	// SetPremium flips the user's premium flag to true. Safe to call
	// repeatedly for the same user; returns ErrUserNotFound when no row
	// matches so webhook delivery can be retried by the provider.
	SetPremium(ctx context.Context, userID string) error

	// ListTranscriptions returns the user's transcription history,
	// newest first.
	ListTranscriptions(ctx context.Context, userID string) ([]models.Transcription, error)
}
