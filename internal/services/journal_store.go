package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/joiful-app/joilogs-backend/internal/models"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrDateRequired    = errors.New("a date is required")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidRating   = errors.New("task rating must be between 1 and 10")
)

// Store is the persistence boundary for profiles, log entries, and the
// payment ledger. The journaling workflow only ever talks to the database
// through it.
type Store interface {
	// GetProfile returns the user's profile or ErrProfileNotFound.
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// UpdateProfile merges the named fields into the profile row. Fields
	// not present in the map are left untouched.
	UpdateProfile(ctx context.Context, userID uuid.UUID, fields map[string]any) error

	// ListRecentLogs returns up to limit entries, newest date first.
	ListRecentLogs(ctx context.Context, userID uuid.UUID, limit int) ([]models.LogEntry, error)

	// GetLog returns the entry for a date, or (nil, nil) when the date has
	// no entry. Absence is a normal state, not an error.
	GetLog(ctx context.Context, userID uuid.UUID, date string) (*models.LogEntry, error)

	// PutLog fully overwrites the entry for (user, date), creating it if
	// needed. Saves are upserts, never merges.
	PutLog(ctx context.Context, userID uuid.UUID, entry models.LogEntry) error

	// DeleteLog removes the entry for a date. Deleting a date with no
	// entry is not an error.
	DeleteLog(ctx context.Context, userID uuid.UUID, date string) error

	// RecordPayment appends one completed checkout to the ledger.
	RecordPayment(ctx context.Context, payment models.Payment) error
}
