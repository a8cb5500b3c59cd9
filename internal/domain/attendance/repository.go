package attendance

import (
	"context"
	"time"
)

// WorkEntryRepository defines data access methods for attendance entries.
type WorkEntryRepository interface {
	// Create inserts a new open entry for a check-in.
	Create(ctx context.Context, entry WorkEntry) (WorkEntry, error)

	// Update writes back a closed or corrected entry.
	Update(ctx context.Context, entry WorkEntry) error

	// GetByID retrieves an entry by ID.
	GetByID(ctx context.Context, id string) (WorkEntry, error)

	// GetOpenEntry retrieves the user's unique open entry, if any.
	// Returns pgx.ErrNoRows-wrapped error when there is none.
	GetOpenEntry(ctx context.Context, userID string) (WorkEntry, error)

	// HasCheckedInOn reports whether the user already has an entry for the day.
	HasCheckedInOn(ctx context.Context, userID string, date time.Time) (bool, error)

	// GetDayEntry retrieves the user's entry for a calendar day, nil when absent.
	GetDayEntry(ctx context.Context, userID string, date time.Time) (*WorkEntry, error)

	// ListByUser retrieves a filtered, paged history slice plus the total count.
	ListByUser(ctx context.Context, userID string, filter OwnTimeFilter) ([]WorkEntry, int64, error)

	// ListByUserRange retrieves all entries for a user between two days inclusive.
	ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]WorkEntry, error)

	// AutoCloseStaleEntries closes open entries checked in before the cutoff,
	// marking them auto_closed. Returns the number of entries touched.
	AutoCloseStaleEntries(ctx context.Context, before time.Time) (int64, error)
}
