package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn opens today's entry for the caller. Refused locally when the
	// position is outside the office geofence; no record is written then.
	CheckIn(ctx context.Context, req CheckInRequest) (WorkEntryResponse, error)

	// CheckOut closes the caller's open entry.
	CheckOut(ctx context.Context, req CheckOutRequest) (WorkEntryResponse, error)

	// Status reports the caller's day status and derived state.
	Status(ctx context.Context) (StatusResponse, error)

	// GetOwnTime retrieves the caller's paged attendance history.
	GetOwnTime(ctx context.Context, filter OwnTimeFilter) (ListWorkEntriesResponse, error)

	// GetUserTime retrieves one employee's paged history (admin).
	GetUserTime(ctx context.Context, filter UserTimeFilter) (ListWorkEntriesResponse, error)
}
