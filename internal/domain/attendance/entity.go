package attendance

import (
	"time"

	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/worktime"
)

// Entry statuses. An active entry is the user's unique open session; an
// auto-closed entry was shut by the maintenance job and keeps no credited
// duration.
const (
	StatusActive     = "active"
	StatusCompleted  = "completed"
	StatusAutoClosed = "auto_closed"
)

// WorkEntry is one attendance record: a check-in and, once closed, a
// check-out. Created on check-in, completed on check-out; clients only read it.
type WorkEntry struct {
	ID                string
	UserID            string
	Date              time.Time // working day, truncated to midnight
	CheckinTime       time.Time
	CheckoutTime      *time.Time
	CheckinLatitude   float64
	CheckinLongitude  float64
	CheckoutLatitude  *float64
	CheckoutLongitude *float64
	CheckinPhotoURL   *string
	CheckoutPhotoURL  *string
	CheckinAddress    *string
	CheckoutAddress   *string
	Status            string
	WorkMinutes       *int
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Join fields
	UserName *string
}

// IsOpen reports whether the entry still awaits a check-out.
func (e *WorkEntry) IsOpen() bool {
	return e.CheckoutTime == nil && e.Status == StatusActive
}

// DurationText renders the worked time as the wire "H:MM" value. Open and
// auto-closed entries yield the Not Checked Out sentinel: neither credits any
// duration.
func (e *WorkEntry) DurationText() string {
	if e.CheckoutTime == nil || e.Status == StatusAutoClosed {
		return worktime.NotCheckedOut
	}
	return worktime.FormatHHMM(worktime.Elapsed(e.CheckinTime, *e.CheckoutTime))
}
