package report

import (
	"time"

	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/calendar"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/validator"
)

// CalendarFilter selects the month rendered by the calendar view.
// Zero values default to the current month.
type CalendarFilter struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (f *CalendarFilter) Validate() error {
	var errs validator.ValidationErrors

	now := time.Now()
	if f.Month == 0 {
		f.Month = int(now.Month())
	}
	if f.Year == 0 {
		f.Year = now.Year()
	}

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: ErrInvalidMonth.Error()})
	}
	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: ErrInvalidYear.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CalendarEntry is one work entry rendered inside a calendar cell.
type CalendarEntry struct {
	EntryID      string `json:"entry_id"`
	CheckinTime  string `json:"checkin_time"`
	CheckoutTime string `json:"checkout_time,omitempty"`
	Duration     string `json:"time_difference"`
}

// CalendarCell is one of the 42 cells of the month grid.
type CalendarCell struct {
	Date           string          `json:"date"`
	DayNumber      int             `json:"day_number"`
	InCurrentMonth bool            `json:"in_current_month"`
	Bucket         calendar.Bucket `json:"bucket"`
	Total          *string         `json:"total,omitempty"`
	TotalMinutes   *int            `json:"total_minutes,omitempty"`
	Entries        []CalendarEntry `json:"entries"`
}

// CalendarResponse is the full month grid, row-major, always 42 cells.
type CalendarResponse struct {
	Month int            `json:"month"`
	Year  int            `json:"year"`
	Cells []CalendarCell `json:"cells"`
}

// SummaryFilter bounds a range summary report by calendar date.
type SummaryFilter struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (f *SummaryFilter) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	var ok bool

	if validator.IsEmpty(f.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required"})
	} else if start, ok = validator.IsValidDate(f.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(f.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required"})
	} else if end, ok = validator.IsValidDate(f.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return errs
	}

	if end.Before(start) {
		return ErrInvalidDateRange
	}
	return nil
}

// RangeSummary aggregates one user's attendance over a date range.
type RangeSummary struct {
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DaysWorked    int     `json:"days_worked"`
	OpenEntries   int     `json:"open_entries"`
	Total         string  `json:"total"`
	TotalHours    float64 `json:"total_hours"`
	AveragePerDay string  `json:"average_per_day"`
	OvertimeHours float64 `json:"overtime_hours"`
}
