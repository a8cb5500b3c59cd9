package report

import "context"

// ReportService renders attendance data into calendar and summary views.
type ReportService interface {
	// Calendar builds the 42-cell month grid for one user.
	Calendar(ctx context.Context, userID string, filter CalendarFilter) (CalendarResponse, error)

	// RangeSummary aggregates one user's worked time over a date range.
	RangeSummary(ctx context.Context, userID string, filter SummaryFilter) (RangeSummary, error)
}
