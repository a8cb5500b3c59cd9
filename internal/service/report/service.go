package report

import (
	"context"
	"fmt"
	"time"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrail-hq/attendance-backend-go/internal/domain/overtime"
	"github.com/worktrail-hq/attendance-backend-go/internal/domain/report"
	"github.com/worktrail-hq/attendance-backend-go/internal/domain/user"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/calendar"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/worktime"
)

type ReportServiceImpl struct {
	entryRepository attendance.WorkEntryRepository
	otRepository    overtime.OTRequestRepository
	userRepository  user.UserRepository
}

func NewReportService(entryRepository attendance.WorkEntryRepository, otRepository overtime.OTRequestRepository, userRepository user.UserRepository) report.ReportService {
	return &ReportServiceImpl{
		entryRepository: entryRepository,
		otRepository:    otRepository,
		userRepository:  userRepository,
	}
}

// Calendar implements report.ReportService.
func (s *ReportServiceImpl) Calendar(ctx context.Context, userID string, filter report.CalendarFilter) (report.CalendarResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.CalendarResponse{}, err
	}

	// The grid spills into the neighboring months, so fetch the full
	// six-week window rather than just the month.
	first := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := gridStart.AddDate(0, 0, calendar.Rows*calendar.Cols-1)

	workEntries, err := s.entryRepository.ListByUserRange(ctx, userID, gridStart, gridEnd)
	if err != nil {
		return report.CalendarResponse{}, fmt.Errorf("failed to list work entries: %w", err)
	}

	calEntries := make([]calendar.Entry, 0, len(workEntries))
	byDay := make(map[string][]report.CalendarEntry)
	for _, entry := range workEntries {
		calEntries = append(calEntries, calendar.Entry{
			Date:         entry.Date,
			DurationText: entry.DurationText(),
		})

		day := entry.Date.Format("2006-01-02")
		cellEntry := report.CalendarEntry{
			EntryID:     entry.ID,
			CheckinTime: entry.CheckinTime.Format("15:04"),
			Duration:    entry.DurationText(),
		}
		if entry.CheckoutTime != nil {
			cellEntry.CheckoutTime = entry.CheckoutTime.Format("15:04")
		}
		byDay[day] = append(byDay[day], cellEntry)
	}

	grid := calendar.Build(time.Month(filter.Month), filter.Year, calEntries)

	cells := make([]report.CalendarCell, 0, calendar.Rows*calendar.Cols)
	for _, cell := range grid.Cells() {
		day := cell.Date.Format("2006-01-02")
		respCell := report.CalendarCell{
			Date:           day,
			DayNumber:      cell.DayNumber,
			InCurrentMonth: cell.InCurrentMonth,
			Bucket:         cell.Bucket,
			Entries:        byDay[day],
		}
		if respCell.Entries == nil {
			respCell.Entries = []report.CalendarEntry{}
		}
		if cell.Aggregate != nil {
			text := worktime.FormatHHMM(*cell.Aggregate)
			minutes := cell.Aggregate.TotalMinutes
			respCell.Total = &text
			respCell.TotalMinutes = &minutes
		}
		cells = append(cells, respCell)
	}

	return report.CalendarResponse{
		Month: filter.Month,
		Year:  filter.Year,
		Cells: cells,
	}, nil
}

// RangeSummary implements report.ReportService.
func (s *ReportServiceImpl) RangeSummary(ctx context.Context, userID string, filter report.SummaryFilter) (report.RangeSummary, error) {
	if err := filter.Validate(); err != nil {
		return report.RangeSummary{}, err
	}

	userData, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return report.RangeSummary{}, err
	}

	from, _ := time.Parse("2006-01-02", filter.StartDate)
	to, _ := time.Parse("2006-01-02", filter.EndDate)

	entries, err := s.entryRepository.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return report.RangeSummary{}, fmt.Errorf("failed to list work entries: %w", err)
	}

	var total worktime.Duration
	daysWorked := 0
	openEntries := 0
	for _, entry := range entries {
		if entry.Status == attendance.StatusCompleted && entry.CheckoutTime != nil {
			total = total.Add(worktime.Elapsed(entry.CheckinTime, *entry.CheckoutTime))
			daysWorked++
			continue
		}
		openEntries++
	}

	average := worktime.Duration{}
	if daysWorked > 0 {
		average = worktime.Duration{TotalMinutes: total.TotalMinutes / daysWorked}
		average.Hours = average.TotalMinutes / 60
		average.Minutes = average.TotalMinutes % 60
	}

	// Credited OT inside the same range.
	approved, err := s.otRepository.ListApprovedInRange(ctx, &userID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return report.RangeSummary{}, fmt.Errorf("failed to list approved OT requests: %w", err)
	}
	var otTotal worktime.Duration
	for _, r := range approved {
		otTotal = otTotal.Add(r.Duration())
	}

	return report.RangeSummary{
		UserID:        userID,
		UserName:      userData.FullName(),
		StartDate:     filter.StartDate,
		EndDate:       filter.EndDate,
		DaysWorked:    daysWorked,
		OpenEntries:   openEntries,
		Total:         worktime.FormatHHMM(total),
		TotalHours:    total.DecimalHours(),
		AveragePerDay: worktime.FormatHHMM(average),
		OvertimeHours: otTotal.DecimalHours(),
	}, nil
}
