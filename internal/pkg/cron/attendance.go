package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/attendance"
)

// AttendanceJobs holds background maintenance for attendance records.
type AttendanceJobs struct {
	entryRepo attendance.WorkEntryRepository
}

func NewAttendanceJobs(entryRepo attendance.WorkEntryRepository) *AttendanceJobs {
	return &AttendanceJobs{entryRepo: entryRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_entries", 1*time.Hour, j.AutoCloseStaleEntries)
}

// AutoCloseStaleEntries closes check-ins whose owner never checked out. A
// closed-by-job entry keeps no credited duration: its duration text stays the
// Not Checked Out sentinel so reports can tell it apart from a real check-out.
func (j *AttendanceJobs) AutoCloseStaleEntries(ctx context.Context) error {
	// Only run during the first hour of the day (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: starting auto-close of stale attendance entries")

	cutoff := time.Now().UTC().Add(-20 * time.Hour)
	closed, err := j.entryRepo.AutoCloseStaleEntries(ctx, cutoff)
	if err != nil {
		return err
	}

	if closed > 0 {
		slog.Info("Cron: auto-closed stale attendance entries", "count", closed)
	}
	return nil
}
