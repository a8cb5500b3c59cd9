package calendar

import (
	"time"

	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/worktime"
)

// Rows and Cols fix the grid shape: every month renders as 6 weeks of 7 days.
const (
	Rows = 6
	Cols = 7
)

// Entry is one attendance record projected onto the calendar. DurationText is
// the wire "H:MM" value, which may be the Not Checked Out sentinel for an open
// entry.
type Entry struct {
	Date         time.Time
	DurationText string
}

// Bucket classifies how much work a day cell holds, for display intensity.
type Bucket string

const (
	BucketFullDay  Bucket = "full_day" // >= 8h
	BucketPartial  Bucket = "partial"  // >= 4h
	BucketShort    Bucket = "short"    // >= 1h
	BucketMinimal  Bucket = "minimal"  // under 1h but nonzero
	BucketActivity Bucket = "activity" // entries present, no credited duration
	BucketNone     Bucket = "none"     // no entries at all
)

// Cell is one day of the rendered month grid.
type Cell struct {
	Date           time.Time
	DayNumber      int
	InCurrentMonth bool
	Entries        []Entry
	// Aggregate is nil iff the cell has no entries. A non-nil zero aggregate
	// means activity happened but no duration was credited (e.g. still
	// checked in), which callers must not collapse into "empty".
	Aggregate *worktime.Duration
	Bucket    Bucket
}

// Grid is a 6x7 month view starting on the Sunday on or before the 1st.
type Grid [Rows][Cols]Cell

// sameDay compares by calendar day rather than instant, so entries recorded
// near midnight do not drift across cells.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func bucketFor(hasEntries bool, totalMinutes int) Bucket {
	switch {
	case !hasEntries:
		return BucketNone
	case totalMinutes >= 480:
		return BucketFullDay
	case totalMinutes >= 240:
		return BucketPartial
	case totalMinutes >= 60:
		return BucketShort
	case totalMinutes > 0:
		return BucketMinimal
	default:
		return BucketActivity
	}
}

// Build lays the given month out as a 6x7 grid and distributes entries into
// day cells. Cells outside the target month are still populated (and may hold
// entries) but are flagged InCurrentMonth=false. Build is pure: it never
// mutates its inputs and identical inputs produce identical grids.
func Build(month time.Month, year int, entries []Entry) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Back up to the Sunday on or before the 1st.
	start := first.AddDate(0, 0, -int(first.Weekday()))

	var grid Grid
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			date := start.AddDate(0, 0, row*Cols+col)

			cell := Cell{
				Date:           date,
				DayNumber:      date.Day(),
				InCurrentMonth: date.Month() == month && date.Year() == year,
			}

			for _, e := range entries {
				if sameDay(e.Date, date) {
					cell.Entries = append(cell.Entries, e)
				}
			}

			if len(cell.Entries) > 0 {
				agg := worktime.Duration{}
				for _, e := range cell.Entries {
					agg = agg.Add(worktime.ParseHHMM(e.DurationText))
				}
				cell.Aggregate = &agg
			}

			total := 0
			if cell.Aggregate != nil {
				total = cell.Aggregate.TotalMinutes
			}
			cell.Bucket = bucketFor(len(cell.Entries) > 0, total)

			grid[row][col] = cell
		}
	}

	return grid
}

// Cells returns the grid flattened in row-major order, 42 cells.
func (g Grid) Cells() []Cell {
	out := make([]Cell, 0, Rows*Cols)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			out = append(out, g[row][col])
		}
	}
	return out
}
