package worktime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NotCheckedOut is the sentinel duration text for an attendance entry that has a
// check-in but no check-out yet. It appears verbatim in API responses.
const NotCheckedOut = "Not Checked Out"

// Duration is an elapsed amount of worked time broken into display components.
type Duration struct {
	Hours        int
	Minutes      int
	Seconds      int
	TotalMinutes int
}

// Elapsed returns the time worked between start and end. An end before start
// (clock skew, bad data) clamps to zero rather than going negative.
func Elapsed(start, end time.Time) Duration {
	d := end.Sub(start)
	if d < 0 {
		return Duration{}
	}

	totalSeconds := int(d.Seconds())
	return Duration{
		Hours:        totalSeconds / 3600,
		Minutes:      (totalSeconds % 3600) / 60,
		Seconds:      totalSeconds % 60,
		TotalMinutes: totalSeconds / 60,
	}
}

// ParseHHMM parses a pre-computed "H:MM" duration text as served in the
// time_difference field. Empty input, the NotCheckedOut sentinel, and anything
// malformed all yield a zero Duration.
func ParseHHMM(s string) Duration {
	if s == "" || s == NotCheckedOut {
		return Duration{}
	}

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return Duration{}
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hours < 0 {
		return Duration{}
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minutes < 0 || minutes > 59 {
		return Duration{}
	}

	return Duration{
		Hours:        hours,
		Minutes:      minutes,
		TotalMinutes: hours*60 + minutes,
	}
}

// FormatHHMM renders a Duration as the wire "H:MM" text.
func FormatHHMM(d Duration) string {
	return fmt.Sprintf("%d:%02d", d.Hours, d.Minutes)
}

// DecimalHours returns the duration as fractional hours for numeric
// aggregation, e.g. summing a month's overtime.
func (d Duration) DecimalHours() float64 {
	return float64(d.TotalMinutes) / 60.0
}

// IsZero reports whether the duration carries no time at all.
func (d Duration) IsZero() bool {
	return d.TotalMinutes == 0 && d.Seconds == 0
}

// Add sums two durations, normalizing minute overflow into hours.
func (d Duration) Add(other Duration) Duration {
	total := d.TotalMinutes + other.TotalMinutes
	return Duration{
		Hours:        total / 60,
		Minutes:      total % 60,
		TotalMinutes: total,
	}
}
