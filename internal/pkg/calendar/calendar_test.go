package calendar

import (
	"reflect"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuild_Always42Cells(t *testing.T) {
	months := []struct {
		month time.Month
		year  int
	}{
		{time.February, 2024}, // leap February starting Thursday
		{time.February, 2025}, // 28 days starting Saturday
		{time.March, 2024},    // 31 days
		{time.June, 2025},     // starts on Sunday
		{time.December, 2024},
	}
	for _, m := range months {
		grid := Build(m.month, m.year, nil)
		cells := grid.Cells()
		if len(cells) != 42 {
			t.Errorf("%v %d: got %d cells, want 42", m.month, m.year, len(cells))
		}
		for i := 1; i < len(cells); i++ {
			if !cells[i].Date.Equal(cells[i-1].Date.AddDate(0, 0, 1)) {
				t.Fatalf("%v %d: cells not consecutive at index %d", m.month, m.year, i)
			}
		}
	}
}

func TestBuild_StartsOnSunday(t *testing.T) {
	grid := Build(time.March, 2024, nil)
	first := grid[0][0]
	if first.Date.Weekday() != time.Sunday {
		t.Errorf("first cell weekday = %v, want Sunday", first.Date.Weekday())
	}
	// March 1st 2024 is a Friday, so the grid starts in February.
	if first.InCurrentMonth {
		t.Error("leading cell flagged InCurrentMonth")
	}
	if !first.Date.Equal(day(2024, time.February, 25)) {
		t.Errorf("first cell = %v, want 2024-02-25", first.Date)
	}
}

func TestBuild_MonthStartingOnSunday(t *testing.T) {
	// June 2025 begins on a Sunday; the grid must not back up a full week.
	grid := Build(time.June, 2025, nil)
	if !grid[0][0].Date.Equal(day(2025, time.June, 1)) {
		t.Errorf("first cell = %v, want 2025-06-01", grid[0][0].Date)
	}
	if !grid[0][0].InCurrentMonth {
		t.Error("June 1st not flagged InCurrentMonth")
	}
}

func TestBuild_CoversWholeMonth(t *testing.T) {
	grid := Build(time.December, 2024, nil)
	inMonth := 0
	for _, c := range grid.Cells() {
		if c.InCurrentMonth {
			inMonth++
		}
	}
	if inMonth != 31 {
		t.Errorf("December 2024: %d in-month cells, want 31", inMonth)
	}
}

func TestBuild_EntriesLandByCalendarDay(t *testing.T) {
	entries := []Entry{
		{Date: time.Date(2024, 3, 5, 23, 50, 0, 0, time.UTC), DurationText: "8:00"},
		{Date: time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC), DurationText: "1:15"},
		{Date: day(2024, time.March, 12), DurationText: "4:00"},
	}
	grid := Build(time.March, 2024, entries)

	var march5, march12 *Cell
	for _, c := range grid.Cells() {
		c := c
		switch {
		case c.InCurrentMonth && c.DayNumber == 5:
			march5 = &c
		case c.InCurrentMonth && c.DayNumber == 12:
			march12 = &c
		}
	}

	if march5 == nil || len(march5.Entries) != 2 {
		t.Fatalf("March 5 cell entries = %v, want 2", march5)
	}
	if march5.Aggregate == nil || march5.Aggregate.TotalMinutes != 555 {
		t.Errorf("March 5 aggregate = %+v, want 555 total minutes", march5.Aggregate)
	}
	if march5.Bucket != BucketFullDay {
		t.Errorf("March 5 bucket = %q, want %q", march5.Bucket, BucketFullDay)
	}

	if march12 == nil || len(march12.Entries) != 1 {
		t.Fatalf("March 12 cell entries = %v, want 1", march12)
	}
	if march12.Bucket != BucketPartial {
		t.Errorf("March 12 bucket = %q, want %q", march12.Bucket, BucketPartial)
	}
}

func TestBuild_OpenEntryDistinctFromEmpty(t *testing.T) {
	entries := []Entry{
		{Date: day(2024, time.March, 7), DurationText: "Not Checked Out"},
	}
	grid := Build(time.March, 2024, entries)

	for _, c := range grid.Cells() {
		if !c.InCurrentMonth {
			continue
		}
		switch c.DayNumber {
		case 7:
			if len(c.Entries) != 1 {
				t.Fatalf("March 7 entries = %d, want 1", len(c.Entries))
			}
			if c.Aggregate == nil {
				t.Fatal("March 7 aggregate = nil, want non-nil zero")
			}
			if c.Aggregate.TotalMinutes != 0 {
				t.Errorf("March 7 aggregate minutes = %d, want 0", c.Aggregate.TotalMinutes)
			}
			if c.Bucket != BucketActivity {
				t.Errorf("March 7 bucket = %q, want %q", c.Bucket, BucketActivity)
			}
		case 8:
			if c.Aggregate != nil {
				t.Error("March 8 aggregate != nil for a day with no entries")
			}
			if c.Bucket != BucketNone {
				t.Errorf("March 8 bucket = %q, want %q", c.Bucket, BucketNone)
			}
		}
	}
}

func TestBuild_Buckets(t *testing.T) {
	cases := []struct {
		duration string
		want     Bucket
	}{
		{"8:00", BucketFullDay},
		{"7:59", BucketPartial},
		{"4:00", BucketPartial},
		{"3:59", BucketShort},
		{"1:00", BucketShort},
		{"0:59", BucketMinimal},
		{"0:01", BucketMinimal},
		{"0:00", BucketActivity},
	}
	for _, c := range cases {
		grid := Build(time.March, 2024, []Entry{{Date: day(2024, time.March, 15), DurationText: c.duration}})
		for _, cell := range grid.Cells() {
			if cell.InCurrentMonth && cell.DayNumber == 15 && cell.Bucket != c.want {
				t.Errorf("duration %q: bucket = %q, want %q", c.duration, cell.Bucket, c.want)
			}
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	entries := []Entry{
		{Date: day(2024, time.March, 5), DurationText: "8:00"},
		{Date: day(2024, time.March, 7), DurationText: "Not Checked Out"},
	}
	a := Build(time.March, 2024, entries)
	b := Build(time.March, 2024, entries)
	if !reflect.DeepEqual(a, b) {
		t.Error("Build is not deterministic for identical inputs")
	}
}
