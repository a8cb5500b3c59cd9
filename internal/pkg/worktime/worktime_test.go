package worktime

import (
	"testing"
	"time"
)

func TestElapsed(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  Duration
	}{
		{
			name:  "ninety minutes",
			start: base,
			end:   base.Add(90 * time.Minute),
			want:  Duration{Hours: 1, Minutes: 30, Seconds: 0, TotalMinutes: 90},
		},
		{
			name:  "full day with seconds",
			start: base,
			end:   base.Add(8*time.Hour + 15*time.Minute + 42*time.Second),
			want:  Duration{Hours: 8, Minutes: 15, Seconds: 42, TotalMinutes: 495},
		},
		{
			name:  "equal timestamps",
			start: base,
			end:   base,
			want:  Duration{},
		},
		{
			name:  "end before start clamps to zero",
			start: base,
			end:   base.Add(-2 * time.Hour),
			want:  Duration{},
		},
	}
	for _, c := range cases {
		got := Elapsed(c.start, c.end)
		if got != c.want {
			t.Errorf("%s: Elapsed = %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestParseHHMM(t *testing.T) {
	cases := []struct {
		input string
		want  Duration
	}{
		{"8:30", Duration{Hours: 8, Minutes: 30, TotalMinutes: 510}},
		{"0:05", Duration{Hours: 0, Minutes: 5, TotalMinutes: 5}},
		{"12:00", Duration{Hours: 12, Minutes: 0, TotalMinutes: 720}},
		{"", Duration{}},
		{NotCheckedOut, Duration{}},
		{"abc", Duration{}},
		{"8", Duration{}},
		{"8:61", Duration{}},
		{"-1:30", Duration{}},
		{"8:xx", Duration{}},
	}
	for _, c := range cases {
		got := ParseHHMM(c.input)
		if got != c.want {
			t.Errorf("ParseHHMM(%q) = %+v, want %+v", c.input, got, c.want)
		}
	}
}

func TestFormatHHMM(t *testing.T) {
	cases := []struct {
		d    Duration
		want string
	}{
		{Duration{Hours: 8, Minutes: 30, TotalMinutes: 510}, "8:30"},
		{Duration{Hours: 0, Minutes: 5, TotalMinutes: 5}, "0:05"},
		{Duration{}, "0:00"},
		{Duration{Hours: 10, Minutes: 0, TotalMinutes: 600}, "10:00"},
	}
	for _, c := range cases {
		if got := FormatHHMM(c.d); got != c.want {
			t.Errorf("FormatHHMM(%+v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	d := Elapsed(
		time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 20, 45, 0, 0, time.UTC),
	)
	back := ParseHHMM(FormatHHMM(d))
	if back.TotalMinutes != d.TotalMinutes {
		t.Errorf("round trip lost minutes: %d != %d", back.TotalMinutes, d.TotalMinutes)
	}
}

func TestDecimalHours(t *testing.T) {
	cases := []struct {
		d    Duration
		want float64
	}{
		{Duration{Hours: 2, Minutes: 0, TotalMinutes: 120}, 2.0},
		{Duration{Hours: 1, Minutes: 30, TotalMinutes: 90}, 1.5},
		{Duration{}, 0},
	}
	for _, c := range cases {
		if got := c.d.DecimalHours(); got != c.want {
			t.Errorf("DecimalHours(%+v) = %f, want %f", c.d, got, c.want)
		}
	}
}

func TestAdd(t *testing.T) {
	a := ParseHHMM("7:45")
	b := ParseHHMM("1:30")
	got := a.Add(b)
	want := Duration{Hours: 9, Minutes: 15, TotalMinutes: 555}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}
