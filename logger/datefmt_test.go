package logger

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, time.March, 7, 15, 4, 5, 123_000_000, time.UTC)

	cases := []struct {
		pattern string
		want    string
	}{
		{DefaultDateFormat, "07.03.2026 15:04:05"},
		{"YYYY-MM-DD", "2026-03-07"},
		{"YY/M/D", "26/3/7"},
		{"dddd, MMMM D", "Saturday, March 7"},
		{"ddd MMM", "Sat Mar"},
		{"hh:mm A", "03:04 PM"},
		{"h:m:s a", "3:4:5 pm"},
		{"HH:mm:ss.SSS", "15:04:05.123"},
		{"SS S", "12 1"},
		{"Z ZZ", "+00:00 +0000"},
		{"X", "1772895845"},
		{"x", "1772895845123"},
		{"[Today is] dddd", "Today is Saturday"},
		{"[!", "[!"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := formatDate(ts, tc.pattern); got != tc.want {
			t.Errorf("formatDate(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestFormatDate_MidnightIsTwelve(t *testing.T) {
	ts := time.Date(2026, time.January, 1, 0, 30, 0, 0, time.UTC)
	if got := formatDate(ts, "h:mm a"); got != "12:30 am" {
		t.Fatalf("formatDate at midnight = %q, want %q", got, "12:30 am")
	}
}
