package events_test

import (
	"testing"
	"time"

	"chronicle/internal/events"
)

func TestDateOfStripsTimeOfDay(t *testing.T) {
	ts := time.Date(2024, time.March, 10, 23, 59, 59, 999000000, time.UTC)
	got := events.DateOf(ts)
	want := events.Date{Year: 2024, Month: time.March, Day: 10}
	if got != want {
		t.Fatalf("DateOf = %v, want %v", got, want)
	}
}

func TestDateOrdering(t *testing.T) {
	cases := []struct {
		name   string
		a, b   events.Date
		before bool
	}{
		{"earlier year", events.Date{2023, time.December, 31}, events.Date{2024, time.January, 1}, true},
		{"earlier month", events.Date{2024, time.February, 28}, events.Date{2024, time.March, 1}, true},
		{"earlier day", events.Date{2024, time.March, 9}, events.Date{2024, time.March, 10}, true},
		{"equal", events.Date{2024, time.March, 10}, events.Date{2024, time.March, 10}, false},
		{"later", events.Date{2024, time.March, 11}, events.Date{2024, time.March, 10}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Before(tc.b); got != tc.before {
				t.Fatalf("%v.Before(%v) = %v, want %v", tc.a, tc.b, got, tc.before)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d := events.Date{Year: 2024, Month: time.March, Day: 9}
	if got := d.String(); got != "2024-03-09" {
		t.Fatalf("String = %q", got)
	}
}

func TestDateRoundTripThroughTime(t *testing.T) {
	d := events.Date{Year: 2026, Month: time.November, Day: 1}
	if got := events.DateOf(d.Time()); got != d {
		t.Fatalf("round trip = %v, want %v", got, d)
	}
	if !d.Time().Equal(time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("Time = %v", d.Time())
	}
}

func TestDateIsZero(t *testing.T) {
	var zero events.Date
	if !zero.IsZero() {
		t.Fatal("zero value should report IsZero")
	}
	if (events.Date{Year: 2024, Month: time.March, Day: 10}).IsZero() {
		t.Fatal("populated date should not report IsZero")
	}
}
