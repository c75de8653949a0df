package pipeline

import (
	"sort"
	"time"

	"chronicle/internal/events"
)

// dstTransitionDates returns the U.S. daylight-saving transition dates for
// every year in the inclusive range: clocks spring forward on the second
// Sunday of March and fall back on the first Sunday of November. Local
// timestamps on those days are ambiguous, so the calendar stage removes
// them wholesale.
func dstTransitionDates(firstYear, lastYear int) map[events.Date]struct{} {
	dates := make(map[events.Date]struct{}, 2*(lastYear-firstYear+1))
	for year := firstYear; year <= lastYear; year++ {
		dates[nthSunday(year, time.March, 2)] = struct{}{}
		dates[nthSunday(year, time.November, 1)] = struct{}{}
	}
	return dates
}

// DSTTransitionDates lists the transition dates the pipeline excludes,
// sorted chronologically.
func DSTTransitionDates() []events.Date {
	set := dstTransitionDates(dstFirstYear, dstLastYear)
	dates := make([]events.Date, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func nthSunday(year int, month time.Month, n int) events.Date {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysUntilSunday := (7 - int(first.Weekday())) % 7
	return events.Date{Year: year, Month: month, Day: 1 + daysUntilSunday + 7*(n-1)}
}
