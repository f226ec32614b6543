package utils

import (
	"time"
)

// Month is one scanned month: its English name and the first day of
// the month, which the price provider takes as beginning_of_period.
type Month struct {
	Name     string
	FirstDay time.Time
}

// NextMonth returns the calendar month following the given one,
// incrementing the year on the December to January rollover.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// MonthsFrom returns count consecutive months starting at start's
// month, inclusive. Each entry carries the first-of-month date, e.g.
// starting 2019-11-03 with count 3:
//
//	November 2019-11-01, December 2019-12-01, January 2020-01-01
func MonthsFrom(start time.Time, count int) []Month {
	months := make([]Month, 0, count)

	year, month, _ := start.Date()
	for i := 0; i < count; i++ {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		months = append(months, Month{Name: month.String(), FirstDay: first})
		year, month = NextMonth(year, month)
	}

	return months
}

// MonthsBetween returns every month spanned by the [start, end] range,
// inclusive on both sides. Spans crossing a year boundary wrap
// December to January rather than coming back empty.
func MonthsBetween(start, end time.Time) []Month {
	y1, m1, _ := start.Date()
	y2, m2, _ := end.Date()

	count := (y2-y1)*12 + int(m2) - int(m1) + 1
	if count < 1 {
		return nil
	}

	return MonthsFrom(start, count)
}

// WeekdayOf returns the English weekday name of the given date.
func WeekdayOf(t time.Time) string {
	return t.Weekday().String()
}

// NextWednesday returns the smallest date >= t that falls on a
// Wednesday. A Wednesday input is returned unchanged; the distance is
// computed forward only.
func NextWednesday(t time.Time) time.Time {
	diff := (int(time.Wednesday) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, diff)
}
