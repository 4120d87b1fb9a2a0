// Package report resolves report periods and renders period reports as PDF.
package report

import (
	"time"

	"kassa/internal/domain"
)

// Report types accepted by ResolvePeriod.
const (
	TypeDaily   = "daily"
	TypeWeekly  = "weekly"
	TypeMonthly = "monthly"
	TypeYearly  = "yearly"
)

// ResolvePeriod maps a report type and a reference date to an inclusive
// [start, end] calendar range. The reference is truncated to a UTC calendar
// day so period bounds compare cleanly against stored transaction dates.
// Weekly periods run from the most recent Monday through the reference date.
func ResolvePeriod(reportType string, ref time.Time) (time.Time, time.Time, error) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	switch reportType {
	case TypeDaily:
		return day, day, nil
	case TypeWeekly:
		// Monday-based week offset; Sunday counts as six days after Monday.
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset), day, nil
	case TypeMonthly:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1) // First of next month minus one day
		return start, end, nil
	case TypeYearly:
		start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		return start, end, nil
	}
	return time.Time{}, time.Time{}, domain.ErrInvalidReportType
}
