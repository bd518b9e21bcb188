package financial_service

import "time"

// Report period tokens.
const (
	ReportWeekly    = "weekly"
	ReportMonthly   = "monthly"
	ReportQuarterly = "quarterly"
	ReportYearly    = "yearly"
)

// NormalizeReportType maps unknown tokens to the weekly default. This is a
// silent fallback, not an error.
func NormalizeReportType(reportType string) string {
	switch reportType {
	case ReportWeekly, ReportMonthly, ReportQuarterly, ReportYearly:
		return reportType
	default:
		return ReportWeekly
	}
}

// ResolvePeriod returns the half-open window [start, end) for a report type,
// ending at now. Month and year lengths are calendar-aware, not fixed-day
// approximations.
func ResolvePeriod(reportType string, now time.Time) (start, end time.Time) {
	end = now
	switch NormalizeReportType(reportType) {
	case ReportMonthly:
		start = now.AddDate(0, -1, 0)
	case ReportQuarterly:
		start = now.AddDate(0, -3, 0)
	case ReportYearly:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, 0, -7)
	}
	return start, end
}

// MonthWindows returns the start of the current calendar month and the start
// of the previous one. The previous month's window is [lastStart, thisStart),
// so the two windows are disjoint and adjacent; an order created exactly at
// the month boundary belongs to the current month only.
func MonthWindows(now time.Time) (thisStart, lastStart time.Time) {
	thisStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastStart = thisStart.AddDate(0, -1, 0)
	return thisStart, lastStart
}
