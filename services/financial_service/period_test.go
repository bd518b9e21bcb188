package financial_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeReportType(t *testing.T) {
	assert.Equal(t, ReportMonthly, NormalizeReportType("monthly"))
	assert.Equal(t, ReportYearly, NormalizeReportType("yearly"))

	// Unknown tokens quietly become weekly, they are not errors.
	assert.Equal(t, ReportWeekly, NormalizeReportType(""))
	assert.Equal(t, ReportWeekly, NormalizeReportType("daily"))
	assert.Equal(t, ReportWeekly, NormalizeReportType("Monthly"))
}

func TestResolvePeriodCalendarAware(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	start, end := ResolvePeriod(ReportWeekly, now)
	assert.Equal(t, now, end)
	assert.Equal(t, now.AddDate(0, 0, -7), start)

	// One calendar month back from Mar 31 normalizes past Feb 28.
	start, _ = ResolvePeriod(ReportMonthly, now)
	assert.Equal(t, time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC), start)

	start, _ = ResolvePeriod(ReportQuarterly, now)
	assert.Equal(t, now.AddDate(0, -3, 0), start)

	start, _ = ResolvePeriod(ReportYearly, now)
	assert.Equal(t, time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC), start)
}

func TestResolvePeriodUnknownTokenIsWeekly(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	start, end := ResolvePeriod("fortnightly", now)
	assert.Equal(t, now.AddDate(0, 0, -7), start)
	assert.Equal(t, now, end)
}

func TestMonthWindowsDisjointAndAdjacent(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	thisStart, lastStart := MonthWindows(now)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), thisStart)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), lastStart)

	// The boundary instant belongs to the current month only.
	boundary := thisStart
	assert.False(t, boundary.Before(thisStart))
	assert.True(t, boundary.After(lastStart) || boundary.Equal(lastStart))
}

func TestMonthWindowsJanuaryWrapsYear(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	thisStart, lastStart := MonthWindows(now)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), thisStart)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), lastStart)
}
