package financial_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackExpenseReportShape(t *testing.T) {
	rows := FallbackExpenseReport()
	require.Len(t, rows, 5)
	assert.Equal(t, CategoryLabor, rows[0].Category)
	assert.InDelta(t, 18200, rows[0].Amount, 1e-9)
	assert.Equal(t, CategoryWaste, rows[4].Category)
}

func TestFallbackPeriodReportFreshIdentity(t *testing.T) {
	a := FallbackPeriodReport(ReportMonthly)
	b := FallbackPeriodReport(ReportMonthly)

	assert.Equal(t, ReportMonthly, a.ReportType)
	assert.InDelta(t, 48250, a.TotalRevenue, 1e-9)
	assert.Len(t, a.TopItems, 4)

	// The id is regenerated per response.
	assert.Len(t, a.ReportId, 9)
	assert.NotEqual(t, a.ReportId, b.ReportId)
}

func TestFallbackPeriodReportNormalizesType(t *testing.T) {
	report := FallbackPeriodReport("whenever")
	assert.Equal(t, ReportWeekly, report.ReportType)
}
