package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resto-go-pos/inout"
	"resto-go-pos/pkg/response"
	"resto-go-pos/services/financial_service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAggregator fails or succeeds on demand.
type stubAggregator struct {
	expenses []inout.ExpenseCategory
	err      error
}

func (s *stubAggregator) ExpenseReport() ([]inout.ExpenseCategory, error) {
	return s.expenses, s.err
}

func (s *stubAggregator) MenuAnalysis() ([]inout.MenuAnalysisItem, error) {
	return nil, s.err
}

func (s *stubAggregator) GenerateReport(reportType string) (inout.PeriodReport, error) {
	if s.err != nil {
		return inout.PeriodReport{}, s.err
	}
	return inout.PeriodReport{ReportType: reportType}, nil
}

func newFinancialRouter(agg FinancialAggregator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctl := NewFinancialController(agg)
	r.GET("/financial/expenses", ctl.Expenses)
	r.GET("/financial/menu-analysis", ctl.MenuAnalysis)
	r.POST("/financial/generate-report", ctl.GenerateReport)
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestExpensesDowngradesToFallback(t *testing.T) {
	r := newFinancialRouter(&stubAggregator{err: errors.New("db gone")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/financial/expenses", nil)
	r.ServeHTTP(w, req)

	// Failures never surface: still HTTP 200 with a success envelope.
	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, response.SUCCESS, envelope.Code)

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var rows []inout.ExpenseCategory
	require.NoError(t, json.Unmarshal(raw, &rows))
	assert.Equal(t, financial_service.FallbackExpenseReport(), rows)
}

func TestExpensesPassesThroughOnSuccess(t *testing.T) {
	live := []inout.ExpenseCategory{
		{Category: "Staff Labor", Amount: 123.45, Percentage: 50, Trend: 1.1},
	}
	r := newFinancialRouter(&stubAggregator{expenses: live})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/financial/expenses", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, response.SUCCESS, envelope.Code)

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var rows []inout.ExpenseCategory
	require.NoError(t, json.Unmarshal(raw, &rows))
	assert.Equal(t, live, rows)
}

func TestMenuAnalysisDowngradesToFallback(t *testing.T) {
	r := newFinancialRouter(&stubAggregator{err: errors.New("db gone")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/financial/menu-analysis", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, response.SUCCESS, envelope.Code)

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var rows []inout.MenuAnalysisItem
	require.NoError(t, json.Unmarshal(raw, &rows))
	assert.Equal(t, financial_service.FallbackMenuAnalysis(), rows)
}

func TestGenerateReportDowngradesToFallback(t *testing.T) {
	r := newFinancialRouter(&stubAggregator{err: errors.New("db gone")})

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"reportType":"monthly"}`)
	req := httptest.NewRequest(http.MethodPost, "/financial/generate-report", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, response.SUCCESS, envelope.Code)

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var report inout.PeriodReport
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Equal(t, "monthly", report.ReportType)
	assert.InDelta(t, 48250, report.TotalRevenue, 1e-9)
	assert.Len(t, report.TopItems, 4)
}

func TestGenerateReportNormalizesMissingBody(t *testing.T) {
	r := newFinancialRouter(&stubAggregator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/financial/generate-report", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, response.SUCCESS, envelope.Code)

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var report inout.PeriodReport
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Equal(t, financial_service.ReportWeekly, report.ReportType)
}
