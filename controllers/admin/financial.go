package admin

import (
	"log"

	"resto-go-pos/inout"
	"resto-go-pos/services/financial_service"

	"github.com/gin-gonic/gin"
)

// FinancialAggregator computes the financial reports from live data.
type FinancialAggregator interface {
	ExpenseReport() ([]inout.ExpenseCategory, error)
	MenuAnalysis() ([]inout.MenuAnalysisItem, error)
	GenerateReport(reportType string) (inout.PeriodReport, error)
}

// FinancialController serves the reporting endpoints. When the aggregator
// fails, it logs the cause and answers with the canned fallback payload so
// dashboards keep rendering.
type FinancialController struct {
	agg FinancialAggregator
}

func NewFinancialController(agg FinancialAggregator) *FinancialController {
	return &FinancialController{agg: agg}
}

func (ctl *FinancialController) Expenses(c *gin.Context) {
	rows, err := ctl.agg.ExpenseReport()
	if err != nil {
		log.Printf("expense report failed, serving fallback: %v", err)
		Resp.Succ(c, financial_service.FallbackExpenseReport())
		return
	}
	Resp.Succ(c, rows)
}

func (ctl *FinancialController) MenuAnalysis(c *gin.Context) {
	items, err := ctl.agg.MenuAnalysis()
	if err != nil {
		log.Printf("menu analysis failed, serving fallback: %v", err)
		Resp.Succ(c, financial_service.FallbackMenuAnalysis())
		return
	}
	Resp.Succ(c, items)
}

func (ctl *FinancialController) GenerateReport(c *gin.Context) {
	var params inout.GenerateReportReq
	// Body is optional; a missing or bad body falls back to the weekly window.
	_ = c.ShouldBindJSON(&params)

	reportType := financial_service.NormalizeReportType(params.ReportType)
	report, err := ctl.agg.GenerateReport(reportType)
	if err != nil {
		log.Printf("period report failed, serving fallback: %v", err)
		Resp.Succ(c, financial_service.FallbackPeriodReport(reportType))
		return
	}
	Resp.Succ(c, report)
}
