package inout

// ExpenseCategory is one row of the expense breakdown.
type ExpenseCategory struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
	Trend      float64 `json:"trend"`
}

// MenuAnalysisItem is one row of the menu profitability report.
type MenuAnalysisItem struct {
	Id           int     `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Cost         float64 `json:"cost"`
	Price        float64 `json:"price"`
	Sales        int     `json:"sales"`
	Revenue      float64 `json:"revenue"`
	ProfitMargin int     `json:"profitMargin"`
}

// TopMenuItem is a top-seller entry inside a period report.
type TopMenuItem struct {
	MenuItemId int     `json:"menuItemId"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Quantity   int     `json:"quantity"`
	Revenue    float64 `json:"revenue"`
}

// PeriodReport is the full report for a named period.
type PeriodReport struct {
	ReportId      string        `json:"reportId"`
	ReportType    string        `json:"reportType"`
	GeneratedAt   string        `json:"generatedAt"`
	PeriodStart   string        `json:"periodStart"`
	PeriodEnd     string        `json:"periodEnd"`
	TotalRevenue  float64       `json:"totalRevenue"`
	FoodCost      float64       `json:"foodCost"`
	LaborCost     float64       `json:"laborCost"`
	Overhead      float64       `json:"overhead"`
	TotalExpenses float64       `json:"totalExpenses"`
	NetProfit     float64       `json:"netProfit"`
	ProfitMargin  float64       `json:"profitMargin"`
	OrderCount    int           `json:"orderCount"`
	TopItems      []TopMenuItem `json:"topItems"`
}

// GenerateReportReq selects the report window.
type GenerateReportReq struct {
	ReportType string `json:"reportType"`
}
