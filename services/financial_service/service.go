package financial_service

import (
	"time"

	"resto-go-pos/inout"
	"resto-go-pos/model/pos_model"

	"gorm.io/gorm"
)

// FinancialService computes the financial reports. Every call recomputes
// from a fresh snapshot; there is no caching layer. Methods return errors
// honestly; downgrading an error into fallback data is the transport
// layer's decision.
type FinancialService struct {
	db *gorm.DB
}

func NewFinancialService(db *gorm.DB) *FinancialService {
	return &FinancialService{db: db}
}

// ExpenseReport breaks down expenses for the current calendar month, with
// trends against the previous month.
func (s *FinancialService) ExpenseReport() ([]inout.ExpenseCategory, error) {
	now := time.Now()
	thisStart, lastStart := MonthWindows(now)

	curOrders, err := s.settledOrders(thisStart, now)
	if err != nil {
		return nil, err
	}
	prevOrders, err := s.settledOrders(lastStart, thisStart)
	if err != nil {
		return nil, err
	}
	curShifts, err := s.completedShifts(thisStart, now)
	if err != nil {
		return nil, err
	}
	prevShifts, err := s.completedShifts(lastStart, thisStart)
	if err != nil {
		return nil, err
	}

	curIngredient := IngredientCost(curOrders)
	prevIngredient := IngredientCost(prevOrders)
	curLabor := LaborCost(curShifts)
	prevLabor := LaborCost(prevShifts)

	rows := BuildExpenseRows(
		curIngredient,
		curLabor,
		Trend(curIngredient, prevIngredient),
		Trend(curLabor, prevLabor),
	)
	return rows, nil
}

// MenuAnalysis computes profitability for every menu item over the trailing
// three calendar months.
func (s *FinancialService) MenuAnalysis() ([]inout.MenuAnalysisItem, error) {
	now := time.Now()
	start := now.AddDate(0, -3, 0)

	var items []pos_model.MenuItem
	err := s.db.
		Preload("Category").
		Preload("Ingredients").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	sold, err := s.settledOrderItems(start, now)
	if err != nil {
		return nil, err
	}

	return AnalyzeMenu(items, sold), nil
}

// GenerateReport produces the full report for an explicit period token.
// Unknown tokens resolve to the weekly window.
func (s *FinancialService) GenerateReport(reportType string) (inout.PeriodReport, error) {
	now := time.Now()
	start, end := ResolvePeriod(reportType, now)

	orders, err := s.settledOrders(start, end)
	if err != nil {
		return inout.PeriodReport{}, err
	}
	shifts, err := s.completedShifts(start, end)
	if err != nil {
		return inout.PeriodReport{}, err
	}

	var menuItems []pos_model.MenuItem
	if err := s.db.Preload("Category").Find(&menuItems).Error; err != nil {
		return inout.PeriodReport{}, err
	}
	menu := make(map[int]pos_model.MenuItem, len(menuItems))
	for _, mi := range menuItems {
		menu[mi.Id] = mi
	}

	var revenue float64
	for _, order := range orders {
		revenue += order.Total
	}

	report := BuildPeriodReport(
		reportType,
		start, end,
		revenue,
		IngredientCost(orders),
		LaborCost(shifts),
		len(orders),
		TopSellers(orders, menu, 5),
	)
	return report, nil
}

// settledOrders loads completed/paid orders created in [start, end), with
// nested items, menu items and their ingredient lists.
func (s *FinancialService) settledOrders(start, end time.Time) ([]pos_model.Order, error) {
	var orders []pos_model.Order
	err := s.db.
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Items.MenuItem.Ingredients").
		Where("status IN ?", pos_model.SettledStatuses).
		Where("create_time >= ? AND create_time < ?", start, end).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// completedShifts loads completed shifts started in [start, end), with the
// staff record for the hourly rate.
func (s *FinancialService) completedShifts(start, end time.Time) ([]pos_model.Shift, error) {
	var shifts []pos_model.Shift
	err := s.db.
		Preload("Staff").
		Where("status = ?", pos_model.ShiftStatusCompleted).
		Where("start_time >= ? AND start_time < ?", start, end).
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

// settledOrderItems loads the order items of settled orders in [start, end).
func (s *FinancialService) settledOrderItems(start, end time.Time) ([]pos_model.OrderItem, error) {
	var sold []pos_model.OrderItem
	err := s.db.
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status IN ?", pos_model.SettledStatuses).
		Where("orders.create_time >= ? AND orders.create_time < ?", start, end).
		Find(&sold).Error
	if err != nil {
		return nil, err
	}
	return sold, nil
}
