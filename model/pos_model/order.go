package pos_model

import "time"

// Order statuses. Only settled orders count toward revenue and cost.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusCompleted  = "COMPLETED"
	OrderStatusPaid       = "PAID"
	OrderStatusCancelled  = "CANCELLED"
)

// SettledStatuses are the statuses counted in revenue/cost computations.
var SettledStatuses = []string{OrderStatusCompleted, OrderStatusPaid}

type Order struct {
	Id         int       `json:"id"`
	OrderNo    string    `json:"order_no" gorm:"column:order_no"`
	TableNo    string    `json:"table_no" gorm:"column:table_no"`
	StaffId    int       `json:"staff_id" gorm:"column:staff_id"`
	Status     string    `json:"status"`
	Total      float64   `json:"total"`
	Notes      string    `json:"notes"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time"`
	UpdateTime time.Time `json:"update_time" gorm:"column:update_time"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderId"`
}

// OrderItem keeps the unit price at the time of sale; it is never updated
// when the menu price changes.
type OrderItem struct {
	Id         int     `json:"id"`
	OrderId    int     `json:"order_id" gorm:"column:order_id"`
	MenuItemId int     `json:"menu_item_id" gorm:"column:menu_item_id"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`

	MenuItem MenuItem `json:"menu_item" gorm:"foreignKey:MenuItemId"`
}

func (Order) TableName() string {
	return "orders"
}

func (OrderItem) TableName() string {
	return "order_items"
}
