package pos_model

import "time"

const (
	PurchaseStatusOrdered  = "ORDERED"
	PurchaseStatusReceived = "RECEIVED"
)

type PurchaseOrder struct {
	Id         int       `json:"id"`
	Supplier   string    `json:"supplier"`
	Status     string    `json:"status"`
	TotalCost  float64   `json:"total_cost" gorm:"column:total_cost"`
	CreatedBy  int       `json:"created_by" gorm:"column:created_by"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time"`
	UpdateTime time.Time `json:"update_time" gorm:"column:update_time"`

	Items []PurchaseOrderItem `json:"items" gorm:"foreignKey:PurchaseOrderId"`
}

type PurchaseOrderItem struct {
	Id              int     `json:"id"`
	PurchaseOrderId int     `json:"purchase_order_id" gorm:"column:purchase_order_id"`
	IngredientId    int     `json:"ingredient_id" gorm:"column:ingredient_id"`
	Quantity        float64 `json:"quantity"`
	UnitCost        float64 `json:"unit_cost" gorm:"column:unit_cost"`

	Ingredient Ingredient `json:"ingredient" gorm:"foreignKey:IngredientId"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}
