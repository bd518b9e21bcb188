package pos_model

import "time"

// Ingredient is a stock item. Quantity doubles as the per-unit cost proxy in
// the financial reports; the reporting code sums it directly.
type Ingredient struct {
	Id         int       `json:"id"`
	Name       string    `json:"name"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	Category   string    `json:"category"`
	Threshold  float64   `json:"threshold"`
	Supplier   string    `json:"supplier"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time"`
	UpdateTime time.Time `json:"update_time" gorm:"column:update_time"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
