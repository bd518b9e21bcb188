package pos_model

import "time"

type Category struct {
	Id          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreateTime  time.Time `json:"create_time" gorm:"column:create_time"`
	UpdateTime  time.Time `json:"update_time" gorm:"column:update_time"`
}

type MenuItem struct {
	Id          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CategoryId  int       `json:"category_id" gorm:"column:category_id"`
	Cover       string    `json:"cover"`
	Available   int       `json:"available"`
	CreateTime  time.Time `json:"create_time" gorm:"column:create_time"`
	UpdateTime  time.Time `json:"update_time" gorm:"column:update_time"`

	Category    Category     `json:"category" gorm:"foreignKey:CategoryId"`
	Ingredients []Ingredient `json:"ingredients" gorm:"many2many:menu_item_ingredients;"`
}

func (Category) TableName() string {
	return "categories"
}

func (MenuItem) TableName() string {
	return "menu_items"
}
