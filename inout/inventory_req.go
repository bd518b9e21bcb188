package inout

type AddIngredientReq struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"gte=0"`
	Unit      string  `json:"unit" binding:"required"`
	Category  string  `json:"category"`
	Threshold float64 `json:"threshold" binding:"gte=0"`
	Supplier  string  `json:"supplier"`
}

type UpdateIngredientReq struct {
	Id        int     `json:"id" binding:"required"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity" binding:"gte=0"`
	Unit      string  `json:"unit"`
	Category  string  `json:"category"`
	Threshold float64 `json:"threshold" binding:"gte=0"`
	Supplier  string  `json:"supplier"`
}

type RestockReq struct {
	Id       int     `json:"id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}

type CreatePurchaseOrderReq struct {
	Supplier string              `json:"supplier" binding:"required"`
	Items    []PurchaseOrderItem `json:"items" binding:"required,min=1,dive"`
}

type PurchaseOrderItem struct {
	IngredientId int     `json:"ingredientId" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	UnitCost     float64 `json:"unitCost" binding:"gte=0"`
}
