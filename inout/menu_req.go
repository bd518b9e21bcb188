package inout

type AddCategoryReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type UpdateCategoryReq struct {
	Id          int    `json:"id" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type AddMenuItemReq struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	CategoryId    int     `json:"categoryId" binding:"required"`
	Cover         string  `json:"cover"`
	Available     int     `json:"available"`
	IngredientIds []int   `json:"ingredientIds"`
}

type UpdateMenuItemReq struct {
	Id            int     `json:"id" binding:"required"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"gte=0"`
	CategoryId    int     `json:"categoryId"`
	Cover         string  `json:"cover"`
	Available     int     `json:"available"`
	IngredientIds []int   `json:"ingredientIds"`
}
