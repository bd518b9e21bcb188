package inout

type CreateOrderReq struct {
	TableNo string         `json:"tableNo"`
	Notes   string         `json:"notes"`
	Items   []OrderItemReq `json:"items" binding:"required,min=1,dive"`
}

type OrderItemReq struct {
	MenuItemId int `json:"menuItemId" binding:"required"`
	Quantity   int `json:"quantity" binding:"required,gt=0"`
}

type UpdateOrderStatusReq struct {
	Id     int    `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type OrderListReq struct {
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"pageSize" form:"pageSize"`
	Status   string `json:"status" form:"status"`
	Start    string `json:"start" form:"start"`
	End      string `json:"end" form:"end"`
}

type OrderItemResp struct {
	MenuItemId int     `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type OrderResp struct {
	Id         int             `json:"id"`
	OrderNo    string          `json:"orderNo"`
	TableNo    string          `json:"tableNo"`
	Status     string          `json:"status"`
	Total      float64         `json:"total"`
	Notes      string          `json:"notes"`
	CreateTime string          `json:"createTime"`
	Items      []OrderItemResp `json:"items"`
}
