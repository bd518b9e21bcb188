package inout

// ListpageReq is the shared pagination request.
type ListpageReq struct {
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"pageSize" form:"pageSize"`
	Search   string `json:"search" form:"search"`
}

// ListPageResp is the shared paginated response wrapper.
type ListPageResp struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Items    interface{} `json:"items"`
}

type IdsReq struct {
	Ids []int `json:"ids" binding:"required"`
}
