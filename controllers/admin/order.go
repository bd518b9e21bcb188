package admin

import (
	"strconv"

	"resto-go-pos/inout"
	"resto-go-pos/pkg/response"
	"resto-go-pos/services/admin_service"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *admin_service.OrderService
}

func NewOrderController(service *admin_service.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (ctl *OrderController) Create(c *gin.Context) {
	var params inout.CreateOrderReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	order, err := ctl.service.CreateOrder(c, params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, order)
}

func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var params inout.UpdateOrderStatusReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	if err := ctl.service.UpdateOrderStatus(params); err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, true)
}

func (ctl *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		Resp.Err(c, response.INVALID_PARAMS, "invalid id")
		return
	}
	order, err := ctl.service.GetOrderDetail(id)
	if err != nil {
		Resp.Err(c, response.NOT_FOUND, err.Error())
		return
	}
	Resp.Succ(c, order)
}

func (ctl *OrderController) List(c *gin.Context) {
	var params inout.OrderListReq
	if err := c.ShouldBindQuery(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	data, err := ctl.service.GetOrderList(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, data)
}
