package admin

import (
	"resto-go-pos/inout"
	"resto-go-pos/pkg/response"
	"resto-go-pos/services/admin_service"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	inventory *admin_service.InventoryService
	purchase  *admin_service.PurchaseService
}

func NewInventoryController(inventory *admin_service.InventoryService, purchase *admin_service.PurchaseService) *InventoryController {
	return &InventoryController{inventory: inventory, purchase: purchase}
}

func (ctl *InventoryController) Add(c *gin.Context) {
	var params inout.AddIngredientReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := ctl.inventory.AddIngredient(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, id)
}

func (ctl *InventoryController) Update(c *gin.Context) {
	var params inout.UpdateIngredientReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := ctl.inventory.UpdateIngredient(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, id)
}

func (ctl *InventoryController) Delete(c *gin.Context) {
	var params inout.IdsReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	if err := ctl.inventory.DeleteIngredients(params.Ids); err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, true)
}

func (ctl *InventoryController) Restock(c *gin.Context) {
	var params inout.RestockReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	if err := ctl.inventory.Restock(params); err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, true)
}

func (ctl *InventoryController) List(c *gin.Context) {
	var params inout.ListpageReq
	if err := c.ShouldBindQuery(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	data, err := ctl.inventory.GetIngredientList(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, data)
}

// LowStock lists ingredients at or below their restock threshold.
func (ctl *InventoryController) LowStock(c *gin.Context) {
	data, err := ctl.inventory.GetLowStock()
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, data)
}

func (ctl *InventoryController) CreatePurchaseOrder(c *gin.Context) {
	var params inout.CreatePurchaseOrderReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := ctl.purchase.CreatePurchaseOrder(c, params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, id)
}

func (ctl *InventoryController) PurchaseOrderList(c *gin.Context) {
	var params inout.ListpageReq
	if err := c.ShouldBindQuery(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	data, err := ctl.purchase.GetPurchaseOrderList(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, data)
}
