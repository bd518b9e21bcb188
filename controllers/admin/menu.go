package admin

import (
	"strconv"

	"resto-go-pos/inout"
	"resto-go-pos/pkg/response"
	"resto-go-pos/services/admin_service"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menu       *admin_service.MenuService
	categories *admin_service.CategoryService
}

func NewMenuController(menu *admin_service.MenuService, categories *admin_service.CategoryService) *MenuController {
	return &MenuController{menu: menu, categories: categories}
}

func (ctl *MenuController) Add(c *gin.Context) {
	var params inout.AddMenuItemReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := ctl.menu.AddMenuItem(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, id)
}

func (ctl *MenuController) Update(c *gin.Context) {
	var params inout.UpdateMenuItemReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := ctl.menu.UpdateMenuItem(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, id)
}

func (ctl *MenuController) Delete(c *gin.Context) {
	var params inout.IdsReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	if err := ctl.menu.DeleteMenuItems(params.Ids); err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, true)
}

func (ctl *MenuController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		Resp.Err(c, response.INVALID_PARAMS, "invalid id")
		return
	}
	item, err := ctl.menu.GetMenuItemDetail(id)
	if err != nil {
		Resp.Err(c, response.NOT_FOUND, err.Error())
		return
	}
	Resp.Succ(c, item)
}

func (ctl *MenuController) List(c *gin.Context) {
	var params inout.ListpageReq
	if err := c.ShouldBindQuery(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	data, err := ctl.menu.GetMenuItemList(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, data)
}

func (ctl *MenuController) AddCategory(c *gin.Context) {
	var params inout.AddCategoryReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := ctl.categories.AddCategory(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, id)
}

func (ctl *MenuController) UpdateCategory(c *gin.Context) {
	var params inout.UpdateCategoryReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := ctl.categories.UpdateCategory(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, id)
}

func (ctl *MenuController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		Resp.Err(c, response.INVALID_PARAMS, "invalid id")
		return
	}
	if err := ctl.categories.DeleteCategory(id); err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, true)
}

func (ctl *MenuController) CategoryList(c *gin.Context) {
	data, err := ctl.categories.GetCategoryList()
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, data)
}
