package admin

import (
	"strconv"

	"resto-go-pos/inout"
	"resto-go-pos/pkg/response"
	"resto-go-pos/services/admin_service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *admin_service.UserService
}

func NewUserController(service *admin_service.UserService) *UserController {
	return &UserController{service: service}
}

func (ctl *UserController) Add(c *gin.Context) {
	var params inout.AddUserReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := ctl.service.AddUser(c, params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, id)
}

func (ctl *UserController) Update(c *gin.Context) {
	var params inout.UpdateUserReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := ctl.service.UpdateUser(c, params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, id)
}

func (ctl *UserController) Delete(c *gin.Context) {
	var params inout.IdsReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	if err := ctl.service.DeleteUsers(c, params.Ids); err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, true)
}

func (ctl *UserController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		Resp.Err(c, response.INVALID_PARAMS, "invalid id")
		return
	}
	user, err := ctl.service.GetUserDetail(id)
	if err != nil {
		Resp.Err(c, response.NOT_FOUND, err.Error())
		return
	}
	Resp.Succ(c, user)
}

func (ctl *UserController) List(c *gin.Context) {
	var params inout.ListpageReq
	if err := c.ShouldBindQuery(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	data, err := ctl.service.GetUserList(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, data)
}
