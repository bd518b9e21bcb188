package admin

import (
	"resto-go-pos/inout"
	"resto-go-pos/pkg/response"
	"resto-go-pos/services/admin_service"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	service *admin_service.ActivityService
}

func NewActivityController(service *admin_service.ActivityService) *ActivityController {
	return &ActivityController{service: service}
}

func (ctl *ActivityController) List(c *gin.Context) {
	var params inout.ListpageReq
	if err := c.ShouldBindQuery(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	data, err := ctl.service.GetActivityList(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, data)
}
