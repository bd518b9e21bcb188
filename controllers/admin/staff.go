package admin

import (
	"strconv"

	"resto-go-pos/inout"
	"resto-go-pos/pkg/response"
	"resto-go-pos/services/admin_service"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	staff  *admin_service.StaffService
	shifts *admin_service.ShiftService
}

func NewStaffController(staff *admin_service.StaffService, shifts *admin_service.ShiftService) *StaffController {
	return &StaffController{staff: staff, shifts: shifts}
}

func (ctl *StaffController) Add(c *gin.Context) {
	var params inout.AddStaffReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := ctl.staff.AddStaff(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, id)
}

func (ctl *StaffController) Update(c *gin.Context) {
	var params inout.UpdateStaffReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := ctl.staff.UpdateStaff(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, id)
}

func (ctl *StaffController) Delete(c *gin.Context) {
	var params inout.IdsReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	if err := ctl.staff.DeleteStaff(params.Ids); err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, true)
}

func (ctl *StaffController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		Resp.Err(c, response.INVALID_PARAMS, "invalid id")
		return
	}
	staff, err := ctl.staff.GetStaffDetail(id)
	if err != nil {
		Resp.Err(c, response.NOT_FOUND, err.Error())
		return
	}
	Resp.Succ(c, staff)
}

func (ctl *StaffController) List(c *gin.Context) {
	var params inout.ListpageReq
	if err := c.ShouldBindQuery(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	data, err := ctl.staff.GetStaffList(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, data)
}

func (ctl *StaffController) ScheduleShift(c *gin.Context) {
	var params inout.ScheduleShiftReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := ctl.shifts.ScheduleShift(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, id)
}

func (ctl *StaffController) CompleteShift(c *gin.Context) {
	var params struct {
		Id      int    `json:"id" binding:"required"`
		EndTime string `json:"endTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	if err := ctl.shifts.CompleteShift(params.Id, params.EndTime); err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, true)
}

func (ctl *StaffController) CancelShift(c *gin.Context) {
	var params struct {
		Id int `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	if err := ctl.shifts.CancelShift(params.Id); err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, true)
}

func (ctl *StaffController) ShiftList(c *gin.Context) {
	var params inout.ShiftListReq
	if err := c.ShouldBindQuery(&params); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	data, err := ctl.shifts.GetShiftList(params)
	if err != nil {
		Resp.Err(c, response.ERROR, err.Error())
		return
	}
	Resp.Succ(c, data)
}
