package inout

type AddStaffReq struct {
	Name       string  `json:"name" binding:"required"`
	Role       string  `json:"role" binding:"required"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	HourlyRate float64 `json:"hourlyRate" binding:"gte=0"`
	Enable     int     `json:"enable"`
}

type UpdateStaffReq struct {
	Id         int     `json:"id" binding:"required"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	HourlyRate float64 `json:"hourlyRate" binding:"gte=0"`
	Enable     int     `json:"enable"`
}

type ScheduleShiftReq struct {
	StaffId   int    `json:"staffId" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime"`
	Notes     string `json:"notes"`
}

type ShiftListReq struct {
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"pageSize" form:"pageSize"`
	StaffId  int    `json:"staffId" form:"staffId"`
	Status   string `json:"status" form:"status"`
	Start    string `json:"start" form:"start"`
	End      string `json:"end" form:"end"`
}

type ShiftItem struct {
	Id        int     `json:"id"`
	StaffId   int     `json:"staffId"`
	StaffName string  `json:"staffName"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Status    string  `json:"status"`
	Hours     float64 `json:"hours"`
	Notes     string  `json:"notes"`
}
