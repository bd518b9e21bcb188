package pos_model

import "time"

type ActivityLog struct {
	Id         int       `json:"id"`
	UserId     int       `json:"user_id" gorm:"column:user_id"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail"`
	ClientIP   string    `json:"client_ip" gorm:"column:client_ip"`
	StatusCode int       `json:"status_code" gorm:"column:status_code"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time"`
}

func (ActivityLog) TableName() string {
	return "activity_log"
}
