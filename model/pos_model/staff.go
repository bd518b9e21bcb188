package pos_model

import "time"

// Shift statuses.
const (
	ShiftStatusScheduled = "SCHEDULED"
	ShiftStatusActive    = "ACTIVE"
	ShiftStatusCompleted = "COMPLETED"
	ShiftStatusCancelled = "CANCELLED"
)

type Staff struct {
	Id         int       `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	HourlyRate float64   `json:"hourly_rate" gorm:"column:hourly_rate"`
	Enable     int       `json:"enable"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time"`
	UpdateTime time.Time `json:"update_time" gorm:"column:update_time"`
}

type Shift struct {
	Id         int       `json:"id"`
	StaffId    int       `json:"staff_id" gorm:"column:staff_id"`
	StartTime  time.Time `json:"start_time" gorm:"column:start_time"`
	EndTime    time.Time `json:"end_time" gorm:"column:end_time"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time"`
	UpdateTime time.Time `json:"update_time" gorm:"column:update_time"`

	Staff Staff `json:"staff" gorm:"foreignKey:StaffId"`
}

func (Staff) TableName() string {
	return "staff"
}

func (Shift) TableName() string {
	return "shifts"
}
