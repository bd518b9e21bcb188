package pos_model

import "time"

// User roles.
const (
	UserTypeAdmin   = 1
	UserTypeManager = 2
	UserTypeStaff   = 3
)

type User struct {
	Id         int       `json:"id"`
	Username   string    `json:"username" gorm:"column:username"`
	Password   string    `json:"-" gorm:"column:password"`
	UserType   int       `json:"user_type" gorm:"column:user_type"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar"`
	Enable     int       `json:"enable"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time"`
	UpdateTime time.Time `json:"update_time" gorm:"column:update_time"`
}

func (User) TableName() string {
	return "users"
}
