package inout

type AddUserReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,password"`
	UserType int    `json:"userType"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Enable   int    `json:"enable"`
}

type UpdateUserReq struct {
	Id       int    `json:"id" binding:"required"`
	Username string `json:"username"`
	UserType int    `json:"userType"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Enable   int    `json:"enable"`
}

type UserItem struct {
	Id         int    `json:"id"`
	Username   string `json:"username"`
	UserType   int    `json:"userType"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
	Enable     int    `json:"enable"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
}
