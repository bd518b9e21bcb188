package inout

type LoginReq struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Captcha  string `json:"captcha" form:"captcha" binding:"required"`
}

type LoginRes struct {
	AccessToken string `json:"accessToken"`
}

type AuthPwReq struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,password"`
}
