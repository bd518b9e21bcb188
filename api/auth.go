package api

import (
	"net/http"

	"resto-go-pos/inout"
	"resto-go-pos/model/pos_model"
	"resto-go-pos/pkg/jwt"
	"resto-go-pos/pkg/response"
	"resto-go-pos/pkg/security"
	"resto-go-pos/redis"
	"resto-go-pos/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Auth serves login, logout, captcha and password change.
type Auth struct {
	db     *gorm.DB
	jwt    *jwt.Manager
	tokens *redis.TokenStore
}

func NewAuth(db *gorm.DB, mgr *jwt.Manager, tokens *redis.TokenStore) *Auth {
	return &Auth{db: db, jwt: mgr, tokens: tokens}
}

// Captcha renders an SVG captcha and stores the code in the cookie session.
func (a *Auth) Captcha(c *gin.Context) {
	svg, code := utils.GenerateSVG(80, 40)
	session := sessions.Default(c)
	session.Set("captcha", code)
	_ = session.Save()

	c.Header("Content-Type", "image/svg+xml; charset=utf-8")
	c.Data(http.StatusOK, "image/svg+xml", svg)
}

// Login checks the captcha and credentials and issues a token.
func (a *Auth) Login(c *gin.Context) {
	var params inout.LoginReq
	if err := c.ShouldBind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	session := sessions.Default(c)
	if params.Captcha != session.Get("captcha") {
		response.Error(c, response.INVALID_PARAMS, "incorrect captcha")
		return
	}

	var user pos_model.User
	err := a.db.Where("username = ?", params.Username).First(&user).Error
	if err != nil || user.Id == 0 {
		response.Error(c, response.INVALID_PARAMS, "incorrect username or password")
		return
	}
	if user.Enable == 0 {
		response.Error(c, response.FORBIDDEN, "account is disabled")
		return
	}

	if !security.CheckPasswordHash(params.Password, user.Password) {
		response.Error(c, response.INVALID_PARAMS, "incorrect username or password")
		return
	}

	token, err := a.jwt.GenerateToken(user.Id, 0, user.UserType)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, "failed to issue token")
		return
	}

	if a.tokens != nil {
		_ = a.tokens.Store(c.Request.Context(), user.Id, token, a.jwt.RemainingTTL(token))
	}

	response.Success(c, inout.LoginRes{AccessToken: token})
}

// Logout blacklists the current token for the rest of its lifetime.
func (a *Auth) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token != "" && a.tokens != nil {
		_ = a.tokens.Revoke(c.Request.Context(), token, a.jwt.RemainingTTL(token))
	}
	response.Success(c, true)
}

// Password changes the caller's own password after checking the old one.
func (a *Auth) Password(c *gin.Context) {
	var params inout.AuthPwReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	uid := c.GetInt("uid")
	var user pos_model.User
	if err := a.db.Where("id = ?", uid).First(&user).Error; err != nil {
		response.Error(c, response.NOT_FOUND, "user not found")
		return
	}

	if !security.CheckPasswordHash(params.OldPassword, user.Password) {
		response.Error(c, response.INVALID_PARAMS, "old password is incorrect")
		return
	}

	hash, err := security.HashPassword(params.NewPassword)
	if err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	if err := a.db.Model(&user).Update("password", hash).Error; err != nil {
		response.Error(c, response.INTERNAL_ERROR, "failed to update password")
		return
	}
	response.Success(c, true)
}
