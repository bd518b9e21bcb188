package admin

import (
	"resto-go-pos/pkg/response"

	"github.com/gin-gonic/gin"
)

type resp struct{}

// Resp is the shared response helper for the admin controllers.
var Resp resp

func (resp) Succ(c *gin.Context, data interface{}) {
	response.Success(c, data)
}

func (resp) Err(c *gin.Context, code int, message string) {
	response.Error(c, code, message)
}
