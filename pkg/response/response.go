package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Unified application error codes.
const (
	SUCCESS           = 200
	ERROR             = 500
	INVALID_PARAMS    = 20001
	AUTH_ERROR        = 10002
	NOT_FOUND         = 20003
	FORBIDDEN         = 20004
	TOO_MANY_REQUESTS = 20005
	INTERNAL_ERROR    = 20006
)

var codeMsg = map[int]string{
	SUCCESS:           "OK",
	ERROR:             "internal server error",
	INVALID_PARAMS:    "invalid request parameters",
	AUTH_ERROR:        "authentication failed",
	NOT_FOUND:         "resource not found",
	FORBIDDEN:         "access forbidden",
	TOO_MANY_REQUESTS: "too many requests",
	INTERNAL_ERROR:    "internal service error",
}

// Response is the unified JSON envelope.
type Response struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	OriginUrl string      `json:"originUrl"`
}

// GetMsg returns the message registered for a code.
func GetMsg(code int) string {
	msg, exist := codeMsg[code]
	if exist {
		return msg
	}
	return codeMsg[ERROR]
}

// Success writes a success envelope.
func Success(c *gin.Context, data interface{}) {
	resp := Response{
		Code:      SUCCESS,
		Message:   GetMsg(SUCCESS),
		Data:      data,
		OriginUrl: c.Request.URL.Path,
	}
	c.Set("response", resp)
	c.JSON(http.StatusOK, resp)
}

// Error writes an error envelope. Application errors ride on HTTP 200.
func Error(c *gin.Context, code int, message ...string) {
	msg := GetMsg(code)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}

	resp := Response{
		Code:      code,
		Message:   msg,
		Error:     "error",
		OriginUrl: c.Request.URL.Path,
	}
	c.Set("response", resp)
	c.JSON(http.StatusOK, resp)
}

// ErrorWithData writes an error envelope carrying a payload.
func ErrorWithData(c *gin.Context, code int, data interface{}, message ...string) {
	msg := GetMsg(code)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}

	resp := Response{
		Code:      code,
		Message:   msg,
		Data:      data,
		Error:     "error",
		OriginUrl: c.Request.URL.Path,
	}
	c.Set("response", resp)
	c.JSON(http.StatusOK, resp)
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, code int, message ...string) {
	Error(c, code, message...)
	c.Abort()
}
