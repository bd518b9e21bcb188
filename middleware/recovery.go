package middleware

import (
	"fmt"
	"log"
	"runtime/debug"

	"resto-go-pos/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into the unified error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err := fmt.Sprintf("panic recovered: %v", recovered)
		stack := string(debug.Stack())

		log.Printf("[PANIC RECOVERY] %s\n%s", err, stack)

		if gin.Mode() == gin.DebugMode {
			response.ErrorWithData(c, response.INTERNAL_ERROR, gin.H{
				"panic": recovered,
				"stack": stack,
			}, "internal server error")
		} else {
			response.Error(c, response.INTERNAL_ERROR, "internal server error")
		}
		c.Abort()
	})
}
