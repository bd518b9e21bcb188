package middleware

import (
	"log"
	"time"

	"resto-go-pos/model/pos_model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActivityLog records every mutating authenticated request. Read-only
// traffic is skipped to keep the log useful.
func ActivityLog(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case "POST", "PUT", "PATCH", "DELETE":
		default:
			return
		}

		uid := c.GetInt("uid")
		if uid == 0 {
			return
		}

		entry := pos_model.ActivityLog{
			UserId:     uid,
			Action:     c.Request.Method + " " + c.Request.URL.Path,
			Detail:     c.Request.URL.RawQuery,
			ClientIP:   c.ClientIP(),
			StatusCode: c.Writer.Status(),
			CreateTime: time.Now(),
		}

		if err := gdb.Create(&entry).Error; err != nil {
			log.Printf("failed to write activity log: %v", err)
		}
	}
}
