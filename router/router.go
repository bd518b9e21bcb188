package router

import (
	"resto-go-pos/api"
	"resto-go-pos/config"
	"resto-go-pos/controllers/admin"
	"resto-go-pos/middleware"
	"resto-go-pos/pkg/jwt"
	"resto-go-pos/redis"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth      *api.Auth
	User      *admin.UserController
	Staff     *admin.StaffController
	Inventory *admin.InventoryController
	Menu      *admin.MenuController
	Order     *admin.OrderController
	Financial *admin.FinancialController
	Upload    *admin.UploadController
	Activity  *admin.ActivityController
}

// Register mounts all routes on the engine.
func Register(r *gin.Engine, cfg *config.Config, gdb *gorm.DB, mgr *jwt.Manager, tokens *redis.TokenStore, ctl Controllers) {
	store := cookie.NewStore([]byte(cfg.JWT.SigningKey))
	r.Use(sessions.Sessions("pos_session", store))

	r.Static(cfg.Upload.PublicBase, cfg.Upload.Dir)

	base := r.Group("/api")
	{
		base.GET("/auth/captcha", ctl.Auth.Captcha)
		base.POST("/auth/login", ctl.Auth.Login)
	}

	auth := r.Group("/api", middleware.Jwt(mgr, tokens))
	auth.Use(middleware.ActivityLog(gdb))
	{
		auth.POST("/auth/logout", ctl.Auth.Logout)
		auth.POST("/auth/password", ctl.Auth.Password)

		auth.POST("/user/add", ctl.User.Add)
		auth.POST("/user/update", ctl.User.Update)
		auth.POST("/user/delete", ctl.User.Delete)
		auth.GET("/user/detail", ctl.User.Detail)
		auth.GET("/user/list", ctl.User.List)

		auth.POST("/staff/add", ctl.Staff.Add)
		auth.POST("/staff/update", ctl.Staff.Update)
		auth.POST("/staff/delete", ctl.Staff.Delete)
		auth.GET("/staff/detail", ctl.Staff.Detail)
		auth.GET("/staff/list", ctl.Staff.List)
		auth.POST("/staff/shift/schedule", ctl.Staff.ScheduleShift)
		auth.POST("/staff/shift/complete", ctl.Staff.CompleteShift)
		auth.POST("/staff/shift/cancel", ctl.Staff.CancelShift)
		auth.GET("/staff/shift/list", ctl.Staff.ShiftList)

		auth.POST("/inventory/add", ctl.Inventory.Add)
		auth.POST("/inventory/update", ctl.Inventory.Update)
		auth.POST("/inventory/delete", ctl.Inventory.Delete)
		auth.POST("/inventory/restock", ctl.Inventory.Restock)
		auth.GET("/inventory/list", ctl.Inventory.List)
		auth.GET("/inventory/lowstock", ctl.Inventory.LowStock)
		auth.POST("/inventory/purchase/create", ctl.Inventory.CreatePurchaseOrder)
		auth.GET("/inventory/purchase/list", ctl.Inventory.PurchaseOrderList)

		auth.POST("/menu/add", ctl.Menu.Add)
		auth.POST("/menu/update", ctl.Menu.Update)
		auth.POST("/menu/delete", ctl.Menu.Delete)
		auth.GET("/menu/detail", ctl.Menu.Detail)
		auth.GET("/menu/list", ctl.Menu.List)
		auth.POST("/menu/category/add", ctl.Menu.AddCategory)
		auth.POST("/menu/category/update", ctl.Menu.UpdateCategory)
		auth.POST("/menu/category/delete", ctl.Menu.DeleteCategory)
		auth.GET("/menu/category/list", ctl.Menu.CategoryList)

		auth.POST("/order/create", ctl.Order.Create)
		auth.POST("/order/status", ctl.Order.UpdateStatus)
		auth.GET("/order/detail", ctl.Order.Detail)
		auth.GET("/order/list", ctl.Order.List)

		auth.GET("/financial/expenses", ctl.Financial.Expenses)
		auth.GET("/financial/menu-analysis", ctl.Financial.MenuAnalysis)
		auth.POST("/financial/generate-report", ctl.Financial.GenerateReport)

		auth.POST("/upload/image", ctl.Upload.Image)

		auth.GET("/activity/list", ctl.Activity.List)
	}
}
