package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resto-go-pos/api"
	"resto-go-pos/config"
	"resto-go-pos/controllers/admin"
	"resto-go-pos/db"
	"resto-go-pos/middleware"
	"resto-go-pos/pkg/jwt"
	"resto-go-pos/pkg/monitoring"
	"resto-go-pos/redis"
	"resto-go-pos/router"
	"resto-go-pos/services/admin_service"
	"resto-go-pos/services/financial_service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	rdb, err := redis.New(cfg.Redis)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	tokens := redis.NewTokenStore(rdb)

	jwtMgr := jwt.NewManager(cfg.JWT.SigningKey, cfg.JWT.Issuer, cfg.JWT.Expiry)

	middleware.RegisterValidators()

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(
		middleware.Recovery(),
		middleware.Cors(),
		middleware.RequestLogger(cfg.Log.RequestLogDir),
		middleware.RateLimit(cfg.Server.RateLimit),
		monitoring.PrometheusMiddleware(),
	)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	financial := financial_service.NewFinancialService(gdb)
	ctl := router.Controllers{
		Auth:      api.NewAuth(gdb, jwtMgr, tokens),
		User:      admin.NewUserController(admin_service.NewUserService(gdb)),
		Staff:     admin.NewStaffController(admin_service.NewStaffService(gdb), admin_service.NewShiftService(gdb)),
		Inventory: admin.NewInventoryController(admin_service.NewInventoryService(gdb), admin_service.NewPurchaseService(gdb)),
		Menu:      admin.NewMenuController(admin_service.NewMenuService(gdb), admin_service.NewCategoryService(gdb)),
		Order:     admin.NewOrderController(admin_service.NewOrderService(gdb)),
		Financial: admin.NewFinancialController(financial),
		Upload:    admin.NewUploadController(cfg.Upload),
		Activity:  admin.NewActivityController(admin_service.NewActivityService(gdb)),
	}
	router.Register(r, cfg, gdb, jwtMgr, tokens, ctl)

	// Sample the db pool for the metrics endpoint.
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			if sqlDB, err := gdb.DB(); err == nil {
				monitoring.UpdateDBConnections(sqlDB.Stats().InUse)
			}
		}
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	if err := rdb.Close(); err != nil {
		log.Printf("failed to close redis: %v", err)
	}
	log.Println("server exited")
}
