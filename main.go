package main

import (
	"fmt"
	"os"

	"github.com/caizhenliu/order/configs"
	"github.com/caizhenliu/order/middlewares"
	"github.com/caizhenliu/order/routes"
	"github.com/caizhenliu/order/session"
	"github.com/caizhenliu/order/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.Seed(sugar); err != nil {
		sugar.Fatalw("seed failed", "error", err)
	}

	// session store
	var sessions session.Store
	switch cfg.SessionBackend {
	case "redis":
		store, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			sugar.Fatalw("redis session store failed", "error", err)
		}
		sessions = store
	default:
		sessions = session.NewMemoryStore()
	}

	// image uploads
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		sugar.Fatalw("create upload dir failed", "error", err)
	}
	images := storage.NewImageStore(cfg.UploadDir, "/static/images")

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static/images", cfg.UploadDir)

	routes.RegisterRoutes(r, db, sessions, images)

	addr := fmt.Sprintf(":%s", cfg.Port)
	sugar.Infow("server running",
		"addr", addr,
		"sessionBackend", cfg.SessionBackend,
		"defaultAccounts", "restaurant/restaurant, customer/customer",
	)
	if err := r.Run(addr); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
