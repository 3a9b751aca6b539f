package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Mishana2007/podarok/config"
	"github.com/Mishana2007/podarok/controller"
	"github.com/Mishana2007/podarok/dao"
	"github.com/Mishana2007/podarok/logic"
	"github.com/Mishana2007/podarok/middleware"
	"github.com/Mishana2007/podarok/models"
	"github.com/Mishana2007/podarok/pkg"
	"github.com/Mishana2007/podarok/pkg/logging"
)

func main() {
	defer logging.Sync()

	// Initialize config
	configFile := "config.yaml"
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		logging.Fatal("Failed to load config", zap.String("file", configFile), zap.Error(err))
	}

	// Initialize database
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{TranslateError: true})
	if err != nil {
		logging.Fatal("Failed to open database", zap.Error(err))
	}
	if err := db.AutoMigrate(&models.User{}, &models.Gift{}); err != nil {
		logging.Fatal("Failed to migrate database", zap.Error(err))
	}
	logging.Info("Connected to SQLite database", zap.String("path", cfg.Database.Path))

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	giftDAO := dao.NewGiftDAO(db)

	// Initialize Logics
	userLogic := logic.NewUserLogic(userDAO)
	giftLogic := logic.NewGiftLogic(userDAO, giftDAO, cfg.Gifts)

	// Initialize Controllers
	giftCtrl := controller.NewGiftController(giftLogic)

	// Initialize Telegram bot and start polling in a goroutine
	bot, err := pkg.NewBotClient(cfg.Telegram.BotToken, cfg.Telegram.WebAppURL, userLogic)
	if err != nil {
		logging.Fatal("Failed to initialize Telegram bot", zap.Error(err))
	}
	go bot.Start()

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery(), cors.Default(), middleware.RequestID)
	r.GET("/api/health", giftCtrl.Health)
	r.POST("/api/gift", giftCtrl.Claim)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		logging.Info("Server is running", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("Failed to run server", zap.Error(err))
		}
	}()

	// Shut down on interrupt: stop the bot, drain the server, close the DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	bot.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Server shutdown failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			logging.Error("Error closing database", zap.Error(err))
		} else {
			logging.Info("Database connection closed")
		}
	}
}
