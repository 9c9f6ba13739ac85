// @title           EstateIQ Backend API
// @version         1.0
// @description     Property management backend: tenant ledger, rent payments, maintenance tracking and WhatsApp messaging

// @contact.name   API Support
// @contact.email  support@estateiq.ng

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/internal/database"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/routes"
	"github.com/Agboweroh/estateiq-backend/services"
	"github.com/Agboweroh/estateiq-backend/services/container"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to initialise logger: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
	} else {
		config.Info("loaded .env file")
	}

	cfg := config.LoadConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		config.Error("failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := models.AutoMigrate(pool.GetDB()); err != nil {
		config.Error("database migration failed: %v", err)
		os.Exit(1)
	}
	config.Info("database migration completed")

	ensureAdminExists(pool.GetDB(), cfg)

	redisService := connectRedis(cfg)

	svc := container.NewServiceContainer(pool, cfg, redisService)
	r := routes.SetupRouter(svc)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		config.Info("server listening on http://localhost:%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			config.Error("server error: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		config.Error("forced shutdown: %v", err)
	}
}

// connectRedis wires Redis when it is reachable. The service degrades to nil
// so login rate limiting becomes a no-op rather than a hard dependency.
func connectRedis(cfg *config.Config) services.InterfaceRedisService {
	redisService := services.NewRedisService(cfg)
	if err := redisService.Ping(); err != nil {
		config.Warning("redis unreachable at %s, rate limiting disabled: %v", cfg.GetRedisAddr(), err)
		return nil
	}
	config.Info("redis connected at %s", cfg.GetRedisAddr())
	return redisService
}

// ensureAdminExists seeds the bootstrap admin account when no users exist
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	admin := models.User{
		Name:     cfg.DefaultAdminName,
		Email:    cfg.DefaultAdminEmail,
		Password: cfg.DefaultAdminPassword,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		config.Error("failed to create bootstrap admin: %v", err)
		return
	}
	config.Info("created bootstrap admin account (%s)", admin.Email)
}
