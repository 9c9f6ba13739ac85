package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/services/container"
)

// HealthController reports process and dependency health
type HealthController struct {
	BaseControllerImpl
}

// NewHealthController creates a new health controller
func (f *ControllerFactory) NewHealthController(ctx *gin.Context) *HealthController {
	return &HealthController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleHealthFunc returns a Gin handler dispatching to the named method
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		factory := NewControllerFactory(container)
		controller := factory.NewHealthController(ctx)

		switch method {
		case "health":
			controller.Health()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"code": code.ErrBind, "error": "unknown method"})
		}
	}
}

// Health checks the database pool and Redis and reports per-dependency status
// @Summary      Health Check
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func (c *HealthController) Health() {
	status := http.StatusOK
	dbStatus := "up"
	if err := c.Container.GetPool().HealthCheck(); err != nil {
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}

	redisStatus := "disabled"
	if redis := c.Container.GetRedisService(); redis != nil {
		redisStatus = "up"
		if err := redis.Ping(); err != nil {
			redisStatus = "down"
		}
	}

	poolStats, err := c.Container.GetPool().Stats()
	if err != nil {
		poolStats = map[string]interface{}{}
	}

	c.Context.JSON(status, gin.H{
		"status":    dbStatus,
		"database":  dbStatus,
		"redis":     redisStatus,
		"pool":      poolStats,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
