package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/internal/error/response"
	"github.com/Agboweroh/estateiq-backend/services/container"
)

// StatsController handles dashboard reporting endpoints
type StatsController struct {
	BaseControllerImpl
}

// NewStatsController creates a new stats controller
func (f *ControllerFactory) NewStatsController(ctx *gin.Context) *StatsController {
	return &StatsController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleStatsFunc returns a Gin handler dispatching to the named method
func HandleStatsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		factory := NewControllerFactory(container)
		controller := factory.NewStatsController(ctx)

		switch method {
		case "dashboard":
			controller.Dashboard()
		case "alerts":
			controller.Alerts()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"code": code.ErrBind, "error": "unknown method"})
		}
	}
}

// Dashboard returns the aggregate dashboard figures, computed fresh on
// every call
// @Summary      Dashboard Stats
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /stats [get]
// @Security     BearerAuth
func (c *StatsController) Dashboard() {
	stats, err := c.Container.GetStatsService().GetDashboardStats()
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, stats)
}

// Alerts returns expiring leases, owing tenants, and active quit notices
// @Summary      Alerts Report
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /alerts [get]
// @Security     BearerAuth
func (c *StatsController) Alerts() {
	report, err := c.Container.GetStatsService().GetAlerts()
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, report)
}
