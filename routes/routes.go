package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Agboweroh/estateiq-backend/controllers"
	"github.com/Agboweroh/estateiq-backend/middleware"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/services/container"
)

// Login attempts allowed per client IP within the rate window
const (
	loginAttemptLimit  = 10
	loginAttemptWindow = time.Minute
)

// SetupRouter builds the Gin engine. The service container is constructed by
// the caller and injected; routes never reach for global state.
func SetupRouter(svc *container.ServiceContainer) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, svc)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(r *gin.Engine, svc *container.ServiceContainer) {
	api := r.Group("/api")
	registerPublicRoutes(api, svc)
	registerAuthenticatedRoutes(api, svc)
}

// registerPublicRoutes registers routes reachable without a token
func registerPublicRoutes(api *gin.RouterGroup, svc *container.ServiceContainer) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	api.GET("/health", controllers.HandleHealthFunc(svc, "health"))

	// Login is rate limited per client IP
	api.POST("/auth/login",
		middleware.LoginRateLimiter(svc.GetRedisService(), loginAttemptLimit, loginAttemptWindow),
		controllers.HandleAuthFunc(svc, "login"))

	// Tenant self-service portal, read-only
	api.GET("/portal/:tenantId", controllers.HandleTenantFunc(svc, "portal"))
}

// registerAuthenticatedRoutes registers routes behind the bearer token
func registerAuthenticatedRoutes(api *gin.RouterGroup, svc *container.ServiceContainer) {
	authMW := middleware.NewAuthMiddleware(svc.GetJWTService())

	// Any authenticated role
	auth := api.Group("/")
	auth.Use(authMW.RequireRoles())

	// Admin or manager
	managed := api.Group("/")
	managed.Use(authMW.RequireRoles(models.RoleAdmin, models.RoleManager))

	// Admin only
	admin := api.Group("/")
	admin.Use(authMW.RequireRoles(models.RoleAdmin))

	// Self-service account routes
	auth.GET("/auth/me", controllers.HandleAuthFunc(svc, "me"))
	auth.PUT("/auth/me", controllers.HandleAuthFunc(svc, "updateMe"))
	auth.PUT("/auth/change-password", controllers.HandleAuthFunc(svc, "changePassword"))

	// Account administration
	admin.POST("/auth/register", controllers.HandleAuthFunc(svc, "register"))
	admin.GET("/users", controllers.HandleUserFunc(svc, "list"))
	admin.GET("/users/:id", controllers.HandleUserFunc(svc, "get"))
	admin.PUT("/users/:id", controllers.HandleUserFunc(svc, "update"))
	admin.DELETE("/users/:id", controllers.HandleUserFunc(svc, "delete"))

	// Tenant ledger
	auth.GET("/tenants", controllers.HandleTenantFunc(svc, "list"))
	auth.GET("/tenants/export", controllers.HandleTenantFunc(svc, "export"))
	auth.GET("/tenants/:id", controllers.HandleTenantFunc(svc, "get"))
	auth.POST("/tenants", controllers.HandleTenantFunc(svc, "create"))
	auth.PUT("/tenants/:id", controllers.HandleTenantFunc(svc, "update"))
	auth.PATCH("/tenants/:id/quit", controllers.HandleTenantFunc(svc, "toggleQuitNotice"))
	managed.PATCH("/tenants/:id/payment", controllers.HandleTenantFunc(svc, "setAmountPaid"))
	managed.POST("/tenants/import", controllers.HandleTenantFunc(svc, "import"))
	managed.DELETE("/tenants/:id", controllers.HandleTenantFunc(svc, "delete"))

	// Payment log
	auth.GET("/payments", controllers.HandlePaymentFunc(svc, "list"))
	auth.GET("/payments/:id", controllers.HandlePaymentFunc(svc, "get"))
	auth.POST("/payments", controllers.HandlePaymentFunc(svc, "record"))
	managed.DELETE("/payments/:id", controllers.HandlePaymentFunc(svc, "delete"))

	// Maintenance tickets
	auth.GET("/maintenance", controllers.HandleMaintenanceFunc(svc, "list"))
	auth.GET("/maintenance/:id", controllers.HandleMaintenanceFunc(svc, "get"))
	auth.POST("/maintenance", controllers.HandleMaintenanceFunc(svc, "create"))
	auth.PATCH("/maintenance/:id", controllers.HandleMaintenanceFunc(svc, "update"))
	managed.DELETE("/maintenance/:id", controllers.HandleMaintenanceFunc(svc, "delete"))

	// Notification feed
	auth.GET("/notifications", controllers.HandleNotificationFunc(svc, "list"))
	auth.PATCH("/notifications/read-all", controllers.HandleNotificationFunc(svc, "markAllRead"))
	auth.PATCH("/notifications/:id/read", controllers.HandleNotificationFunc(svc, "markRead"))

	// Messaging log
	auth.GET("/messages", controllers.HandleMessageFunc(svc, "list"))
	auth.POST("/messages/send", controllers.HandleMessageFunc(svc, "send"))
	managed.POST("/messages/bulk-reminder", controllers.HandleMessageFunc(svc, "bulkReminder"))

	// Property records
	auth.GET("/properties", controllers.HandlePropertyFunc(svc, "list"))
	auth.GET("/properties/:id", controllers.HandlePropertyFunc(svc, "get"))
	auth.POST("/properties", controllers.HandlePropertyFunc(svc, "create"))
	auth.PUT("/properties/:id", controllers.HandlePropertyFunc(svc, "update"))
	managed.DELETE("/properties/:id", controllers.HandlePropertyFunc(svc, "delete"))

	// Reporting
	auth.GET("/stats", controllers.HandleStatsFunc(svc, "dashboard"))
	auth.GET("/alerts", controllers.HandleStatsFunc(svc, "alerts"))
}
