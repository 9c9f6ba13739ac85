package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/internal/database"
	"github.com/Agboweroh/estateiq-backend/services"
)

// ServiceContainer wires every service to the shared connection pool and
// configuration. It is built once at startup and handed to the controller
// factory; nothing resolves services through global state.
type ServiceContainer struct {
	pool   *database.ConnectionPool
	config *config.Config

	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	userService         services.InterfaceUserService
	tenantService       services.InterfaceTenantService
	tenantImportService services.InterfaceTenantImportService
	exportService       services.InterfaceExportService
	paymentService      services.InterfacePaymentService
	maintenanceService  services.InterfaceMaintenanceService
	notificationService services.InterfaceNotificationService
	messageService      services.InterfaceMessageService
	statsService        services.InterfaceStatsService
	propertyService     services.InterfacePropertyService

	mu sync.RWMutex
}

// NewServiceContainer creates the container and initialises every service.
// redisService may be nil; the rate limiter then degrades to allow-all.
func NewServiceContainer(pool *database.ConnectionPool, cfg *config.Config, redisService services.InterfaceRedisService) *ServiceContainer {
	if pool == nil {
		panic("connection pool is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	c := &ServiceContainer{
		pool:         pool,
		config:       cfg,
		redisService: redisService,
	}
	c.initializeServices()
	return c
}

func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	db := c.pool.GetDB()

	c.jwtService = services.NewJWTService(c.config)
	c.notificationService = services.NewNotificationService(db, c.config)

	c.userService = services.NewUserService(db, c.config)
	c.tenantService = services.NewTenantService(db, c.config, c.notificationService)
	c.tenantImportService = services.NewTenantImportService(db, c.config, c.tenantService)
	c.exportService = services.NewExportService(db, c.config)
	c.paymentService = services.NewPaymentService(db, c.config, c.notificationService)
	c.maintenanceService = services.NewMaintenanceService(db, c.config)
	c.messageService = services.NewMessageService(db, c.config)
	c.statsService = services.NewStatsService(db, c.config)
	c.propertyService = services.NewPropertyService(db, c.config)
}

// GetDB returns the shared GORM handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pool.GetDB()
}

// GetPool returns the connection pool
func (c *ServiceContainer) GetPool() *database.ConnectionPool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pool
}

// GetConfig returns the application configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// GetJWTService returns the JWT service
func (c *ServiceContainer) GetJWTService() services.InterfaceJWTService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jwtService
}

// GetRedisService returns the Redis service, possibly nil
func (c *ServiceContainer) GetRedisService() services.InterfaceRedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}

// GetUserService returns the user service
func (c *ServiceContainer) GetUserService() services.InterfaceUserService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userService
}

// GetTenantService returns the tenant ledger service
func (c *ServiceContainer) GetTenantService() services.InterfaceTenantService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tenantService
}

// GetTenantImportService returns the CSV import service
func (c *ServiceContainer) GetTenantImportService() services.InterfaceTenantImportService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tenantImportService
}

// GetExportService returns the XLSX export service
func (c *ServiceContainer) GetExportService() services.InterfaceExportService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.exportService
}

// GetPaymentService returns the payment recorder
func (c *ServiceContainer) GetPaymentService() services.InterfacePaymentService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paymentService
}

// GetMaintenanceService returns the maintenance tracker
func (c *ServiceContainer) GetMaintenanceService() services.InterfaceMaintenanceService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maintenanceService
}

// GetNotificationService returns the notification logger
func (c *ServiceContainer) GetNotificationService() services.InterfaceNotificationService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notificationService
}

// GetMessageService returns the messaging logger
func (c *ServiceContainer) GetMessageService() services.InterfaceMessageService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.messageService
}

// GetStatsService returns the reporting service
func (c *ServiceContainer) GetStatsService() services.InterfaceStatsService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statsService
}

// GetPropertyService returns the property records service
func (c *ServiceContainer) GetPropertyService() services.InterfacePropertyService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.propertyService
}
