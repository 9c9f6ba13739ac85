package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/models"
)

// newTestDB opens an in-memory SQLite database with the full schema applied
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

// newTestConfig returns the default configuration for service tests
func newTestConfig() *config.Config {
	return config.LoadConfig()
}

// seedTenant inserts a tenant through the service so sequence numbers behave
// as in production
func seedTenant(t *testing.T, svc InterfaceTenantService, tenant *models.Tenant) *models.Tenant {
	t.Helper()
	require.NoError(t, svc.CreateTenant(tenant))
	return tenant
}
