package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agboweroh/estateiq-backend/models"
)

func TestGetDashboardStats(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	tenants := NewTenantService(db, cfg, nil)
	payments := NewPaymentService(db, cfg, nil)
	maintenance := NewMaintenanceService(db, cfg)
	stats := NewStatsService(db, cfg)

	expiring := time.Now().AddDate(0, 0, 7)
	seedTenant(t, tenants, &models.Tenant{TenantName: "Paid Up", AccommodationType: "2 Bedroom Flat", RentPerAnnum: 500000, AmountPaid: 500000})
	seedTenant(t, tenants, &models.Tenant{TenantName: "Half Way", AccommodationType: "Self Contain", RentPerAnnum: 400000, AmountPaid: 100000, LeaseEnd: &expiring})
	owing := seedTenant(t, tenants, &models.Tenant{TenantName: "Owing All", AccommodationType: "Self Contain", RentPerAnnum: 300000})

	_, err := tenants.ToggleQuitNotice(owing.ID, true)
	require.NoError(t, err)

	require.NoError(t, maintenance.CreateRequest(&models.Maintenance{Title: "Leaking roof"}))

	_, err = payments.RecordPayment(&models.Payment{TenantID: owing.ID, Amount: 50000})
	require.NoError(t, err)

	report, err := stats.GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalTenants)
	assert.Equal(t, float64(1200000), report.ExpectedRent)
	// 500000 + 100000 + the 50000 payment recorded against "Owing All"
	assert.Equal(t, float64(650000), report.CollectedRent)
	assert.Equal(t, float64(550000), report.OutstandingRent)

	assert.Equal(t, int64(1), report.StatusCounts[models.StatusPaid])
	assert.Equal(t, int64(2), report.StatusCounts[models.StatusPartial])
	assert.Equal(t, int64(0), report.StatusCounts[models.StatusUnpaid])

	assert.Equal(t, int64(1), report.QuitNotices)
	assert.Equal(t, int64(1), report.ExpiringLeases)
	assert.Equal(t, int64(2), report.ByAccommodation["Self Contain"])
	assert.Equal(t, int64(1), report.MaintenanceCounts[models.MaintenanceOpen])

	require.Len(t, report.MonthlyCollections, 12)
	current := report.MonthlyCollections[11]
	assert.Equal(t, time.Now().Format("2006-01"), current.Month)
	assert.Equal(t, float64(50000), current.Total)
}

func TestGetAlerts(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	tenants := NewTenantService(db, cfg, nil)
	stats := NewStatsService(db, cfg)

	in45 := time.Now().AddDate(0, 0, 45) // outside the 30-day dashboard window, inside the 60-day alert window
	seedTenant(t, tenants, &models.Tenant{TenantName: "Expiring", RentPerAnnum: 100, AmountPaid: 100, LeaseEnd: &in45})
	owing := seedTenant(t, tenants, &models.Tenant{TenantName: "Owing", RentPerAnnum: 100})

	_, err := tenants.ToggleQuitNotice(owing.ID, true)
	require.NoError(t, err)

	report, err := stats.GetAlerts()
	require.NoError(t, err)

	require.Len(t, report.ExpiringLeases, 1)
	assert.Equal(t, "Expiring", report.ExpiringLeases[0].TenantName)

	require.Len(t, report.OwingTenants, 1)
	assert.Equal(t, "Owing", report.OwingTenants[0].TenantName)

	require.Len(t, report.QuitNotices, 1)
	assert.Equal(t, "Owing", report.QuitNotices[0].TenantName)
}
