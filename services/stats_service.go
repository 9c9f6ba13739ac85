package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/models"
)

// DashboardStats is the on-demand rollup for the dashboard. It is always
// derived from the current ledger; nothing here is ever cached or stored.
type DashboardStats struct {
	TotalTenants       int64              `json:"total_tenants"`
	TotalUsers         int64              `json:"total_users"`
	ExpectedRent       float64            `json:"expected_rent"`
	CollectedRent      float64            `json:"collected_rent"`
	OutstandingRent    float64            `json:"outstanding_rent"`
	StatusCounts       map[string]int64   `json:"status_counts"`
	QuitNotices        int64              `json:"quit_notices"`
	ExpiringLeases     int64              `json:"expiring_leases"`
	ByAccommodation    map[string]int64   `json:"by_accommodation"`
	MaintenanceCounts  map[string]int64   `json:"maintenance_counts"`
	MonthlyCollections []MonthlyCollected `json:"monthly_collections"`
}

// MonthlyCollected is one month's payment sum in the trailing-12-months series
type MonthlyCollected struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

// AlertsReport lists the conditions a manager should act on
type AlertsReport struct {
	ExpiringLeases []models.Tenant `json:"expiring_leases"` // lease_end within 60 days
	OwingTenants   []models.Tenant `json:"owing_tenants"`
	QuitNotices    []models.Tenant `json:"quit_notices"`
}

// InterfaceStatsService defines the reporting interface
type InterfaceStatsService interface {
	GetDashboardStats() (*DashboardStats, error)
	GetAlerts() (*AlertsReport, error)
}

// StatsService computes read-only statistics over the ledger and payments
type StatsService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStatsService creates a new stats service
func NewStatsService(db *gorm.DB, cfg *config.Config) InterfaceStatsService {
	return &StatsService{DB: db, Config: cfg}
}

// GetDashboardStats derives every dashboard figure from the current ledger
// state. Status buckets use the same predicates as the tenant model.
func (s *StatsService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		StatusCounts: map[string]int64{
			models.StatusPaid:    0,
			models.StatusPartial: 0,
			models.StatusUnpaid:  0,
		},
		ByAccommodation:   map[string]int64{},
		MaintenanceCounts: map[string]int64{},
	}

	var tenants []models.Tenant
	if err := s.DB.Find(&tenants).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	stats.TotalTenants = int64(len(tenants))
	for i := range tenants {
		t := &tenants[i]
		stats.ExpectedRent += t.RentPerAnnum
		stats.CollectedRent += t.AmountPaid
		stats.OutstandingRent += t.Outstanding()
		stats.StatusCounts[t.PaymentStatus()]++
		if t.QuitNotice {
			stats.QuitNotices++
		}
		if t.LeaseExpiringWithin(models.ExpiryWindowDashboard, now) {
			stats.ExpiringLeases++
		}
		if t.AccommodationType != "" {
			stats.ByAccommodation[t.AccommodationType]++
		}
	}

	if err := s.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}

	maintenanceCounts, err := s.maintenanceByStatus()
	if err != nil {
		return nil, err
	}
	stats.MaintenanceCounts = maintenanceCounts

	monthly, err := s.monthlyCollections(now)
	if err != nil {
		return nil, err
	}
	stats.MonthlyCollections = monthly

	return stats, nil
}

func (s *StatsService) maintenanceByStatus() (map[string]int64, error) {
	counts := map[string]int64{
		models.MaintenanceOpen:       0,
		models.MaintenanceInProgress: 0,
		models.MaintenanceResolved:   0,
		models.MaintenanceClosed:     0,
	}

	rows := []struct {
		Status string
		Total  int64
	}{}
	if err := s.DB.Model(&models.Maintenance{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// monthlyCollections buckets payment sums per calendar month for the
// trailing 12 months, oldest first. Bucketing happens in Go so the query
// stays portable across drivers.
func (s *StatsService) monthlyCollections(now time.Time) ([]MonthlyCollected, error) {
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)

	var payments []models.Payment
	if err := s.DB.Where("payment_date >= ?", windowStart).Find(&payments).Error; err != nil {
		return nil, err
	}

	totals := map[string]float64{}
	for i := range payments {
		totals[payments[i].PaymentDate.Format("2006-01")] += payments[i].Amount
	}

	series := make([]MonthlyCollected, 0, 12)
	for i := 0; i < 12; i++ {
		month := windowStart.AddDate(0, i, 0).Format("2006-01")
		series = append(series, MonthlyCollected{Month: month, Total: totals[month]})
	}
	return series, nil
}

// GetAlerts lists leases expiring within 60 days, tenants still owing, and
// active quit notices.
func (s *StatsService) GetAlerts() (*AlertsReport, error) {
	report := &AlertsReport{
		ExpiringLeases: []models.Tenant{},
		OwingTenants:   []models.Tenant{},
		QuitNotices:    []models.Tenant{},
	}

	var tenants []models.Tenant
	if err := s.DB.Order("sequence_number asc").Find(&tenants).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range tenants {
		t := tenants[i]
		if t.LeaseExpiringWithin(models.ExpiryWindowAlert, now) {
			report.ExpiringLeases = append(report.ExpiringLeases, t)
		}
		if t.AmountPaid < t.RentPerAnnum {
			report.OwingTenants = append(report.OwingTenants, t)
		}
		if t.QuitNotice {
			report.QuitNotices = append(report.QuitNotices, t)
		}
	}

	return report, nil
}
