package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/models"
)

// InterfaceTenantService defines the tenant ledger interface
type InterfaceTenantService interface {
	GetTenants(search, status string) ([]models.Tenant, error)
	GetTenantByID(id uint) (*models.Tenant, error)
	CreateTenant(tenant *models.Tenant) error
	UpdateTenant(id uint, input *models.Tenant) (*models.Tenant, error)
	SetAmountPaid(id uint, amount float64) (*models.Tenant, error)
	ToggleQuitNotice(id uint, quit bool) (*models.Tenant, error)
	DeleteTenant(id uint) error
	GetPortalView(id uint) (*PortalView, error)
}

// PortalView is the reduced, public view of a tenant for the self-service
// portal lookup.
type PortalView struct {
	TenantName      string           `json:"tenant_name"`
	PropertyAddress string           `json:"property_address"`
	LeasePeriod     string           `json:"lease_period"`
	LeaseStart      *time.Time       `json:"lease_start"`
	LeaseEnd        *time.Time       `json:"lease_end"`
	RentPerAnnum    float64          `json:"rent_per_annum"`
	AmountPaid      float64          `json:"amount_paid"`
	Outstanding     float64          `json:"outstanding"`
	PaymentStatus   string           `json:"payment_status"`
	Payments        []models.Payment `json:"payments"`
}

// TenantService maintains lease facts and the running balance for each
// tenant. Payment status is always derived from the balance pair, never
// stored.
type TenantService struct {
	DB            *gorm.DB
	Config        *config.Config
	Notifications InterfaceNotificationService
}

// NewTenantService creates a new tenant service
func NewTenantService(db *gorm.DB, cfg *config.Config, notifications InterfaceNotificationService) InterfaceTenantService {
	return &TenantService{DB: db, Config: cfg, Notifications: notifications}
}

// GetTenants lists tenants with an optional free-text search and a status
// filter. Results keep creation-sequence order for spreadsheet-style display.
func (s *TenantService) GetTenants(search, status string) ([]models.Tenant, error) {
	query := s.DB.Model(&models.Tenant{})

	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"LOWER(tenant_name) LIKE LOWER(?) OR LOWER(accommodation_type) LIKE LOWER(?) OR LOWER(property_address) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			like, like, like, like)
	}

	switch status {
	case models.StatusPaid:
		query = query.Where("rent_per_annum > 0 AND amount_paid >= rent_per_annum")
	case models.StatusPartial:
		query = query.Where("amount_paid > 0 AND amount_paid < rent_per_annum")
	case models.StatusUnpaid:
		query = query.Where("amount_paid = 0")
	case "quit":
		query = query.Where("quit_notice = ?", true)
	case "expiring":
		from, to := expiryBounds(models.ExpiryWindowDashboard, time.Now())
		query = query.Where("lease_end >= ? AND lease_end < ?", from, to)
	case "":
		// no status filter
	default:
		return nil, code.NewWithMessage(code.ErrValidation, "status must be paid, partial, unpaid, quit or expiring")
	}

	var tenants []models.Tenant
	if err := query.Order("sequence_number asc").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// expiryBounds returns [start of today, start of the day after today+days)
// so the window is inclusive of both calendar dates.
func expiryBounds(days int, now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, days+1)
	return from, to
}

// GetTenantByID fetches one tenant with its payment and maintenance history
func (s *TenantService) GetTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.DB.
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payment_date DESC")
		}).
		Preload("Maintenance").
		First(&tenant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.New(code.ErrTenantNotFound)
		}
		return nil, err
	}
	return &tenant, nil
}

// CreateTenant inserts a new tenant. Only the name is required; the display
// sequence number is one greater than the current maximum.
func (s *TenantService) CreateTenant(tenant *models.Tenant) error {
	if tenant.TenantName == "" {
		return code.New(code.ErrTenantNameRequired)
	}
	if tenant.RentPerAnnum < 0 || tenant.AmountPaid < 0 {
		return code.NewWithMessage(code.ErrValidation, "amounts cannot be negative")
	}

	var maxSeq int
	if err := s.DB.Model(&models.Tenant{}).
		Select("COALESCE(MAX(sequence_number), 0)").
		Scan(&maxSeq).Error; err != nil {
		return err
	}
	tenant.SequenceNumber = maxSeq + 1

	return s.DB.Create(tenant).Error
}

// UpdateTenant replaces all mutable fields of a tenant, including the raw
// amount_paid. This is the trusted bulk-edit path; it deliberately bypasses
// the payment log, so balance and payment history can diverge afterwards.
func (s *TenantService) UpdateTenant(id uint, input *models.Tenant) (*models.Tenant, error) {
	tenant, err := s.GetTenantByID(id)
	if err != nil {
		return nil, err
	}
	if input.TenantName == "" {
		return nil, code.New(code.ErrTenantNameRequired)
	}
	if input.RentPerAnnum < 0 || input.AmountPaid < 0 {
		return nil, code.NewWithMessage(code.ErrValidation, "amounts cannot be negative")
	}

	updates := map[string]interface{}{
		"tenant_name":        input.TenantName,
		"accommodation_type": input.AccommodationType,
		"property_address":   input.PropertyAddress,
		"lease_period":       input.LeasePeriod,
		"lease_start":        input.LeaseStart,
		"lease_end":          input.LeaseEnd,
		"rent_per_annum":     input.RentPerAnnum,
		"amount_paid":        input.AmountPaid,
		"phone":              input.Phone,
		"email":              input.Email,
		"whatsapp":           input.WhatsApp,
		"notes":              input.Notes,
	}
	if err := s.DB.Model(tenant).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetTenantByID(id)
}

// SetAmountPaid sets the running balance to the supplied value. This is a
// raw correction, distinct from recording a payment, and leaves the payment
// log untouched.
func (s *TenantService) SetAmountPaid(id uint, amount float64) (*models.Tenant, error) {
	tenant, err := s.GetTenantByID(id)
	if err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, code.NewWithMessage(code.ErrValidation, "amount_paid cannot be negative")
	}

	if err := s.DB.Model(tenant).Update("amount_paid", amount).Error; err != nil {
		return nil, err
	}
	return s.GetTenantByID(id)
}

// ToggleQuitNotice sets the quit flag, stamping the date on the transition
// to true and clearing it on the transition to false.
func (s *TenantService) ToggleQuitNotice(id uint, quit bool) (*models.Tenant, error) {
	tenant, err := s.GetTenantByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"quit_notice": quit}
	if quit {
		updates["quit_notice_date"] = time.Now()
	} else {
		updates["quit_notice_date"] = nil
	}
	if err := s.DB.Model(tenant).Updates(updates).Error; err != nil {
		return nil, err
	}

	if quit && s.Notifications != nil {
		s.Notifications.Notify(models.NotifyLease,
			"Quit notice received",
			fmt.Sprintf("%s has given notice to quit %s", tenant.TenantName, tenant.PropertyAddress),
			nil, &tenant.ID)
	}

	return s.GetTenantByID(id)
}

// DeleteTenant removes a tenant. Its payments are deleted with it; its
// maintenance tickets are only unlinked.
func (s *TenantService) DeleteTenant(id uint) error {
	tenant, err := s.GetTenantByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Maintenance{}).Where("tenant_id = ?", id).
			Update("tenant_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(tenant).Error
	})
}

// GetPortalView returns the reduced public view used by the tenant portal
func (s *TenantService) GetPortalView(id uint) (*PortalView, error) {
	tenant, err := s.GetTenantByID(id)
	if err != nil {
		return nil, err
	}

	payments := tenant.Payments
	if payments == nil {
		payments = []models.Payment{}
	}

	return &PortalView{
		TenantName:      tenant.TenantName,
		PropertyAddress: tenant.PropertyAddress,
		LeasePeriod:     tenant.LeasePeriod,
		LeaseStart:      tenant.LeaseStart,
		LeaseEnd:        tenant.LeaseEnd,
		RentPerAnnum:    tenant.RentPerAnnum,
		AmountPaid:      tenant.AmountPaid,
		Outstanding:     tenant.Outstanding(),
		PaymentStatus:   tenant.PaymentStatus(),
		Payments:        payments,
	}, nil
}
