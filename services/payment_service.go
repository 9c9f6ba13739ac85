package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/utils"
)

// InterfacePaymentService defines the payment recorder interface
type InterfacePaymentService interface {
	RecordPayment(payment *models.Payment) (*models.Payment, error)
	DeletePayment(id uint) error
	GetPayments(tenantID uint, from, to *time.Time) ([]models.Payment, error)
	GetPaymentByID(id uint) (*models.Payment, error)
}

// PaymentService appends immutable payment records and reconciles the
// owning tenant's running balance. The insert and the balance update are
// two sequential writes, not one transaction; the balance adjustment itself
// is a server-side relative update so concurrent recorders cannot lose each
// other's increments.
type PaymentService struct {
	DB            *gorm.DB
	Config        *config.Config
	Notifications InterfaceNotificationService
}

// NewPaymentService creates a new payment service
func NewPaymentService(db *gorm.DB, cfg *config.Config, notifications InterfaceNotificationService) InterfacePaymentService {
	return &PaymentService{DB: db, Config: cfg, Notifications: notifications}
}

// nextReceiptNumber builds RCP-<year>-<seq>, where seq is one greater than
// the numeric suffix of the most recently created payment's receipt —
// system-wide, not per tenant, and the counter does not reset when the year
// in the prefix changes.
func (s *PaymentService) nextReceiptNumber() (string, error) {
	var last models.Payment
	seq := 1
	err := s.DB.Order("id DESC").First(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if err == nil && last.ReceiptNumber != "" {
		parts := strings.Split(last.ReceiptNumber, "-")
		if n, convErr := strconv.Atoi(parts[len(parts)-1]); convErr == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("RCP-%d-%04d", time.Now().Year(), seq), nil
}

// RecordPayment validates, assigns a receipt number, inserts the record and
// then increments the tenant's amount_paid by exactly the recorded amount.
func (s *PaymentService) RecordPayment(payment *models.Payment) (*models.Payment, error) {
	if payment.Amount <= 0 {
		return nil, code.New(code.ErrPaymentAmountInvalid)
	}

	var tenant models.Tenant
	if err := s.DB.First(&tenant, payment.TenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.New(code.ErrTenantNotFound)
		}
		return nil, err
	}

	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}
	if payment.PaymentMethod == "" {
		payment.PaymentMethod = models.MethodCash
	}
	if !models.ValidPaymentMethod(payment.PaymentMethod) {
		return nil, code.New(code.ErrPaymentMethodInvalid)
	}

	receipt, err := s.nextReceiptNumber()
	if err != nil {
		return nil, err
	}
	payment.ReceiptNumber = receipt

	if err := s.DB.Create(payment).Error; err != nil {
		return nil, err
	}

	// Second write. A crash between the insert above and this update leaves
	// the ledger behind by one payment; accepted, see DESIGN.md.
	if err := s.DB.Model(&models.Tenant{}).Where("id = ?", payment.TenantID).
		Update("amount_paid", gorm.Expr("amount_paid + ?", payment.Amount)).Error; err != nil {
		return nil, err
	}

	if s.Notifications != nil {
		s.Notifications.Notify(models.NotifyPayment,
			"Payment received",
			fmt.Sprintf("₦%s received from %s (%s)", utils.FormatAmount(payment.Amount), tenant.TenantName, receipt),
			nil, &tenant.ID)
	}

	return payment, nil
}

// DeletePayment reverses the payment's effect on the tenant balance, floored
// at zero, then removes the record. This is a compensating action, not a
// rollback; the same two-write caveat as RecordPayment applies.
func (s *PaymentService) DeletePayment(id uint) error {
	payment, err := s.GetPaymentByID(id)
	if err != nil {
		return err
	}

	if err := s.DB.Model(&models.Tenant{}).Where("id = ?", payment.TenantID).
		Update("amount_paid",
			gorm.Expr("CASE WHEN amount_paid >= ? THEN amount_paid - ? ELSE 0 END",
				payment.Amount, payment.Amount)).Error; err != nil {
		return err
	}

	return s.DB.Delete(&models.Payment{}, id).Error
}

// GetPaymentByID fetches one payment
func (s *PaymentService) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.New(code.ErrPaymentNotFound)
		}
		return nil, err
	}
	return &payment, nil
}

// GetPayments lists payments, optionally filtered by tenant and an inclusive
// date range, newest first, with the owning tenant joined for display.
func (s *PaymentService) GetPayments(tenantID uint, from, to *time.Time) ([]models.Payment, error) {
	query := s.DB.Model(&models.Payment{}).Preload("Tenant")

	if tenantID != 0 {
		query = query.Where("tenant_id = ?", tenantID)
	}
	if from != nil {
		query = query.Where("payment_date >= ?", *from)
	}
	if to != nil {
		// end of day so the range stays inclusive
		query = query.Where("payment_date < ?", to.AddDate(0, 0, 1))
	}

	var payments []models.Payment
	if err := query.Order("payment_date DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
