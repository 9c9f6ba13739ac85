package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/utils"
)

// DefaultReminderTemplate is used when the caller supplies no template
const DefaultReminderTemplate = "Dear {name}, this is a reminder that you have an outstanding rent balance of ₦{amount} for {property}. Kindly make payment at your earliest convenience. Thank you."

// InterfaceMessageService defines the messaging logger interface
type InterfaceMessageService interface {
	Send(tenantID uint, body string, sentBy uint) (*SendResult, error)
	GetMessages(tenantID uint) ([]models.MessageLog, error)
	BulkReminder(template string, sentBy uint) (*BulkResult, error)
}

// SendResult is one logged message plus its deep link
type SendResult struct {
	Message  models.MessageLog `json:"message"`
	DeepLink string            `json:"deep_link"`
}

// BulkResult reports one bulk-reminder run
type BulkResult struct {
	BatchID string       `json:"batch_id"`
	Count   int          `json:"count"`
	Results []SendResult `json:"results"`
}

// MessageService builds WhatsApp click-to-chat deep links and logs intent.
// There is no delivery: "sent" is recorded optimistically when the log row
// is written.
type MessageService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMessageService creates a new message service
func NewMessageService(db *gorm.DB, cfg *config.Config) InterfaceMessageService {
	return &MessageService{DB: db, Config: cfg}
}

// Send logs one message to a tenant and returns the deep link
func (s *MessageService) Send(tenantID uint, body string, sentBy uint) (*SendResult, error) {
	if body == "" {
		return nil, code.NewWithMessage(code.ErrValidation, "message body is required")
	}

	var tenant models.Tenant
	if err := s.DB.First(&tenant, tenantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, code.New(code.ErrTenantNotFound)
		}
		return nil, err
	}
	phone := tenant.WhatsApp
	if phone == "" {
		phone = tenant.Phone
	}
	if phone == "" {
		return nil, code.New(code.ErrTenantPhoneMissing)
	}

	return s.logMessage(&tenant, phone, body, uuid.NewString(), sentBy)
}

// GetMessages lists logged messages, newest first, optionally per tenant
func (s *MessageService) GetMessages(tenantID uint) ([]models.MessageLog, error) {
	query := s.DB.Model(&models.MessageLog{}).Preload("Tenant")
	if tenantID != 0 {
		query = query.Where("tenant_id = ?", tenantID)
	}

	var messages []models.MessageLog
	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// BulkReminder sends a reminder to every tenant with a phone number and an
// outstanding balance, substituting {name}, {amount} and {property} into the
// template. One log record is written per tenant under a shared batch id.
func (s *MessageService) BulkReminder(template string, sentBy uint) (*BulkResult, error) {
	if template == "" {
		template = DefaultReminderTemplate
	}

	var tenants []models.Tenant
	if err := s.DB.
		Where("phone <> '' AND amount_paid < rent_per_annum").
		Order("sequence_number asc").
		Find(&tenants).Error; err != nil {
		return nil, err
	}

	batchID := uuid.NewString()
	result := &BulkResult{BatchID: batchID, Results: []SendResult{}}

	for i := range tenants {
		tenant := &tenants[i]
		body := renderTemplate(template, tenant)

		sent, err := s.logMessage(tenant, tenant.Phone, body, batchID, sentBy)
		if err != nil {
			// a single bad row must not abort the batch
			continue
		}
		result.Results = append(result.Results, *sent)
		result.Count++
	}

	return result, nil
}

// renderTemplate substitutes the reminder placeholders for one tenant
func renderTemplate(template string, tenant *models.Tenant) string {
	replacer := strings.NewReplacer(
		"{name}", tenant.TenantName,
		"{amount}", utils.FormatAmount(tenant.Outstanding()),
		"{property}", tenant.PropertyAddress,
	)
	return replacer.Replace(template)
}

func (s *MessageService) logMessage(tenant *models.Tenant, phone, body, batchID string, sentBy uint) (*SendResult, error) {
	msisdn := utils.NormalizeMSISDN(phone, s.Config.CountryCode)

	record := models.MessageLog{
		TenantID: tenant.ID,
		BatchID:  batchID,
		Channel:  models.ChannelWhatsApp,
		Phone:    msisdn,
		Body:     body,
		Status:   models.MessageSent,
		SentBy:   sentBy,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, err
	}

	return &SendResult{
		Message:  record,
		DeepLink: utils.WhatsAppLink(s.Config.WhatsAppBaseURL, msisdn, body),
	}, nil
}
