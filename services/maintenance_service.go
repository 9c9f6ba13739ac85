package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/models"
)

// InterfaceMaintenanceService defines the maintenance tracker interface
type InterfaceMaintenanceService interface {
	GetRequests(status, priority string) ([]models.Maintenance, error)
	GetRequestByID(id uint) (*models.Maintenance, error)
	CreateRequest(request *models.Maintenance) error
	UpdateRequest(id uint, updates map[string]interface{}) (*models.Maintenance, error)
	DeleteRequest(id uint) error
}

// MaintenanceService tracks repair tickets. Tickets are loosely linked to a
// tenant and are independent of the financial core.
type MaintenanceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(db *gorm.DB, cfg *config.Config) InterfaceMaintenanceService {
	return &MaintenanceService{DB: db, Config: cfg}
}

// GetRequests lists tickets, optionally filtered by status and priority
func (s *MaintenanceService) GetRequests(status, priority string) ([]models.Maintenance, error) {
	query := s.DB.Model(&models.Maintenance{})
	if status != "" {
		if !models.ValidMaintenanceStatus(status) {
			return nil, code.New(code.ErrMaintenanceFieldInvalid)
		}
		query = query.Where("status = ?", status)
	}
	if priority != "" {
		if !models.ValidPriority(priority) {
			return nil, code.New(code.ErrMaintenanceFieldInvalid)
		}
		query = query.Where("priority = ?", priority)
	}

	var requests []models.Maintenance
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetRequestByID fetches one ticket
func (s *MaintenanceService) GetRequestByID(id uint) (*models.Maintenance, error) {
	var request models.Maintenance
	if err := s.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.New(code.ErrMaintenanceNotFound)
		}
		return nil, err
	}
	return &request, nil
}

// CreateRequest opens a ticket. When a tenant is linked, the tenant name and
// property address are snapshotted onto the ticket as they are now.
func (s *MaintenanceService) CreateRequest(request *models.Maintenance) error {
	if request.Title == "" {
		return code.NewWithMessage(code.ErrValidation, "title is required")
	}
	if request.Priority == "" {
		request.Priority = models.PriorityMedium
	}
	if request.Status == "" {
		request.Status = models.MaintenanceOpen
	}
	if request.Category == "" {
		request.Category = models.CategoryGeneral
	}
	if !models.ValidPriority(request.Priority) || !models.ValidMaintenanceStatus(request.Status) || !models.ValidCategory(request.Category) {
		return code.New(code.ErrMaintenanceFieldInvalid)
	}

	if request.TenantID != nil {
		var tenant models.Tenant
		if err := s.DB.First(&tenant, *request.TenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code.New(code.ErrTenantNotFound)
			}
			return err
		}
		request.TenantName = tenant.TenantName
		request.PropertyAddress = tenant.PropertyAddress
	}

	return s.DB.Create(request).Error
}

// UpdateRequest applies a partial update. Moving to resolved or closed
// stamps resolved_at once.
func (s *MaintenanceService) UpdateRequest(id uint, updates map[string]interface{}) (*models.Maintenance, error) {
	request, err := s.GetRequestByID(id)
	if err != nil {
		return nil, err
	}

	if status, ok := updates["status"].(string); ok {
		if !models.ValidMaintenanceStatus(status) {
			return nil, code.New(code.ErrMaintenanceFieldInvalid)
		}
		if (status == models.MaintenanceResolved || status == models.MaintenanceClosed) && request.ResolvedAt == nil {
			updates["resolved_at"] = time.Now()
		}
	}
	if priority, ok := updates["priority"].(string); ok && !models.ValidPriority(priority) {
		return nil, code.New(code.ErrMaintenanceFieldInvalid)
	}
	if category, ok := updates["category"].(string); ok && !models.ValidCategory(category) {
		return nil, code.New(code.ErrMaintenanceFieldInvalid)
	}

	if err := s.DB.Model(request).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetRequestByID(id)
}

// DeleteRequest removes a ticket
func (s *MaintenanceService) DeleteRequest(id uint) error {
	request, err := s.GetRequestByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(request).Error
}
