package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/models"
)

// InterfacePropertyService defines the property records interface
type InterfacePropertyService interface {
	GetProperties() ([]models.Property, error)
	GetPropertyByID(id uint) (*models.Property, error)
	CreateProperty(property *models.Property) error
	UpdateProperty(id uint, updates map[string]interface{}) (*models.Property, error)
	DeleteProperty(id uint) error
}

// PropertyService manages the managers' building records
type PropertyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPropertyService creates a new property service
func NewPropertyService(db *gorm.DB, cfg *config.Config) InterfacePropertyService {
	return &PropertyService{DB: db, Config: cfg}
}

// GetProperties lists every property
func (s *PropertyService) GetProperties() ([]models.Property, error) {
	var properties []models.Property
	if err := s.DB.Order("id asc").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// GetPropertyByID fetches one property
func (s *PropertyService) GetPropertyByID(id uint) (*models.Property, error) {
	var property models.Property
	if err := s.DB.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.New(code.ErrPropertyNotFound)
		}
		return nil, err
	}
	return &property, nil
}

// CreateProperty inserts a new property
func (s *PropertyService) CreateProperty(property *models.Property) error {
	if property.Name == "" {
		return code.NewWithMessage(code.ErrValidation, "property name is required")
	}
	return s.DB.Create(property).Error
}

// UpdateProperty applies a partial update
func (s *PropertyService) UpdateProperty(id uint, updates map[string]interface{}) (*models.Property, error) {
	property, err := s.GetPropertyByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(property).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetPropertyByID(id)
}

// DeleteProperty removes a property record
func (s *PropertyService) DeleteProperty(id uint) error {
	property, err := s.GetPropertyByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(property).Error
}
