package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/models"
)

// InterfaceNotificationService defines the notification logger interface
type InterfaceNotificationService interface {
	Notify(notifType, title, message string, userID, tenantID *uint) error
	GetNotifications(unreadOnly bool) ([]models.Notification, error)
	MarkRead(id uint) (*models.Notification, error)
	MarkAllRead() (int64, error)
}

// NotificationService is a write-only audit trail for dashboard alerts.
// Nothing is delivered; records are appended by the other services and
// listed or marked read from the UI.
type NotificationService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewNotificationService creates a new notification service
func NewNotificationService(db *gorm.DB, cfg *config.Config) InterfaceNotificationService {
	return &NotificationService{DB: db, Config: cfg}
}

// Notify appends one notification record
func (s *NotificationService) Notify(notifType, title, message string, userID, tenantID *uint) error {
	if !models.ValidNotificationType(notifType) {
		notifType = models.NotifySystem
	}
	return s.DB.Create(&models.Notification{
		UserID:   userID,
		TenantID: tenantID,
		Type:     notifType,
		Title:    title,
		Message:  message,
	}).Error
}

// GetNotifications lists notifications, newest first
func (s *NotificationService) GetNotifications(unreadOnly bool) ([]models.Notification, error) {
	query := s.DB.Model(&models.Notification{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Limit(200).Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead marks one notification as read
func (s *NotificationService) MarkRead(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := s.DB.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.New(code.ErrNotificationNotFound)
		}
		return nil, err
	}

	if err := s.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	notification.IsRead = true
	return &notification, nil
}

// MarkAllRead marks every unread notification as read and returns the count
func (s *NotificationService) MarkAllRead() (int64, error) {
	result := s.DB.Model(&models.Notification{}).Where("is_read = ?", false).Update("is_read", true)
	return result.RowsAffected, result.Error
}
