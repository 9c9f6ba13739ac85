package models

import "time"

// Notification types
const (
	NotifyPayment     = "payment"
	NotifyLease       = "lease"
	NotifyMaintenance = "maintenance"
	NotifySystem      = "system"
)

// Notification is a write-only audit record shown on the dashboard bell.
// Nothing is delivered anywhere; records are listed and marked read.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	TenantID  *uint     `gorm:"index" json:"tenant_id"`
	Type      string    `gorm:"type:varchar(20);not null;default:system" json:"type"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidNotificationType reports whether t is in the closed type set
func ValidNotificationType(t string) bool {
	switch t {
	case NotifyPayment, NotifyLease, NotifyMaintenance, NotifySystem:
		return true
	}
	return false
}
