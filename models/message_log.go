package models

import "time"

// Message channels and statuses
const (
	ChannelWhatsApp = "whatsapp"
	ChannelSMS      = "sms"

	MessageSent   = "sent"
	MessageFailed = "failed"
)

// MessageLog records outbound messaging intent. The system only builds
// click-to-chat deep links; "sent" is stamped at log-write time and says
// nothing about delivery.
type MessageLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TenantID  uint      `gorm:"not null;index" json:"tenant_id"`
	BatchID   string    `gorm:"type:varchar(36);index" json:"batch_id"`
	Channel   string    `gorm:"type:varchar(10);not null;default:whatsapp" json:"channel"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Body      string    `gorm:"type:text" json:"body"`
	Status    string    `gorm:"type:varchar(10);not null;default:sent" json:"status"`
	SentBy    uint      `json:"sent_by"`
	CreatedAt time.Time `json:"created_at"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// ValidChannel reports whether ch is in the closed channel set
func ValidChannel(ch string) bool {
	return ch == ChannelWhatsApp || ch == ChannelSMS
}
