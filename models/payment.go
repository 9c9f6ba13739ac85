package models

import "time"

// Payment methods
const (
	MethodCash         = "cash"
	MethodBankTransfer = "bank_transfer"
	MethodCheque       = "cheque"
	MethodPOS          = "pos"
	MethodOnline       = "online"
)

// Payment is an immutable, append-only record of money received against a
// tenant's rent. It is only ever inserted or deleted, never updated.
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TenantID      uint      `gorm:"not null;index" json:"tenant_id"`
	Amount        float64   `gorm:"type:decimal(14,2);not null" json:"amount"`
	PaymentDate   time.Time `gorm:"not null" json:"payment_date"`
	PaymentMethod string    `gorm:"type:varchar(20);not null;default:cash" json:"payment_method"`
	Reference     string    `gorm:"type:varchar(100)" json:"reference"`
	Notes         string    `gorm:"type:text" json:"notes"`
	ReceiptNumber string    `gorm:"type:varchar(30)" json:"receipt_number"`
	RecordedBy    uint      `json:"recorded_by"`
	CreatedAt     time.Time `json:"created_at"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// ValidPaymentMethod reports whether m is in the closed method set
func ValidPaymentMethod(m string) bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodCheque, MethodPOS, MethodOnline:
		return true
	}
	return false
}
