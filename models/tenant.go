package models

import "time"

// Derived payment status values. The status is never stored; it is computed
// from (amount_paid, rent_per_annum) wherever it is needed.
const (
	StatusPaid    = "paid"
	StatusPartial = "partial"
	StatusUnpaid  = "unpaid"
)

// Lease expiry windows in days
const (
	ExpiryWindowDashboard = 30
	ExpiryWindowAlert     = 60
)

// Tenant is the ledger entity: lease facts plus the running balance.
type Tenant struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	SequenceNumber    int        `gorm:"not null;default:0" json:"sequence_number"` // display order, independent of ID
	TenantName        string     `gorm:"type:varchar(150);not null" json:"tenant_name"`
	AccommodationType string     `gorm:"type:varchar(100)" json:"accommodation_type"`
	PropertyAddress   string     `gorm:"type:varchar(255)" json:"property_address"`
	LeasePeriod       string     `gorm:"type:varchar(100)" json:"lease_period"`
	LeaseStart        *time.Time `json:"lease_start"`
	LeaseEnd          *time.Time `json:"lease_end"`
	RentPerAnnum      float64    `gorm:"type:decimal(14,2);not null;default:0" json:"rent_per_annum"`
	AmountPaid        float64    `gorm:"type:decimal(14,2);not null;default:0" json:"amount_paid"`
	Phone             string     `gorm:"type:varchar(20)" json:"phone"`
	Email             string     `gorm:"type:varchar(100)" json:"email"`
	WhatsApp          string     `gorm:"column:whatsapp;type:varchar(20)" json:"whatsapp"`
	Notes             string     `gorm:"type:text" json:"notes"`
	QuitNotice        bool       `gorm:"default:false" json:"quit_notice"`
	QuitNoticeDate    *time.Time `json:"quit_notice_date"`
	CreatedBy         uint       `json:"created_by"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Relations
	Payments    []Payment     `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
	Maintenance []Maintenance `gorm:"foreignKey:TenantID;constraint:OnDelete:SET NULL" json:"maintenance,omitempty"`
}

// PaymentStatus derives the payment state from the balance pair. A tenant
// with zero rent can never be "paid".
func (t *Tenant) PaymentStatus() string {
	return DerivePaymentStatus(t.AmountPaid, t.RentPerAnnum)
}

// DerivePaymentStatus is the single source of truth for the status predicate
func DerivePaymentStatus(amountPaid, rentPerAnnum float64) string {
	switch {
	case rentPerAnnum > 0 && amountPaid >= rentPerAnnum:
		return StatusPaid
	case amountPaid > 0:
		return StatusPartial
	default:
		return StatusUnpaid
	}
}

// Outstanding returns the amount still owed, never negative
func (t *Tenant) Outstanding() float64 {
	owed := t.RentPerAnnum - t.AmountPaid
	if owed < 0 {
		return 0
	}
	return owed
}

// LeaseExpiringWithin reports whether the lease ends between now and
// now+days, both bounds inclusive, using calendar-date arithmetic.
func (t *Tenant) LeaseExpiringWithin(days int, now time.Time) bool {
	if t.LeaseEnd == nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := time.Date(t.LeaseEnd.Year(), t.LeaseEnd.Month(), t.LeaseEnd.Day(), 0, 0, 0, 0, now.Location())
	limit := today.AddDate(0, 0, days)
	return !end.Before(today) && !end.After(limit)
}
