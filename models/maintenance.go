package models

import "time"

// Maintenance priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Maintenance statuses
const (
	MaintenanceOpen       = "open"
	MaintenanceInProgress = "in_progress"
	MaintenanceResolved   = "resolved"
	MaintenanceClosed     = "closed"
)

// Maintenance categories
const (
	CategoryPlumbing   = "plumbing"
	CategoryElectrical = "electrical"
	CategoryStructural = "structural"
	CategoryAppliance  = "appliance"
	CategoryGeneral    = "general"
)

// Maintenance is a repair ticket. TenantName and PropertyAddress are
// snapshots taken at creation time and are not kept in sync with later
// tenant edits.
type Maintenance struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	TenantID        *uint      `gorm:"index" json:"tenant_id"`
	TenantName      string     `gorm:"type:varchar(150)" json:"tenant_name"`
	PropertyAddress string     `gorm:"type:varchar(255)" json:"property_address"`
	Category        string     `gorm:"type:varchar(30);not null;default:general" json:"category"`
	Title           string     `gorm:"type:varchar(200);not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Priority        string     `gorm:"type:varchar(10);not null;default:medium" json:"priority"`
	Status          string     `gorm:"type:varchar(15);not null;default:open" json:"status"`
	AssignedTo      *uint      `json:"assigned_to"`
	ResolvedAt      *time.Time `json:"resolved_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ValidPriority reports whether p is in the closed priority set
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ValidMaintenanceStatus reports whether s is in the closed status set
func ValidMaintenanceStatus(s string) bool {
	switch s {
	case MaintenanceOpen, MaintenanceInProgress, MaintenanceResolved, MaintenanceClosed:
		return true
	}
	return false
}

// ValidCategory reports whether c is in the closed category set
func ValidCategory(c string) bool {
	switch c {
	case CategoryPlumbing, CategoryElectrical, CategoryStructural, CategoryAppliance, CategoryGeneral:
		return true
	}
	return false
}
