package models

// Property is a managed building or estate. Tenants carry a denormalised
// property address; this table exists for the managers' own records.
type Property struct {
	BaseModel
	Name         string `gorm:"type:varchar(150);not null" json:"name"`
	Address      string `gorm:"type:varchar(255)" json:"address"`
	PropertyType string `gorm:"type:varchar(100)" json:"property_type"`
	Units        int    `gorm:"default:0" json:"units"`
	Notes        string `gorm:"type:text" json:"notes"`
}
