package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel holds the fields shared by every table
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AutoMigrate creates or updates every table of the schema
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Property{},
		&Tenant{},
		&Payment{},
		&Maintenance{},
		&Notification{},
		&MessageLog{},
	)
}
