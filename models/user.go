package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/utils"
)

// User roles
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User represents a system account
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	Email     string     `gorm:"type:varchar(100);unique;not null" json:"email"`
	Phone     string     `gorm:"type:varchar(20)" json:"phone"`
	Password  string     `gorm:"type:varchar(100);not null" json:"-"` // password not exposed in JSON
	Role      string     `gorm:"type:varchar(20);not null;default:staff" json:"role"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ValidRole reports whether role is one of the three flat roles
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// BeforeSave hashes the password when a plaintext value was assigned.
// bcrypt hashes are always 60 bytes, so anything shorter is plaintext.
// GORM runs this on create as well, it must stay the only hashing hook;
// a second unguarded hook would hash the hash.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password != "" && len(u.Password) < 60 {
		hashed, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashed
	}
	return nil
}
