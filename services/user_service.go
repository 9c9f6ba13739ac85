package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/utils"
)

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	Authenticate(email, password string) (*models.User, error)
	Register(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint, actorID uint) error
	ChangePassword(id uint, oldPassword, newPassword string) error
}

// UserService manages system accounts
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{DB: db, Config: cfg}
}

// Authenticate verifies the credentials and stamps last_login. A disabled
// account fails with the same error as a wrong password so callers cannot
// tell the two apart.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.New(code.ErrPasswordIncorrect)
		}
		return nil, err
	}

	if !user.IsActive || !utils.CheckPasswordHash(password, user.Password) {
		return nil, code.New(code.ErrPasswordIncorrect)
	}

	now := time.Now()
	if err := s.DB.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	user.LastLogin = &now

	return &user, nil
}

// Register creates a new account. Email must be unique; role defaults to staff.
func (s *UserService) Register(user *models.User) error {
	if user.Name == "" || user.Email == "" || user.Password == "" {
		return code.NewWithMessage(code.ErrValidation, "name, email and password are required")
	}
	if user.Role == "" {
		user.Role = models.RoleStaff
	}
	if !models.ValidRole(user.Role) {
		return code.NewWithMessage(code.ErrValidation, "role must be admin, manager or staff")
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.New(code.ErrUserAlreadyExist)
	}

	return s.DB.Create(user).Error
}

// GetUserByID fetches one account
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.New(code.ErrUserNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// GetAllUsers lists every account
func (s *UserService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser applies a partial update to an account
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if role, ok := updates["role"].(string); ok && !models.ValidRole(role) {
		return nil, code.NewWithMessage(code.ErrValidation, "role must be admin, manager or staff")
	}

	if email, ok := updates["email"].(string); ok && email != user.Email {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, code.New(code.ErrUserAlreadyExist)
		}
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetUserByID(id)
}

// DeleteUser removes an account. The seeded primary admin and the caller's
// own account are protected. Tenants and payments keep their creator ids.
func (s *UserService) DeleteUser(id uint, actorID uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	if user.ID == actorID {
		return code.NewWithMessage(code.ErrUserProtected, "you cannot delete your own account")
	}
	if user.ID == 1 {
		return code.NewWithMessage(code.ErrUserProtected, "the primary admin account cannot be deleted")
	}
	return s.DB.Delete(user).Error
}

// ChangePassword verifies the old password before setting the new one
func (s *UserService) ChangePassword(id uint, oldPassword, newPassword string) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(oldPassword, user.Password) {
		return code.NewWithMessage(code.ErrPasswordIncorrect, "current password is incorrect")
	}
	if len(newPassword) < 6 {
		return code.NewWithMessage(code.ErrValidation, "new password must be at least 6 characters")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.DB.Model(user).Update("password", hashed).Error
}
