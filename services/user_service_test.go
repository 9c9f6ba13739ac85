package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/utils"
)

func newUserFixture(t *testing.T) InterfaceUserService {
	return NewUserService(newTestDB(t), newTestConfig())
}

func registerUser(t *testing.T, users InterfaceUserService, email, password, role string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: password,
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, users.Register(user))
	return user
}

func TestAuthenticate(t *testing.T) {
	users := newUserFixture(t)
	registerUser(t, users, "admin@estateiq.ng", "secret123", models.RoleAdmin)

	user, err := users.Authenticate("admin@estateiq.ng", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin@estateiq.ng", user.Email)
	assert.NotNil(t, user.LastLogin)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	users := newUserFixture(t)
	active := registerUser(t, users, "active@estateiq.ng", "secret123", models.RoleStaff)

	// wrong password
	_, wrongPass := users.Authenticate(active.Email, "nope")
	assertCode(t, wrongPass, code.ErrPasswordIncorrect)

	// unknown account
	_, unknown := users.Authenticate("ghost@estateiq.ng", "secret123")
	assertCode(t, unknown, code.ErrPasswordIncorrect)

	// disabled account with the right password
	_, err := users.UpdateUser(active.ID, map[string]interface{}{"is_active": false})
	require.NoError(t, err)
	_, disabled := users.Authenticate(active.Email, "secret123")
	assertCode(t, disabled, code.ErrPasswordIncorrect)

	assert.Equal(t, wrongPass.Error(), unknown.Error())
	assert.Equal(t, wrongPass.Error(), disabled.Error())
}

func TestRegisterValidation(t *testing.T) {
	users := newUserFixture(t)
	registerUser(t, users, "first@estateiq.ng", "secret123", models.RoleStaff)

	err := users.Register(&models.User{Name: "No Email", Password: "secret123"})
	assertCode(t, err, code.ErrValidation)

	err = users.Register(&models.User{Name: "Dup", Email: "first@estateiq.ng", Password: "secret123"})
	assertCode(t, err, code.ErrUserAlreadyExist)

	err = users.Register(&models.User{Name: "Bad Role", Email: "bad@estateiq.ng", Password: "secret123", Role: "owner"})
	assertCode(t, err, code.ErrValidation)
}

func TestRegisterDefaultsRoleToStaff(t *testing.T) {
	users := newUserFixture(t)
	user := &models.User{Name: "New", Email: "new@estateiq.ng", Password: "secret123"}
	require.NoError(t, users.Register(user))
	assert.Equal(t, models.RoleStaff, user.Role)
}

func TestPasswordIsStoredHashed(t *testing.T) {
	users := newUserFixture(t)
	user := registerUser(t, users, "hash@estateiq.ng", "secret123", models.RoleStaff)

	stored, err := users.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.Len(t, stored.Password, 60)
}

func TestDirectCreateHashesPasswordOnce(t *testing.T) {
	db := newTestDB(t)

	// bootstrap paths create the account directly with a plaintext
	// password and rely on the model hook to hash it
	user := models.User{
		Name:     "Hook User",
		Email:    "hook@estateiq.ng",
		Password: "secret123",
		Role:     models.RoleStaff,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.Password))

	// saving the record again must leave the stored hash untouched
	stored.Name = "Renamed"
	require.NoError(t, db.Save(&stored).Error)
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.Password))
}

func TestSeededAdminCanAuthenticate(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	users := NewUserService(db, cfg)

	// same insert the seed-admin command performs
	admin := models.User{
		Name:     cfg.DefaultAdminName,
		Email:    cfg.DefaultAdminEmail,
		Password: cfg.DefaultAdminPassword,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	require.NoError(t, db.Create(&admin).Error)

	user, err := users.Authenticate(cfg.DefaultAdminEmail, cfg.DefaultAdminPassword)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestDeleteUserProtections(t *testing.T) {
	users := newUserFixture(t)
	primary := registerUser(t, users, "primary@estateiq.ng", "secret123", models.RoleAdmin)
	second := registerUser(t, users, "second@estateiq.ng", "secret123", models.RoleStaff)

	// the primary admin (id 1) cannot be deleted
	err := users.DeleteUser(primary.ID, second.ID)
	assertCode(t, err, code.ErrUserProtected)

	// no self-deletion
	err = users.DeleteUser(second.ID, second.ID)
	assertCode(t, err, code.ErrUserProtected)

	require.NoError(t, users.DeleteUser(second.ID, primary.ID))
	_, err = users.GetUserByID(second.ID)
	assertCode(t, err, code.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	users := newUserFixture(t)
	user := registerUser(t, users, "pw@estateiq.ng", "secret123", models.RoleStaff)

	err := users.ChangePassword(user.ID, "wrong", "newsecret")
	assertCode(t, err, code.ErrPasswordIncorrect)

	err = users.ChangePassword(user.ID, "secret123", "tiny")
	assertCode(t, err, code.ErrValidation)

	require.NoError(t, users.ChangePassword(user.ID, "secret123", "newsecret"))

	_, err = users.Authenticate(user.Email, "newsecret")
	require.NoError(t, err)
}
