package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/services"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name   string
		claims *services.JWTClaims
		roles  []string
		want   bool
	}{
		{"nil claims", nil, nil, false},
		{"any role, authenticated", &services.JWTClaims{Role: models.RoleStaff}, nil, true},
		{"matching role", &services.JWTClaims{Role: models.RoleAdmin}, []string{models.RoleAdmin}, true},
		{"one of several", &services.JWTClaims{Role: models.RoleManager}, []string{models.RoleAdmin, models.RoleManager}, true},
		{"role not allowed", &services.JWTClaims{Role: models.RoleStaff}, []string{models.RoleAdmin}, false},
		{"empty role", &services.JWTClaims{}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.claims, tt.roles...))
		})
	}
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, services.InterfaceJWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := services.NewJWTService(config.LoadConfig())
	authMW := NewAuthMiddleware(jwtService)

	r := gin.New()
	r.GET("/any", authMW.RequireRoles(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})
	r.GET("/admin-only", authMW.RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, jwtService
}

func tokenFor(t *testing.T, jwtService services.InterfaceJWTService, role string) string {
	t.Helper()
	token, err := jwtService.GenerateToken(&models.User{ID: 42, Name: "Test", Email: "t@estateiq.ng", Role: role})
	require.NoError(t, err)
	return token
}

func TestRequireRolesMissingHeader(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestRequireRolesInvalidToken(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesAllowsValidToken(t *testing.T) {
	r, jwtService := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleStaff))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestRequireRolesForbidsWrongRole(t *testing.T) {
	r, jwtService := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleStaff))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesAdmitsAdmin(t *testing.T) {
	r, jwtService := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleAdmin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
