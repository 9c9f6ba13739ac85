package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/internal/error/response"
	"github.com/Agboweroh/estateiq-backend/middleware"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/services/container"
)

// AuthController handles authentication and self-service account requests
type AuthController struct {
	BaseControllerImpl
}

// NewAuthController creates a new auth controller
func (f *ControllerFactory) NewAuthController(ctx *gin.Context) *AuthController {
	return &AuthController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleAuthFunc returns a Gin handler dispatching to the named method
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		factory := NewControllerFactory(container)
		controller := factory.NewAuthController(ctx)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		case "me":
			controller.Me()
		case "updateMe":
			controller.UpdateMe()
		case "changePassword":
			controller.ChangePassword()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"code": code.ErrBind, "error": "unknown method"})
		}
	}
}

// LoginRequest is the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@estateiq.ng"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// RegisterRequest is the admin-only account creation body
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// Login authenticates a user and issues a bearer token
// @Summary      User Login
// @Description  Verify credentials and return a JWT token valid for 7 days
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.ErrorBody
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	userService := c.Container.GetUserService()
	user, err := userService.Authenticate(req.Email, req.Password)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}

	token, err := c.Container.GetJWTService().GenerateToken(user)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrUnknown, "failed to generate token")
		return
	}

	response.Success(c.Context, gin.H{
		"token": token,
		"user":  user,
	})
}

// Register creates a new account (admin only)
// @Summary      Register User
// @Description  Create a new system account; admin role required
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Account details"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /auth/register [post]
// @Security     BearerAuth
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
		IsActive: true,
	}
	if err := c.Container.GetUserService().Register(&user); err != nil {
		response.HandleError(c.Context, err)
		return
	}

	response.Success(c.Context, user)
}

// Me returns the authenticated user's profile
// @Summary      Current User
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (c *AuthController) Me() {
	user, err := c.Container.GetUserService().GetUserByID(middleware.CurrentUserID(c.Context))
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, user)
}

// UpdateMe updates the authenticated user's own profile
// @Summary      Update Profile
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/me [put]
// @Security     BearerAuth
func (c *AuthController) UpdateMe() {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}

	user, err := c.Container.GetUserService().UpdateUser(middleware.CurrentUserID(c.Context), updates)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, user)
}

// ChangePassword changes the authenticated user's password
// @Summary      Change Password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.ErrorBody
// @Router       /auth/change-password [put]
// @Security     BearerAuth
func (c *AuthController) ChangePassword() {
	var req struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	err := c.Container.GetUserService().ChangePassword(middleware.CurrentUserID(c.Context), req.OldPassword, req.NewPassword)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, gin.H{"changed": true})
}
