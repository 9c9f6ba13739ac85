package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/internal/error/response"
	"github.com/Agboweroh/estateiq-backend/middleware"
	"github.com/Agboweroh/estateiq-backend/services/container"
)

// UserController handles system account administration
type UserController struct {
	BaseControllerImpl
}

// NewUserController creates a new user controller
func (f *ControllerFactory) NewUserController(ctx *gin.Context) *UserController {
	return &UserController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleUserFunc returns a Gin handler dispatching to the named method
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		factory := NewControllerFactory(container)
		controller := factory.NewUserController(ctx)

		switch method {
		case "list":
			controller.List()
		case "get":
			controller.Get()
		case "update":
			controller.Update()
		case "delete":
			controller.Delete()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"code": code.ErrBind, "error": "unknown method"})
		}
	}
}

func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(ctx, code.ErrValidation, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// List returns all system accounts
// @Summary      List Users
// @Tags         Users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users [get]
// @Security     BearerAuth
func (c *UserController) List() {
	users, err := c.Container.GetUserService().GetAllUsers()
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, users)
}

// Get returns one account by id
// @Summary      Get User
// @Tags         Users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (c *UserController) Get() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}
	user, err := c.Container.GetUserService().GetUserByID(id)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, user)
}

// Update edits an account, including role and active status
// @Summary      Update User
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  response.Response
// @Router       /users/{id} [put]
// @Security     BearerAuth
func (c *UserController) Update() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Phone    *string `json:"phone"`
		Role     *string `json:"role"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	user, err := c.Container.GetUserService().UpdateUser(id, updates)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, user)
}

// Delete removes an account. The primary admin and the caller's own
// account are refused.
// @Summary      Delete User
// @Tags         Users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.ErrorBody
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (c *UserController) Delete() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}
	err := c.Container.GetUserService().DeleteUser(id, middleware.CurrentUserID(c.Context))
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, gin.H{"deleted": true})
}
