package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/internal/error/response"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/services/container"
)

// MaintenanceController handles maintenance ticket endpoints
type MaintenanceController struct {
	BaseControllerImpl
}

// NewMaintenanceController creates a new maintenance controller
func (f *ControllerFactory) NewMaintenanceController(ctx *gin.Context) *MaintenanceController {
	return &MaintenanceController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleMaintenanceFunc returns a Gin handler dispatching to the named method
func HandleMaintenanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		factory := NewControllerFactory(container)
		controller := factory.NewMaintenanceController(ctx)

		switch method {
		case "list":
			controller.List()
		case "get":
			controller.Get()
		case "create":
			controller.Create()
		case "update":
			controller.Update()
		case "delete":
			controller.Delete()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"code": code.ErrBind, "error": "unknown method"})
		}
	}
}

// MaintenanceRequest is the create request body
type MaintenanceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	TenantID    *uint  `json:"tenant_id"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

// List returns maintenance requests with optional status/priority filters
// @Summary      List Maintenance Requests
// @Tags         Maintenance
// @Produce      json
// @Param        status query string false "open | in_progress | resolved | closed"
// @Param        priority query string false "low | medium | high | urgent"
// @Success      200  {object}  response.Response
// @Router       /maintenance [get]
// @Security     BearerAuth
func (c *MaintenanceController) List() {
	requests, err := c.Container.GetMaintenanceService().GetRequests(
		c.Context.Query("status"),
		c.Context.Query("priority"),
	)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, requests)
}

// Get returns one request by id
// @Summary      Get Maintenance Request
// @Tags         Maintenance
// @Produce      json
// @Param        id path int true "Request ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /maintenance/{id} [get]
// @Security     BearerAuth
func (c *MaintenanceController) Get() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}
	request, err := c.Container.GetMaintenanceService().GetRequestByID(id)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, request)
}

// Create opens a new maintenance request
// @Summary      Create Maintenance Request
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        request body MaintenanceRequest true "Request details"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /maintenance [post]
// @Security     BearerAuth
func (c *MaintenanceController) Create() {
	var req MaintenanceRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	request := &models.Maintenance{
		Title:       req.Title,
		Description: req.Description,
		TenantID:    req.TenantID,
		Priority:    req.Priority,
		Category:    req.Category,
	}
	if err := c.Container.GetMaintenanceService().CreateRequest(request); err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, request)
}

// Update edits a request; moving to resolved or closed stamps the
// resolution time
// @Summary      Update Maintenance Request
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        id path int true "Request ID"
// @Success      200  {object}  response.Response
// @Router       /maintenance/{id} [patch]
// @Security     BearerAuth
func (c *MaintenanceController) Update() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Priority    *string `json:"priority"`
		Status      *string `json:"status"`
		Category    *string `json:"category"`
	}
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}

	request, err := c.Container.GetMaintenanceService().UpdateRequest(id, updates)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, request)
}

// Delete removes a request
// @Summary      Delete Maintenance Request
// @Tags         Maintenance
// @Produce      json
// @Param        id path int true "Request ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /maintenance/{id} [delete]
// @Security     BearerAuth
func (c *MaintenanceController) Delete() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}
	if err := c.Container.GetMaintenanceService().DeleteRequest(id); err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, gin.H{"deleted": true})
}
