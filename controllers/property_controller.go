package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/internal/error/response"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/services/container"
)

// PropertyController handles property record endpoints
type PropertyController struct {
	BaseControllerImpl
}

// NewPropertyController creates a new property controller
func (f *ControllerFactory) NewPropertyController(ctx *gin.Context) *PropertyController {
	return &PropertyController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandlePropertyFunc returns a Gin handler dispatching to the named method
func HandlePropertyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		factory := NewControllerFactory(container)
		controller := factory.NewPropertyController(ctx)

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

// PropertyRequest is the create request body
type PropertyRequest struct {
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address"`
	PropertyType string `json:"property_type"`
	Units        int    `json:"units"`
	Notes        string `json:"notes"`
}

// List returns all property records
// @Summary      List Properties
// @Tags         Properties
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /properties [get]
// @Security     BearerAuth
func (c *PropertyController) List() {
	properties, err := c.Container.GetPropertyService().GetProperties()
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, properties)
}

// Get returns one property by id
// @Summary      Get Property
// @Tags         Properties
// @Produce      json
// @Param        id path int true "Property ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /properties/{id} [get]
// @Security     BearerAuth
func (c *PropertyController) Get() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}
	property, err := c.Container.GetPropertyService().GetPropertyByID(id)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, property)
}

// Create adds a property record
// @Summary      Create Property
// @Tags         Properties
// @Accept       json
// @Produce      json
// @Param        request body PropertyRequest true "Property details"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /properties [post]
// @Security     BearerAuth
func (c *PropertyController) Create() {
	var req PropertyRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	property := &models.Property{
		Name:         req.Name,
		Address:      req.Address,
		PropertyType: req.PropertyType,
		Units:        req.Units,
		Notes:        req.Notes,
	}
	if err := c.Container.GetPropertyService().CreateProperty(property); err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, property)
}

// Update edits a property record
// @Summary      Update Property
// @Tags         Properties
// @Accept       json
// @Produce      json
// @Param        id path int true "Property ID"
// @Success      200  {object}  response.Response
// @Router       /properties/{id} [put]
// @Security     BearerAuth
func (c *PropertyController) Update() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}

	var req struct {
		Name         *string `json:"name"`
		Address      *string `json:"address"`
		PropertyType *string `json:"property_type"`
		Units        *int    `json:"units"`
		Notes        *string `json:"notes"`
	}
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PropertyType != nil {
		updates["property_type"] = *req.PropertyType
	}
	if req.Units != nil {
		updates["units"] = *req.Units
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	property, err := c.Container.GetPropertyService().UpdateProperty(id, updates)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, property)
}

// Delete removes a property record
// @Summary      Delete Property
// @Tags         Properties
// @Produce      json
// @Param        id path int true "Property ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /properties/{id} [delete]
// @Security     BearerAuth
func (c *PropertyController) Delete() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}
	if err := c.Container.GetPropertyService().DeleteProperty(id); err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, gin.H{"deleted": true})
}
