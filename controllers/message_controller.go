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

// MessageController handles WhatsApp deep-link messaging
type MessageController struct {
	BaseControllerImpl
}

// NewMessageController creates a new message controller
func (f *ControllerFactory) NewMessageController(ctx *gin.Context) *MessageController {
	return &MessageController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleMessageFunc returns a Gin handler dispatching to the named method
func HandleMessageFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		factory := NewControllerFactory(container)
		controller := factory.NewMessageController(ctx)

		switch method {
		case "send":
			controller.Send()
		case "list":
			controller.List()
		case "bulkReminder":
			controller.BulkReminder()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"code": code.ErrBind, "error": "unknown method"})
		}
	}
}

// SendMessageRequest is the single-message request body
type SendMessageRequest struct {
	TenantID uint   `json:"tenant_id" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

// BulkReminderRequest is the bulk reminder request body. Template is
// optional; the default reminder template applies when omitted.
type BulkReminderRequest struct {
	Template string `json:"template"`
}

// Send logs a message to one tenant and returns the WhatsApp deep link
// @Summary      Send Message
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request body SendMessageRequest true "Message details"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /messages/send [post]
// @Security     BearerAuth
func (c *MessageController) Send() {
	var req SendMessageRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	result, err := c.Container.GetMessageService().Send(req.TenantID, req.Body, middleware.CurrentUserID(c.Context))
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, result)
}

// List returns the message log, optionally for one tenant
// @Summary      List Messages
// @Tags         Messages
// @Produce      json
// @Param        tenant_id query int false "Filter by tenant"
// @Success      200  {object}  response.Response
// @Router       /messages [get]
// @Security     BearerAuth
func (c *MessageController) List() {
	var tenantID uint
	if raw := c.Context.Query("tenant_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.FailWithMessage(c.Context, code.ErrValidation, "invalid tenant_id")
			return
		}
		tenantID = uint(v)
	}

	messages, err := c.Container.GetMessageService().GetMessages(tenantID)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, messages)
}

// BulkReminder logs a rent reminder for every owing tenant with a phone
// number and returns the per-tenant deep links
// @Summary      Bulk Rent Reminder
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request body BulkReminderRequest false "Optional template"
// @Success      200  {object}  response.Response
// @Router       /messages/bulk-reminder [post]
// @Security     BearerAuth
func (c *MessageController) BulkReminder() {
	var req BulkReminderRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BindError(c.Context, err)
		return
	}

	result, err := c.Container.GetMessageService().BulkReminder(req.Template, middleware.CurrentUserID(c.Context))
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, result)
}
