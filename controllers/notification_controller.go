package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/internal/error/response"
	"github.com/Agboweroh/estateiq-backend/services/container"
)

// NotificationController handles the in-app notification feed
type NotificationController struct {
	BaseControllerImpl
}

// NewNotificationController creates a new notification controller
func (f *ControllerFactory) NewNotificationController(ctx *gin.Context) *NotificationController {
	return &NotificationController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleNotificationFunc returns a Gin handler dispatching to the named method
func HandleNotificationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		factory := NewControllerFactory(container)
		controller := factory.NewNotificationController(ctx)

		switch method {
		case "list":
			controller.List()
		case "markRead":
			controller.MarkRead()
		case "markAllRead":
			controller.MarkAllRead()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"code": code.ErrBind, "error": "unknown method"})
		}
	}
}

// List returns recent notifications, newest first
// @Summary      List Notifications
// @Tags         Notifications
// @Produce      json
// @Param        unread query bool false "Only unread notifications"
// @Success      200  {object}  response.Response
// @Router       /notifications [get]
// @Security     BearerAuth
func (c *NotificationController) List() {
	unreadOnly := c.Context.Query("unread") == "true"
	notifications, err := c.Container.GetNotificationService().GetNotifications(unreadOnly)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, notifications)
}

// MarkRead marks one notification as read
// @Summary      Mark Notification Read
// @Tags         Notifications
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /notifications/{id}/read [patch]
// @Security     BearerAuth
func (c *NotificationController) MarkRead() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}
	notification, err := c.Container.GetNotificationService().MarkRead(id)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, notification)
}

// MarkAllRead marks every unread notification as read
// @Summary      Mark All Notifications Read
// @Tags         Notifications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /notifications/read-all [patch]
// @Security     BearerAuth
func (c *NotificationController) MarkAllRead() {
	count, err := c.Container.GetNotificationService().MarkAllRead()
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, gin.H{"marked": count})
}
