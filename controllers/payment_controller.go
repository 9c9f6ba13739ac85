package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/internal/error/response"
	"github.com/Agboweroh/estateiq-backend/middleware"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/services/container"
)

// PaymentController handles the rent payment log
type PaymentController struct {
	BaseControllerImpl
}

// NewPaymentController creates a new payment controller
func (f *ControllerFactory) NewPaymentController(ctx *gin.Context) *PaymentController {
	return &PaymentController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandlePaymentFunc returns a Gin handler dispatching to the named method
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		factory := NewControllerFactory(container)
		controller := factory.NewPaymentController(ctx)

		switch method {
		case "list":
			controller.List()
		case "get":
			controller.Get()
		case "record":
			controller.Record()
		case "delete":
			controller.Delete()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"code": code.ErrBind, "error": "unknown method"})
		}
	}
}

// PaymentRequest is the record-payment request body
type PaymentRequest struct {
	TenantID      uint       `json:"tenant_id" binding:"required"`
	Amount        float64    `json:"amount" binding:"required"`
	PaymentMethod string     `json:"payment_method"`
	PaymentDate   *time.Time `json:"payment_date"`
	Reference     string     `json:"reference"`
	Notes         string     `json:"notes"`
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter
func parseDateQuery(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.FailWithMessage(ctx, code.ErrValidation, "invalid "+name+" date, expected YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}

// List returns payments filtered by tenant and date range
// @Summary      List Payments
// @Tags         Payments
// @Produce      json
// @Param        tenant_id query int false "Filter by tenant"
// @Param        from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param        to query string false "End date (YYYY-MM-DD, inclusive)"
// @Success      200  {object}  response.Response
// @Router       /payments [get]
// @Security     BearerAuth
func (c *PaymentController) List() {
	var tenantID uint
	if raw := c.Context.Query("tenant_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.FailWithMessage(c.Context, code.ErrValidation, "invalid tenant_id")
			return
		}
		tenantID = uint(v)
	}

	from, ok := parseDateQuery(c.Context, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c.Context, "to")
	if !ok {
		return
	}

	payments, err := c.Container.GetPaymentService().GetPayments(tenantID, from, to)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, payments)
}

// Get returns one payment by id
// @Summary      Get Payment
// @Tags         Payments
// @Produce      json
// @Param        id path int true "Payment ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /payments/{id} [get]
// @Security     BearerAuth
func (c *PaymentController) Get() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}
	payment, err := c.Container.GetPaymentService().GetPaymentByID(id)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, payment)
}

// Record logs a payment, assigns a receipt number, and bumps the tenant's
// running balance
// @Summary      Record Payment
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request body PaymentRequest true "Payment details"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /payments [post]
// @Security     BearerAuth
func (c *PaymentController) Record() {
	var req PaymentRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	payment := &models.Payment{
		TenantID:      req.TenantID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		Notes:         req.Notes,
		RecordedBy:    middleware.CurrentUserID(c.Context),
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}

	recorded, err := c.Container.GetPaymentService().RecordPayment(payment)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, recorded)
}

// Delete removes a payment and reverses its balance contribution
// @Summary      Delete Payment
// @Tags         Payments
// @Produce      json
// @Param        id path int true "Payment ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /payments/{id} [delete]
// @Security     BearerAuth
func (c *PaymentController) Delete() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}
	if err := c.Container.GetPaymentService().DeletePayment(id); err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, gin.H{"deleted": true})
}
