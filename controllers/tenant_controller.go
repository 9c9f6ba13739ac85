package controllers

import (
	"fmt"
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

// TenantController handles the tenant ledger endpoints
type TenantController struct {
	BaseControllerImpl
}

// NewTenantController creates a new tenant controller
func (f *ControllerFactory) NewTenantController(ctx *gin.Context) *TenantController {
	return &TenantController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleTenantFunc returns a Gin handler dispatching to the named method
func HandleTenantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		factory := NewControllerFactory(container)
		controller := factory.NewTenantController(ctx)

		switch method {
		case "list":
			controller.List()
		case "get":
			controller.Get()
		case "create":
			controller.Create()
		case "update":
			controller.Update()
		case "setAmountPaid":
			controller.SetAmountPaid()
		case "toggleQuitNotice":
			controller.ToggleQuitNotice()
		case "delete":
			controller.Delete()
		case "import":
			controller.Import()
		case "export":
			controller.Export()
		case "portal":
			controller.Portal()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"code": code.ErrBind, "error": "unknown method"})
		}
	}
}

// TenantRequest is the create/update request body
type TenantRequest struct {
	TenantName        string     `json:"tenant_name" binding:"required"`
	AccommodationType string     `json:"accommodation_type"`
	PropertyAddress   string     `json:"property_address"`
	LeasePeriod       string     `json:"lease_period"`
	LeaseStart        *time.Time `json:"lease_start"`
	LeaseEnd          *time.Time `json:"lease_end"`
	RentPerAnnum      float64    `json:"rent_per_annum"`
	AmountPaid        float64    `json:"amount_paid"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	WhatsApp          string     `json:"whatsapp"`
	Notes             string     `json:"notes"`
}

func (r *TenantRequest) toModel() *models.Tenant {
	return &models.Tenant{
		TenantName:        r.TenantName,
		AccommodationType: r.AccommodationType,
		PropertyAddress:   r.PropertyAddress,
		LeasePeriod:       r.LeasePeriod,
		LeaseStart:        r.LeaseStart,
		LeaseEnd:          r.LeaseEnd,
		RentPerAnnum:      r.RentPerAnnum,
		AmountPaid:        r.AmountPaid,
		Phone:             r.Phone,
		Email:             r.Email,
		WhatsApp:          r.WhatsApp,
		Notes:             r.Notes,
	}
}

func parsePortalID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("tenantId"), 10, 32)
	return uint(id), err
}

// tenantView decorates a tenant with its derived fields for list responses
type tenantView struct {
	models.Tenant
	PaymentStatus string  `json:"payment_status"`
	Outstanding   float64 `json:"outstanding"`
}

func decorate(t models.Tenant) tenantView {
	return tenantView{
		Tenant:        t,
		PaymentStatus: t.PaymentStatus(),
		Outstanding:   t.Outstanding(),
	}
}

// List returns tenants with optional search and status filters
// @Summary      List Tenants
// @Description  Filter by free-text search and derived status (paid, partial, unpaid, quit, expiring)
// @Tags         Tenants
// @Produce      json
// @Param        search query string false "Search over name, accommodation type, address, email"
// @Param        status query string false "paid | partial | unpaid | quit | expiring"
// @Success      200  {object}  response.Response
// @Router       /tenants [get]
// @Security     BearerAuth
func (c *TenantController) List() {
	tenants, err := c.Container.GetTenantService().GetTenants(
		c.Context.Query("search"),
		c.Context.Query("status"),
	)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}

	views := make([]tenantView, 0, len(tenants))
	for _, t := range tenants {
		views = append(views, decorate(t))
	}
	response.Success(c.Context, views)
}

// Get returns one tenant with its payments and maintenance history
// @Summary      Get Tenant
// @Tags         Tenants
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /tenants/{id} [get]
// @Security     BearerAuth
func (c *TenantController) Get() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}
	tenant, err := c.Container.GetTenantService().GetTenantByID(id)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, decorate(*tenant))
}

// Create adds a tenant to the ledger
// @Summary      Create Tenant
// @Tags         Tenants
// @Accept       json
// @Produce      json
// @Param        request body TenantRequest true "Tenant details"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /tenants [post]
// @Security     BearerAuth
func (c *TenantController) Create() {
	var req TenantRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	tenant := req.toModel()
	tenant.CreatedBy = middleware.CurrentUserID(c.Context)
	if err := c.Container.GetTenantService().CreateTenant(tenant); err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, decorate(*tenant))
}

// Update replaces a tenant's editable fields, amount_paid included. This is
// the bulk-edit path; it bypasses the payment log.
// @Summary      Update Tenant
// @Tags         Tenants
// @Accept       json
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Param        request body TenantRequest true "Tenant details"
// @Success      200  {object}  response.Response
// @Router       /tenants/{id} [put]
// @Security     BearerAuth
func (c *TenantController) Update() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}

	var req TenantRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	tenant, err := c.Container.GetTenantService().UpdateTenant(id, req.toModel())
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, decorate(*tenant))
}

// SetAmountPaid overwrites the running balance directly
// @Summary      Correct Amount Paid
// @Tags         Tenants
// @Accept       json
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Success      200  {object}  response.Response
// @Router       /tenants/{id}/payment [patch]
// @Security     BearerAuth
func (c *TenantController) SetAmountPaid() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}

	var req struct {
		AmountPaid *float64 `json:"amount_paid" binding:"required"`
	}
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	tenant, err := c.Container.GetTenantService().SetAmountPaid(id, *req.AmountPaid)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, decorate(*tenant))
}

// ToggleQuitNotice sets or clears the quit notice flag
// @Summary      Toggle Quit Notice
// @Tags         Tenants
// @Accept       json
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Success      200  {object}  response.Response
// @Router       /tenants/{id}/quit [patch]
// @Security     BearerAuth
func (c *TenantController) ToggleQuitNotice() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}

	var req struct {
		QuitNotice *bool `json:"quit_notice" binding:"required"`
	}
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Context, err)
		return
	}

	tenant, err := c.Container.GetTenantService().ToggleQuitNotice(id, *req.QuitNotice)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, decorate(*tenant))
}

// Delete removes a tenant, its payments, and detaches its maintenance
// @Summary      Delete Tenant
// @Tags         Tenants
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /tenants/{id} [delete]
// @Security     BearerAuth
func (c *TenantController) Delete() {
	id, ok := parseIDParam(c.Context)
	if !ok {
		return
	}
	if err := c.Container.GetTenantService().DeleteTenant(id); err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, gin.H{"deleted": true})
}

// Import ingests a CSV upload as new tenant rows
// @Summary      Import Tenants (CSV)
// @Tags         Tenants
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "CSV file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /tenants/import [post]
// @Security     BearerAuth
func (c *TenantController) Import() {
	fileHeader, err := c.Context.FormFile("file")
	if err != nil {
		response.Fail(c.Context, code.ErrImportFileMissing)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrImportFileInvalid, "unable to read upload")
		return
	}
	defer f.Close()

	result, err := c.Container.GetTenantImportService().ImportCSV(f, middleware.CurrentUserID(c.Context))
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, result)
}

// Export streams the tenant ledger as an XLSX workbook
// @Summary      Export Tenants (XLSX)
// @Tags         Tenants
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /tenants/export [get]
// @Security     BearerAuth
func (c *TenantController) Export() {
	filename := fmt.Sprintf("tenants-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Context.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Context.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := c.Container.GetExportService().ExportTenantsXLSX(c.Context.Writer); err != nil {
		response.HandleError(c.Context, err)
		return
	}
}

// Portal returns the reduced public view of a tenant for the self-service
// portal. No authentication.
// @Summary      Tenant Portal View
// @Tags         Portal
// @Produce      json
// @Param        tenantId path int true "Tenant ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /portal/{tenantId} [get]
func (c *TenantController) Portal() {
	id, err := parsePortalID(c.Context)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrValidation, "invalid tenant id")
		return
	}
	view, err := c.Container.GetTenantService().GetPortalView(id)
	if err != nil {
		response.HandleError(c.Context, err)
		return
	}
	response.Success(c.Context, view)
}
