package services

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/utils"
)

// ImportResult reports one CSV import run. Rows are the tenants actually
// inserted; skipped rows are not itemised.
type ImportResult struct {
	BatchID  string          `json:"batch_id"`
	Imported int             `json:"imported"`
	Tenants  []models.Tenant `json:"tenants"`
}

// InterfaceTenantImportService defines the CSV import interface
type InterfaceTenantImportService interface {
	ImportCSV(r io.Reader, createdBy uint) (*ImportResult, error)
}

// TenantImportService maps spreadsheet exports onto the tenant table using
// best-effort column-header matching.
type TenantImportService struct {
	DB     *gorm.DB
	Config *config.Config
	Tenant InterfaceTenantService
}

// NewTenantImportService creates a new import service
func NewTenantImportService(db *gorm.DB, cfg *config.Config, tenant InterfaceTenantService) InterfaceTenantImportService {
	return &TenantImportService{DB: db, Config: cfg, Tenant: tenant}
}

// headerSynonyms maps each canonical field to its accepted header spellings,
// in priority order. Headers are normalised (lower-cased, spaces and
// underscores stripped) before matching, so "Name of Tenant" matches
// "nameoftenant".
var headerSynonyms = map[string][]string{
	"tenant_name":        {"nameoftenant", "tenantname", "tenant", "name"},
	"accommodation_type": {"accommodationtype", "accommodation", "unittype", "type"},
	"property_address":   {"propertyaddress", "address", "property", "location"},
	"lease_period":       {"leaseperiod", "period", "tenancyperiod"},
	"rent_per_annum":     {"rentperannum", "annualrent", "rent", "rentamount"},
	"amount_paid":        {"amountpaid", "paid", "payment", "amount"},
	"phone":              {"phonenumber", "phone", "mobile", "tel"},
	"email":              {"emailaddress", "email"},
	"whatsapp":           {"whatsappnumber", "whatsapp"},
	"notes":              {"notes", "remarks", "comment"},
}

// normalizeHeader lower-cases a header and strips spaces and underscores
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "")
	return strings.ReplaceAll(h, "_", "")
}

// resolveColumns maps each canonical field to a column index. For every
// field the synonyms are tried in order and the first header present wins.
func resolveColumns(headers []string) map[string]int {
	index := map[string]int{}
	for i, h := range headers {
		norm := normalizeHeader(h)
		if norm == "" {
			continue
		}
		if _, taken := index[norm]; !taken {
			index[norm] = i
		}
	}

	columns := map[string]int{}
	for field, synonyms := range headerSynonyms {
		for _, syn := range synonyms {
			if col, ok := index[syn]; ok {
				columns[field] = col
				break
			}
		}
	}
	return columns
}

// cell returns the named field's value for a row, or "" when unmapped
func cell(row []string, columns map[string]int, field string) string {
	col, ok := columns[field]
	if !ok || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// ImportCSV inserts one tenant per resolvable row. Rows without a name are
// silently skipped, and a failed insert does not abort the batch.
func (s *TenantImportService) ImportCSV(r io.Reader, createdBy uint) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, code.New(code.ErrImportFileInvalid)
	}
	columns := resolveColumns(headers)

	result := &ImportResult{BatchID: uuid.NewString(), Tenants: []models.Tenant{}}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		name := cell(row, columns, "tenant_name")
		if name == "" {
			continue
		}

		tenant := models.Tenant{
			TenantName:        name,
			AccommodationType: cell(row, columns, "accommodation_type"),
			PropertyAddress:   cell(row, columns, "property_address"),
			LeasePeriod:       cell(row, columns, "lease_period"),
			RentPerAnnum:      utils.ParseNumeric(cell(row, columns, "rent_per_annum")),
			AmountPaid:        utils.ParseNumeric(cell(row, columns, "amount_paid")),
			Phone:             cell(row, columns, "phone"),
			Email:             cell(row, columns, "email"),
			WhatsApp:          cell(row, columns, "whatsapp"),
			Notes:             cell(row, columns, "notes"),
			CreatedBy:         createdBy,
		}

		if err := s.Tenant.CreateTenant(&tenant); err != nil {
			continue
		}
		result.Tenants = append(result.Tenants, tenant)
		result.Imported++
	}

	return result, nil
}
