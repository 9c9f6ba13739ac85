package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/models"
	"github.com/Agboweroh/estateiq-backend/utils"
)

// InterfaceExportService defines the ledger export interface
type InterfaceExportService interface {
	ExportTenantsXLSX(w io.Writer) error
}

// ExportService writes the tenant ledger as a spreadsheet for offline use
type ExportService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewExportService creates a new export service
func NewExportService(db *gorm.DB, cfg *config.Config) InterfaceExportService {
	return &ExportService{DB: db, Config: cfg}
}

// ExportTenantsXLSX streams an XLSX workbook of every tenant, including the
// derived payment status, in display-sequence order.
func (s *ExportService) ExportTenantsXLSX(w io.Writer) error {
	var tenants []models.Tenant
	if err := s.DB.Order("sequence_number asc").Find(&tenants).Error; err != nil {
		return err
	}

	f := excelize.NewFile()
	sheetName := "Tenants"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"S/N", "Name of Tenant", "Accommodation Type", "Property Address",
		"Lease Period", "Rent Per Annum", "Amount Paid", "Outstanding", "Status",
		"Phone", "Email", "Quit Notice"}
	for i, h := range headers {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cellName, h)
	}

	for idx := range tenants {
		t := &tenants[idx]
		row := idx + 2

		quit := ""
		if t.QuitNotice {
			quit = "yes"
			if t.QuitNoticeDate != nil {
				quit = t.QuitNoticeDate.Format("2006-01-02")
			}
		}

		values := []interface{}{
			t.SequenceNumber,
			t.TenantName,
			t.AccommodationType,
			t.PropertyAddress,
			t.LeasePeriod,
			utils.FormatAmount(t.RentPerAnnum),
			utils.FormatAmount(t.AmountPaid),
			utils.FormatAmount(t.Outstanding()),
			t.PaymentStatus(),
			t.Phone,
			t.Email,
			quit,
		}
		for col, v := range values {
			cellName, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cellName, v)
		}
	}

	f.SetColWidth(sheetName, "B", "D", 25)
	f.SetColWidth(sheetName, "F", "H", 15)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
