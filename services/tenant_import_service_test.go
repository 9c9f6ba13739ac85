package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
)

func newImportFixture(t *testing.T) (InterfaceTenantImportService, InterfaceTenantService) {
	db := newTestDB(t)
	cfg := newTestConfig()
	tenants := NewTenantService(db, cfg, nil)
	return NewTenantImportService(db, cfg, tenants), tenants
}

func TestImportCSVHeaderSynonyms(t *testing.T) {
	importer, tenants := newImportFixture(t)

	// spreadsheet-style headers with mixed case, spaces and a currency symbol
	csvData := strings.Join([]string{
		"Name of Tenant,Accommodation Type,Property Address,Rent Per Annum,Amount Paid,Phone Number",
		"Chinedu Okafor,2 Bedroom Flat,12 Allen Avenue,\"₦500,000\",\"₦150,000\",08031234567",
		"Amina Bello,Self Contain,4 Marina Road,300000,0,08037654321",
	}, "\n")

	result, err := importer.ImportCSV(strings.NewReader(csvData), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.NotEmpty(t, result.BatchID)

	imported, err := tenants.GetTenants("", "")
	require.NoError(t, err)
	require.Len(t, imported, 2)

	assert.Equal(t, "Chinedu Okafor", imported[0].TenantName)
	assert.Equal(t, "2 Bedroom Flat", imported[0].AccommodationType)
	assert.Equal(t, float64(500000), imported[0].RentPerAnnum)
	assert.Equal(t, float64(150000), imported[0].AmountPaid)
	assert.Equal(t, "08031234567", imported[0].Phone)
	assert.Equal(t, 1, imported[0].SequenceNumber)
	assert.Equal(t, 2, imported[1].SequenceNumber)
}

func TestImportCSVAlternateHeaders(t *testing.T) {
	importer, tenants := newImportFixture(t)

	csvData := strings.Join([]string{
		"tenant,rent,paid,address",
		"Chinedu Okafor,500000,100000,12 Allen Avenue",
	}, "\n")

	result, err := importer.ImportCSV(strings.NewReader(csvData), 1)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)

	imported, err := tenants.GetTenants("", "")
	require.NoError(t, err)
	assert.Equal(t, float64(500000), imported[0].RentPerAnnum)
	assert.Equal(t, float64(100000), imported[0].AmountPaid)
	assert.Equal(t, "12 Allen Avenue", imported[0].PropertyAddress)
}

func TestImportCSVSkipsNamelessRows(t *testing.T) {
	importer, _ := newImportFixture(t)

	csvData := strings.Join([]string{
		"Name of Tenant,Rent Per Annum",
		",100000",
		"Chinedu Okafor,500000",
		"   ,200000",
	}, "\n")

	result, err := importer.ImportCSV(strings.NewReader(csvData), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}

func TestImportCSVRaggedRows(t *testing.T) {
	importer, _ := newImportFixture(t)

	// short and long rows must not abort the batch
	csvData := strings.Join([]string{
		"Name of Tenant,Rent Per Annum,Phone",
		"Chinedu Okafor",
		"Amina Bello,300000,08031234567,extra-column",
	}, "\n")

	result, err := importer.ImportCSV(strings.NewReader(csvData), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
}

func TestImportCSVEmptyFile(t *testing.T) {
	importer, _ := newImportFixture(t)

	_, err := importer.ImportCSV(strings.NewReader(""), 1)
	assertCode(t, err, code.ErrImportFileInvalid)
}
