package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Agboweroh/estateiq-backend/models"
)

func TestExportTenantsXLSX(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	tenants := NewTenantService(db, cfg, nil)
	export := NewExportService(db, cfg)

	seedTenant(t, tenants, &models.Tenant{
		TenantName:   "Chinedu Okafor",
		RentPerAnnum: 500000,
		AmountPaid:   200000,
	})

	var buf bytes.Buffer
	require.NoError(t, export.ExportTenantsXLSX(&buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tenants")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Name of Tenant", rows[0][1])
	assert.Equal(t, "Chinedu Okafor", rows[1][1])
	assert.Equal(t, "500,000", rows[1][5])
	assert.Equal(t, "300,000", rows[1][7])
	assert.Equal(t, models.StatusPartial, rows[1][8])
}
