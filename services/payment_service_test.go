package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/models"
)

func newPaymentFixture(t *testing.T) (InterfacePaymentService, InterfaceTenantService, *models.Tenant) {
	db := newTestDB(t)
	cfg := newTestConfig()

	tenants := NewTenantService(db, cfg, nil)
	payments := NewPaymentService(db, cfg, nil)

	tenant := seedTenant(t, tenants, &models.Tenant{
		TenantName:   "Chinedu Okafor",
		RentPerAnnum: 500000,
	})
	return payments, tenants, tenant
}

func TestRecordPaymentUpdatesBalance(t *testing.T) {
	payments, tenants, tenant := newPaymentFixture(t)

	recorded, err := payments.RecordPayment(&models.Payment{
		TenantID: tenant.ID,
		Amount:   200000,
	})
	require.NoError(t, err)

	assert.Equal(t, models.MethodCash, recorded.PaymentMethod)
	assert.False(t, recorded.PaymentDate.IsZero())
	assert.Equal(t, fmt.Sprintf("RCP-%d-0001", time.Now().Year()), recorded.ReceiptNumber)

	updated, err := tenants.GetTenantByID(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(200000), updated.AmountPaid)
	assert.Equal(t, models.StatusPartial, updated.PaymentStatus())
}

func TestReceiptNumbersAreSequential(t *testing.T) {
	payments, _, tenant := newPaymentFixture(t)

	for i := 1; i <= 3; i++ {
		recorded, err := payments.RecordPayment(&models.Payment{
			TenantID: tenant.ID,
			Amount:   10000,
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("RCP-%d-%04d", time.Now().Year(), i), recorded.ReceiptNumber)
	}
}

func TestReceiptSequenceContinuesAcrossYearPrefix(t *testing.T) {
	payments, _, tenant := newPaymentFixture(t)

	// simulate a receipt issued under an older year prefix
	first, err := payments.RecordPayment(&models.Payment{TenantID: tenant.ID, Amount: 5000})
	require.NoError(t, err)

	svc := payments.(*PaymentService)
	require.NoError(t, svc.DB.Model(&models.Payment{}).Where("id = ?", first.ID).
		Update("receipt_number", "RCP-2024-0041").Error)

	next, err := payments.RecordPayment(&models.Payment{TenantID: tenant.ID, Amount: 5000})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("RCP-%d-0042", time.Now().Year()), next.ReceiptNumber)
}

func TestRecordPaymentValidation(t *testing.T) {
	payments, _, tenant := newPaymentFixture(t)

	_, err := payments.RecordPayment(&models.Payment{TenantID: tenant.ID, Amount: 0})
	assertCode(t, err, code.ErrPaymentAmountInvalid)

	_, err = payments.RecordPayment(&models.Payment{TenantID: tenant.ID, Amount: -100})
	assertCode(t, err, code.ErrPaymentAmountInvalid)

	_, err = payments.RecordPayment(&models.Payment{TenantID: 9999, Amount: 100})
	assertCode(t, err, code.ErrTenantNotFound)

	_, err = payments.RecordPayment(&models.Payment{TenantID: tenant.ID, Amount: 100, PaymentMethod: "barter"})
	assertCode(t, err, code.ErrPaymentMethodInvalid)
}

func TestDeletePaymentReversesBalance(t *testing.T) {
	payments, tenants, tenant := newPaymentFixture(t)

	recorded, err := payments.RecordPayment(&models.Payment{TenantID: tenant.ID, Amount: 150000})
	require.NoError(t, err)

	require.NoError(t, payments.DeletePayment(recorded.ID))

	updated, err := tenants.GetTenantByID(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), updated.AmountPaid)

	_, err = payments.GetPaymentByID(recorded.ID)
	assertCode(t, err, code.ErrPaymentNotFound)
}

func TestDeletePaymentFloorsBalanceAtZero(t *testing.T) {
	payments, tenants, tenant := newPaymentFixture(t)

	recorded, err := payments.RecordPayment(&models.Payment{TenantID: tenant.ID, Amount: 150000})
	require.NoError(t, err)

	// a manual correction dropped the balance below the payment's amount
	_, err = tenants.SetAmountPaid(tenant.ID, 50000)
	require.NoError(t, err)

	require.NoError(t, payments.DeletePayment(recorded.ID))

	updated, err := tenants.GetTenantByID(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), updated.AmountPaid)
}

func TestGetPaymentsFilters(t *testing.T) {
	payments, tenants, tenant := newPaymentFixture(t)
	other := seedTenant(t, tenants, &models.Tenant{TenantName: "Amina Bello", RentPerAnnum: 300000})

	jan := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	_, err := payments.RecordPayment(&models.Payment{TenantID: tenant.ID, Amount: 1000, PaymentDate: jan})
	require.NoError(t, err)
	_, err = payments.RecordPayment(&models.Payment{TenantID: tenant.ID, Amount: 2000, PaymentDate: mar})
	require.NoError(t, err)
	_, err = payments.RecordPayment(&models.Payment{TenantID: other.ID, Amount: 3000, PaymentDate: mar})
	require.NoError(t, err)

	all, err := payments.GetPayments(0, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := payments.GetPayments(tenant.ID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC) // inclusive of the 5th
	ranged, err := payments.GetPayments(tenant.ID, &from, &to)
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, float64(2000), ranged[0].Amount)
}

// assertCode asserts that err unwraps to the given application error code
func assertCode(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)
	var appErr *code.Error
	require.True(t, errors.As(err, &appErr), "expected *code.Error, got %T", err)
	assert.Equal(t, want, appErr.Code)
}
