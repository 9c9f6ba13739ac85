package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/models"
)

func newMessageFixture(t *testing.T) (InterfaceMessageService, InterfaceTenantService) {
	db := newTestDB(t)
	cfg := newTestConfig()
	return NewMessageService(db, cfg), NewTenantService(db, cfg, nil)
}

func TestSendMessageBuildsDeepLink(t *testing.T) {
	messages, tenants := newMessageFixture(t)
	tenant := seedTenant(t, tenants, &models.Tenant{
		TenantName: "Chinedu Okafor",
		Phone:      "08031234567",
	})

	result, err := messages.Send(tenant.ID, "Your rent is due", 1)
	require.NoError(t, err)

	assert.Equal(t, "2348031234567", result.Message.Phone)
	assert.Equal(t, models.ChannelWhatsApp, result.Message.Channel)
	assert.Equal(t, models.MessageSent, result.Message.Status)
	assert.Equal(t, "https://wa.me/2348031234567?text=Your+rent+is+due", result.DeepLink)
}

func TestSendMessagePrefersWhatsAppNumber(t *testing.T) {
	messages, tenants := newMessageFixture(t)
	tenant := seedTenant(t, tenants, &models.Tenant{
		TenantName: "Chinedu Okafor",
		Phone:      "08031234567",
		WhatsApp:   "08099999999",
	})

	result, err := messages.Send(tenant.ID, "hello", 1)
	require.NoError(t, err)
	assert.Equal(t, "2348099999999", result.Message.Phone)
}

func TestSendMessageFailures(t *testing.T) {
	messages, tenants := newMessageFixture(t)
	noPhone := seedTenant(t, tenants, &models.Tenant{TenantName: "No Phone"})

	_, err := messages.Send(noPhone.ID, "hello", 1)
	assertCode(t, err, code.ErrTenantPhoneMissing)

	_, err = messages.Send(9999, "hello", 1)
	assertCode(t, err, code.ErrTenantNotFound)

	_, err = messages.Send(noPhone.ID, "", 1)
	assertCode(t, err, code.ErrValidation)
}

func TestBulkReminderTargetsOwingTenantsWithPhones(t *testing.T) {
	messages, tenants := newMessageFixture(t)

	seedTenant(t, tenants, &models.Tenant{TenantName: "Owing", Phone: "08031234567", RentPerAnnum: 500000, AmountPaid: 100000, PropertyAddress: "12 Allen Avenue"})
	seedTenant(t, tenants, &models.Tenant{TenantName: "Paid Up", Phone: "08031111111", RentPerAnnum: 500000, AmountPaid: 500000})
	seedTenant(t, tenants, &models.Tenant{TenantName: "No Phone", RentPerAnnum: 500000})

	result, err := messages.BulkReminder("", 1)
	require.NoError(t, err)

	require.Equal(t, 1, result.Count)
	assert.NotEmpty(t, result.BatchID)

	body := result.Results[0].Message.Body
	assert.Contains(t, body, "Owing")
	assert.Contains(t, body, "400,000")
	assert.Contains(t, body, "12 Allen Avenue")
	assert.False(t, strings.Contains(body, "{name}"))

	// every message of the run shares the batch id
	logged, err := messages.GetMessages(0)
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Equal(t, result.BatchID, logged[0].BatchID)
}

func TestBulkReminderCustomTemplate(t *testing.T) {
	messages, tenants := newMessageFixture(t)
	seedTenant(t, tenants, &models.Tenant{TenantName: "Owing", Phone: "08031234567", RentPerAnnum: 100000})

	result, err := messages.BulkReminder("Hi {name}, you owe {amount}.", 1)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "Hi Owing, you owe 100,000.", result.Results[0].Message.Body)
}

func TestGetMessagesFilterByTenant(t *testing.T) {
	messages, tenants := newMessageFixture(t)
	a := seedTenant(t, tenants, &models.Tenant{TenantName: "A", Phone: "08031234567"})
	b := seedTenant(t, tenants, &models.Tenant{TenantName: "B", Phone: "08037654321"})

	_, err := messages.Send(a.ID, "one", 1)
	require.NoError(t, err)
	_, err = messages.Send(b.ID, "two", 1)
	require.NoError(t, err)

	onlyA, err := messages.GetMessages(a.ID)
	require.NoError(t, err)
	require.Len(t, onlyA, 1)
	assert.Equal(t, "one", onlyA[0].Body)
}
