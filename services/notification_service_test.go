package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
	"github.com/Agboweroh/estateiq-backend/models"
)

func TestNotifyAndMarkRead(t *testing.T) {
	notifications := NewNotificationService(newTestDB(t), newTestConfig())

	require.NoError(t, notifications.Notify(models.NotifyPayment, "Payment received", "₦50,000 received", nil, nil))
	require.NoError(t, notifications.Notify("bogus-type", "Odd", "falls back to system", nil, nil))

	all, err := notifications.GetNotifications(false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// unknown types collapse to system
	types := []string{all[0].Type, all[1].Type}
	assert.Contains(t, types, models.NotifyPayment)
	assert.Contains(t, types, models.NotifySystem)

	read, err := notifications.MarkRead(all[0].ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	unread, err := notifications.GetNotifications(true)
	require.NoError(t, err)
	assert.Len(t, unread, 1)

	_, err = notifications.MarkRead(9999)
	assertCode(t, err, code.ErrNotificationNotFound)
}

func TestMarkAllRead(t *testing.T) {
	notifications := NewNotificationService(newTestDB(t), newTestConfig())

	require.NoError(t, notifications.Notify(models.NotifySystem, "one", "", nil, nil))
	require.NoError(t, notifications.Notify(models.NotifySystem, "two", "", nil, nil))

	count, err := notifications.MarkAllRead()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	unread, err := notifications.GetNotifications(true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	// idempotent on a fully-read feed
	count, err = notifications.MarkAllRead()
	require.NoError(t, err)
	assert.Zero(t, count)
}
