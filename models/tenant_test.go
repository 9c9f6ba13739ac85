package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name string
		paid float64
		rent float64
		want string
	}{
		{"fully paid", 500000, 500000, StatusPaid},
		{"overpaid", 600000, 500000, StatusPaid},
		{"partial", 250000, 500000, StatusPartial},
		{"nothing paid", 0, 500000, StatusUnpaid},
		{"zero rent zero paid", 0, 0, StatusUnpaid},
		{"zero rent with payment", 100, 0, StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePaymentStatus(tt.paid, tt.rent))
		})
	}
}

func TestOutstanding(t *testing.T) {
	tenant := Tenant{RentPerAnnum: 500000, AmountPaid: 200000}
	assert.Equal(t, float64(300000), tenant.Outstanding())

	overpaid := Tenant{RentPerAnnum: 500000, AmountPaid: 600000}
	assert.Equal(t, float64(0), overpaid.Outstanding())
}

func TestLeaseExpiringWithin(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	day := func(offset int) *time.Time {
		d := now.AddDate(0, 0, offset)
		return &d
	}

	tests := []struct {
		name     string
		leaseEnd *time.Time
		want     bool
	}{
		{"no lease end", nil, false},
		{"ends today", day(0), true},
		{"ends on the boundary day", day(30), true},
		{"ends one day past", day(31), false},
		{"already expired", day(-1), false},
		{"well within window", day(14), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenant := Tenant{LeaseEnd: tt.leaseEnd}
			assert.Equal(t, tt.want, tenant.LeaseExpiringWithin(ExpiryWindowDashboard, now))
		})
	}
}

// The window is defined over local calendar dates, matching the SQL range in
// the tenant service. UTC day buckets would shift the boundaries in any zone
// ahead of or behind UTC.
func TestLeaseExpiringWithinLocalCalendarDays(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)
	now := time.Date(2026, 3, 15, 0, 30, 0, 0, lagos)

	at := func(year int, month time.Month, day, hour, min int) *time.Time {
		v := time.Date(year, month, day, hour, min, 0, 0, lagos)
		return &v
	}

	tests := []struct {
		name     string
		leaseEnd *time.Time
		want     bool
	}{
		{"boundary day late evening", at(2026, 4, 14, 23, 0), true},
		{"day past boundary", at(2026, 4, 15, 0, 0), false},
		{"today at midnight", at(2026, 3, 15, 0, 0), true},
		{"expired late yesterday", at(2026, 3, 14, 23, 59), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenant := Tenant{LeaseEnd: tt.leaseEnd}
			assert.Equal(t, tt.want, tenant.LeaseExpiringWithin(ExpiryWindowDashboard, now))
		})
	}
}
