package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "150,000", FormatAmount(150000))
	assert.Equal(t, "1,500.50", FormatAmount(1500.5))
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "1,000,000", FormatAmount(1000000))
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"150000", 150000},
		{"₦150,000", 150000},
		{"N150,000.50", 150000.50},
		{" 1 200 ", 1200},
		{"", 0},
		{"n/a", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseNumeric(tt.raw), "raw=%q", tt.raw)
	}
}
