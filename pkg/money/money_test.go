package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, "₹0"},
		{"under a thousand", 999, "₹999"},
		{"thousands", 5000, "₹5,000"},
		{"tens of thousands", 10000, "₹10,000"},
		{"lakhs", 250000, "₹250,000"},
		{"crores", 12345678, "₹12,345,678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(tt.amount))
		})
	}
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "1,234", GroupDigits("1234"))
	assert.Equal(t, "123", GroupDigits("123"))
	assert.Equal(t, "", GroupDigits(""))

	// Non-digit input passes through untouched.
	assert.Equal(t, "12a4", GroupDigits("12a4"))

	// Grouping a grouped string's digits is stable.
	assert.Equal(t, "5,000", GroupDigits("5000"))
}

func TestPercentShare(t *testing.T) {
	assert.Equal(t, "66.7", PercentShare(20000, 30000))
	assert.Equal(t, "33.3", PercentShare(10000, 30000))
	assert.Equal(t, "100.0", PercentShare(5, 5))
	assert.Equal(t, "", PercentShare(10, 0))
	assert.Equal(t, "0.0", PercentShare(0, 100))
}
