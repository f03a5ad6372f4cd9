package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinorUnits(t *testing.T) {
	amount := func(v int64) *int64 { return &v }

	tests := []struct {
		name      string
		cents     *int64
		want      string
		available bool
	}{
		{name: "regular amount", cents: amount(123456), want: "1234.56", available: true},
		{name: "zero", cents: amount(0), want: "0.00", available: true},
		{name: "below one unit", cents: amount(7), want: "0.07", available: true},
		{name: "negative", cents: amount(-250), want: "-2.50", available: true},
		{name: "minimum int64", cents: amount(math.MinInt64), want: "-92233720368547758.08", available: true},
		{name: "maximum int64", cents: amount(math.MaxInt64), want: "92233720368547758.07", available: true},
		{name: "missing", cents: nil, want: "", available: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatMinorUnits(tt.cents)
			assert.Equal(t, tt.available, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFundingSnapshot_Displays(t *testing.T) {
	monthly := int64(5000)
	snapshot := &FundingSnapshot{MonthlyCents: &monthly}

	value, ok := snapshot.MonthlyDisplay()
	assert.True(t, ok)
	assert.Equal(t, "50.00", value)

	_, ok = snapshot.DailyDisplay()
	assert.False(t, ok)
}
