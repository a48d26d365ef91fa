package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elelcahyani/uangku/internal/report"
)

func TestFormatCurrency(t *testing.T) {
	type testCase struct {
		name   string
		amount float64
		want   string
	}

	tests := []testCase{
		{name: "Zero", amount: 0, want: "Rp0"},
		{name: "Small", amount: 500, want: "Rp500"},
		{name: "Grouped", amount: 1234567, want: "Rp1.234.567"},
		{name: "RoundsFraction", amount: 1499.6, want: "Rp1.500"},
		{name: "Negative", amount: -250000, want: "Rp-250.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.FormatCurrency(tt.amount))
		})
	}
}

func TestCompactCurrency(t *testing.T) {
	type testCase struct {
		name   string
		amount float64
		want   string
	}

	tests := []testCase{
		{name: "Millions", amount: 2500000, want: "2.5M"},
		{name: "MillionsExact", amount: 1000000, want: "1.0M"},
		{name: "ThousandsRoundsUp", amount: 1500, want: "2K"},
		{name: "ThousandsRoundsDown", amount: 1499, want: "1K"},
		{name: "ThousandsNearMillion", amount: 999999, want: "1000K"},
		{name: "Plain", amount: 500, want: "500"},
		{name: "Zero", amount: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.CompactCurrency(tt.amount))
		})
	}
}
