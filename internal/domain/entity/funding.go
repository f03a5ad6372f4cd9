package entity

import (
	"fmt"
	"time"
)

// FundingSnapshot holds the funding figures for one calendar day.
// Amounts are minor currency units (cents); nil means the server omitted them.
type FundingSnapshot struct {
	DailyCents   *int64    `json:"daily_cents"`
	MonthlyCents *int64    `json:"monthly_cents"`
	SourceDay    string    `json:"source_day"`
	Available    bool      `json:"available"`
	LastError    string    `json:"last_error,omitempty"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// DailyDisplay returns the daily limit in major units, or false when unknown.
func (f *FundingSnapshot) DailyDisplay() (string, bool) {
	return FormatMinorUnits(f.DailyCents)
}

// MonthlyDisplay returns the remaining monthly amount in major units, or false when unknown.
func (f *FundingSnapshot) MonthlyDisplay() (string, bool) {
	return FormatMinorUnits(f.MonthlyCents)
}

// FormatMinorUnits projects minor units onto a two-decimal major-unit string.
// A nil amount is unavailable, never zero. The magnitude is taken as
// uint64 so math.MinInt64 does not overflow.
func FormatMinorUnits(cents *int64) (string, bool) {
	if cents == nil {
		return "", false
	}

	sign := ""
	v := uint64(*cents)
	if *cents < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100), true
}
