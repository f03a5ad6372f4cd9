package impl

import (
	"encoding/json"
	"testing"

	"smartlunch/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFunding(t *testing.T, raw string) *service.FundingPayload {
	t.Helper()

	var payload service.FundingPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	return &payload
}

func TestFundingAmounts(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantDaily   *int64
		wantMonthly *int64
	}{
		{
			name:        "both present",
			raw:         `{"funding_setting":{"available_fundings":{"daily_cents":2500,"monthly_cents":123456}}}`,
			wantDaily:   int64Ptr(2500),
			wantMonthly: int64Ptr(123456),
		},
		{
			name:        "zero is a value",
			raw:         `{"funding_setting":{"available_fundings":{"daily_cents":0,"monthly_cents":0}}}`,
			wantDaily:   int64Ptr(0),
			wantMonthly: int64Ptr(0),
		},
		{
			name:        "numeric string",
			raw:         `{"funding_setting":{"available_fundings":{"daily_cents":"1500","monthly_cents":null}}}`,
			wantDaily:   int64Ptr(1500),
			wantMonthly: nil,
		},
		{
			name:        "malformed field does not affect the other",
			raw:         `{"funding_setting":{"available_fundings":{"daily_cents":"abc","monthly_cents":999}}}`,
			wantDaily:   nil,
			wantMonthly: int64Ptr(999),
		},
		{
			name:        "fractional cents rejected",
			raw:         `{"funding_setting":{"available_fundings":{"daily_cents":12.5,"monthly_cents":true}}}`,
			wantDaily:   nil,
			wantMonthly: nil,
		},
		{name: "no available_fundings", raw: `{"funding_setting":{}}`},
		{name: "no funding_setting", raw: `{}`},
		{name: "funding_setting null", raw: `{"funding_setting":null}`},
		{name: "available_fundings list", raw: `{"funding_setting":{"available_fundings":[]}}`},
		{name: "funding_setting not an object", raw: `{"funding_setting":[1,2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			daily, monthly := fundingAmounts(decodeFunding(t, tt.raw))
			assert.Equal(t, tt.wantDaily, daily)
			assert.Equal(t, tt.wantMonthly, monthly)
		})
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
